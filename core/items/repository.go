// ABOUTME: Item repository implements the populate-once, read-through cache over the local store
// ABOUTME: Every failure is normalized into an Outcome so nothing escapes to the caller

package items

import (
	"context"
	"errors"
	"fmt"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/interfaces"
	"items-app-api/core/result"
	"golang.org/x/sync/singleflight"
)

// populateKey is the single-flight key for the check-then-populate sequence
const populateKey = "items:populate"

// Repository orchestrates the item store and the remote item source.
//
// FetchItemList populates the store from the remote source the first time it
// finds it empty and afterwards only reads from the store. There is no expiry
// and no refresh; Reset is the only way to get the remote data again.
type Repository struct {
	deps    interfaces.Dependencies
	logger  interfaces.Logger
	metrics Metrics

	// guard serializes check-then-populate across concurrent callers
	guard bool
	sf    singleflight.Group
}

// NewRepository creates a new item repository. The populate guard is enabled.
func NewRepository(deps interfaces.Dependencies) *Repository {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NoopLogger{}
	}

	return &Repository{
		deps:    deps,
		logger:  logger,
		metrics: NoopMetrics{},
		guard:   true,
	}
}

// SetMetrics sets the metrics sink. nil restores NoopMetrics.
func (r *Repository) SetMetrics(m Metrics) {
	if m == nil {
		m = NoopMetrics{}
	}
	r.metrics = m
}

// SetPopulateGuard enables or disables the single-flight guard.
// With the guard disabled, concurrent calls against an empty store may each
// fetch and write, storing the remote list more than once.
func (r *Repository) SetPopulateGuard(enabled bool) {
	r.guard = enabled
}

// FetchItemList returns the stored item list, populating the store from the
// remote source first when it is empty. Network, decode and storage failures
// (and panics raised by collaborators) come back as an Error outcome.
func (r *Repository) FetchItemList(ctx context.Context) (outcome result.Outcome[domain.ItemListResult]) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = r.fail(fmt.Errorf("item repository: unexpected panic: %v", rec))
		}
	}()

	if r.deps.Store == nil || r.deps.Source == nil {
		return r.fail(errors.New("item repository: store and source must be configured"))
	}

	if err := r.ensurePopulated(ctx); err != nil {
		return r.fail(err)
	}

	items, err := r.deps.Store.ReadAll(ctx)
	if err != nil {
		return r.fail(asStorageError("read all", err))
	}
	if items == nil {
		items = []domain.Item{}
	}

	return result.Success(domain.ItemListResult{Items: items})
}

// Reset deletes every stored item so the next FetchItemList fetches again
func (r *Repository) Reset(ctx context.Context) error {
	if r.deps.Store == nil {
		return errors.New("item repository: store must be configured")
	}

	if err := r.deps.Store.DeleteAll(ctx); err != nil {
		err = asStorageError("delete all", err)
		r.logger.Error("Failed to clear item cache", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	r.logger.Info("Item cache cleared", nil)
	return nil
}

// ensurePopulated runs populate, through the single-flight group when the
// guard is on. Waiting callers give up when their own context ends. The
// shared population ignores the starting caller's cancellation and is
// bounded by the HTTP client timeout instead.
func (r *Repository) ensurePopulated(ctx context.Context) error {
	if !r.guard {
		return r.populate(ctx)
	}

	shared := context.WithoutCancel(ctx)
	ch := r.sf.DoChan(populateKey, func() (interface{}, error) {
		return nil, r.populate(shared)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// populate fills the store from the remote source when it is empty.
// The write is only attempted after a successful fetch.
func (r *Repository) populate(ctx context.Context) (err error) {
	// singleflight re-panics on another goroutine, so recover here
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("item repository: unexpected panic while populating: %v", rec)
		}
	}()

	has, err := r.deps.Store.HasData(ctx)
	if err != nil {
		return asStorageError("has data", err)
	}
	if has {
		r.metrics.Hit()
		r.logger.Debug("Item cache hit", nil)
		return nil
	}

	r.metrics.Miss()
	r.logger.Info("Item cache empty, fetching from remote", nil)

	remote, err := r.deps.Source.FetchAll(ctx)
	if err != nil {
		return err
	}

	if err := r.deps.Store.WriteAll(ctx, remote); err != nil {
		return asStorageError("write all", err)
	}

	r.metrics.Populate()
	r.logger.Info("Populated item cache", map[string]interface{}{
		"items": len(remote),
	})
	return nil
}

// fail records the failure and builds the Error outcome
func (r *Repository) fail(err error) result.Outcome[domain.ItemListResult] {
	r.metrics.Failure()
	r.logger.Error("Failed to fetch item list", map[string]interface{}{
		"error": err.Error(),
		"kind":  ErrorKind(err),
	})
	return result.Error[domain.ItemListResult](err.Error(), err)
}

// ErrorKind names the failure class of err for logs and API responses
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case apperrors.IsNetwork(err):
		return "network"
	case apperrors.IsProtocol(err):
		return "protocol"
	case apperrors.IsDecode(err):
		return "decode"
	case apperrors.IsStorage(err):
		return "storage"
	default:
		return "unknown"
	}
}

func asStorageError(op string, err error) error {
	if apperrors.IsStorage(err) {
		return err
	}
	return apperrors.NewStorageError(op, err)
}

// ABOUTME: ViewModel drives an item list screen through loading, success and error states
// ABOUTME: RequestData is last-call-wins: a new request cancels and supersedes the one in flight

package presentation

import (
	"context"
	"sync"

	"items-app-api/core/domain"
	"items-app-api/core/result"
)

// ItemFetcher is the repository capability the view model consumes
type ItemFetcher interface {
	FetchItemList(ctx context.Context) result.Outcome[domain.ItemListResult]
}

// ViewModel holds the current UiState of an item list screen.
// It starts in the loading state.
type ViewModel struct {
	fetcher ItemFetcher

	mu          sync.Mutex
	state       UiState
	generation  uint64
	cancel      context.CancelFunc
	subscribers map[int]chan UiState
	nextSubID   int
	closed      bool
}

// NewViewModel creates a view model over fetcher
func NewViewModel(fetcher ItemFetcher) *ViewModel {
	return &ViewModel{
		fetcher:     fetcher,
		state:       Loading(),
		subscribers: make(map[int]chan UiState),
	}
}

// State returns the current state
func (vm *ViewModel) State() UiState {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Subscribe returns a channel that receives every published state, starting
// with the current one. Slow subscribers only see the latest state.
// Call the returned func to unsubscribe.
func (vm *ViewModel) Subscribe() (<-chan UiState, func()) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	ch := make(chan UiState, 1)
	ch <- vm.state
	id := vm.nextSubID
	vm.nextSubID++
	vm.subscribers[id] = ch

	return ch, func() {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		if sub, ok := vm.subscribers[id]; ok {
			delete(vm.subscribers, id)
			close(sub)
		}
	}
}

// RequestData cancels any in-flight request, publishes Loading and fetches
// the item list in the background. Only the latest request publishes its
// result. The returned channel is closed when this request has settled,
// either by publishing or by being superseded.
func (vm *ViewModel) RequestData(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	vm.mu.Lock()
	if vm.closed {
		vm.mu.Unlock()
		close(done)
		return done
	}
	if vm.cancel != nil {
		vm.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	vm.cancel = cancel
	vm.generation++
	gen := vm.generation
	vm.publishLocked(Loading())
	vm.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		outcome := vm.fetcher.FetchItemList(reqCtx)

		vm.mu.Lock()
		defer vm.mu.Unlock()
		if gen != vm.generation || vm.closed {
			return
		}
		vm.cancel = nil
		vm.publishLocked(FromOutcome(outcome))
	}()

	return done
}

// Close cancels the in-flight request and closes every subscription
func (vm *ViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		return
	}
	vm.closed = true
	if vm.cancel != nil {
		vm.cancel()
		vm.cancel = nil
	}
	for id, ch := range vm.subscribers {
		delete(vm.subscribers, id)
		close(ch)
	}
}

// publishLocked stores state and hands it to subscribers, replacing any
// state they have not read yet. vm.mu must be held.
func (vm *ViewModel) publishLocked(state UiState) {
	vm.state = state
	for _, ch := range vm.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

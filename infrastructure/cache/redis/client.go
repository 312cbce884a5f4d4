// ABOUTME: Redis-backed item store using the go-redis client
// ABOUTME: Lets several API instances share one populated item list

package redis

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"items-app-api/core/domain"
	apperrors "items-app-api/core/errors"
	"items-app-api/core/mapper"
	"items-app-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldDescription = "description"
)

// RedisStore implements the ItemStore interface using Redis.
//
// Layout under the key prefix:
//
//	<prefix>:seq       id counter, never reset
//	<prefix>:ids       list of item ids in insertion order
//	<prefix>:item:<id> hash with id and the optional title/description fields
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis store and verifies the connection
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "items"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}, nil
}

func (s *RedisStore) seqKey() string { return s.prefix + ":seq" }
func (s *RedisStore) idsKey() string { return s.prefix + ":ids" }

func (s *RedisStore) itemKey(id int64) string {
	return s.prefix + ":item:" + strconv.FormatInt(id, 10)
}

// HasData reports whether at least one item is stored
func (s *RedisStore) HasData(ctx context.Context) (bool, error) {
	n, err := s.client.LLen(ctx, s.idsKey()).Result()
	if err != nil {
		return false, apperrors.NewStorageError("has data", err)
	}
	return n > 0, nil
}

// ReadAll returns every stored item ordered by id
func (s *RedisStore) ReadAll(ctx context.Context) ([]domain.Item, error) {
	ids, err := s.client.LRange(ctx, s.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, apperrors.NewStorageError("read all", err)
	}

	if len(ids) == 0 {
		return []domain.Item{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, s.prefix+":item:"+id)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewStorageError("read all", err)
	}

	rows := make([]domain.StorageItem, 0, len(ids))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		row, err := decodeRow(fields)
		if err != nil {
			return nil, apperrors.NewStorageError("read all", err)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return mapper.StorageListToItems(rows), nil
}

// WriteAll reserves ids for the batch and stores it in one MULTI/EXEC
func (s *RedisStore) WriteAll(ctx context.Context, items []domain.RemoteItem) error {
	if len(items) == 0 {
		return nil
	}

	last, err := s.client.IncrBy(ctx, s.seqKey(), int64(len(items))).Result()
	if err != nil {
		return apperrors.NewStorageError("write all", err)
	}
	first := last - int64(len(items)) + 1

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, row := range mapper.RemoteListToStorage(items) {
			row.ID = first + int64(i)
			pipe.HSet(ctx, s.itemKey(row.ID), encodeRow(row))
			pipe.RPush(ctx, s.idsKey(), row.ID)
		}
		return nil
	})
	if err != nil {
		return apperrors.NewStorageError("write all", err)
	}
	return nil
}

// DeleteAll removes every stored item but keeps the id counter
func (s *RedisStore) DeleteAll(ctx context.Context) error {
	ids, err := s.client.LRange(ctx, s.idsKey(), 0, -1).Result()
	if err != nil {
		return apperrors.NewStorageError("delete all", err)
	}

	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, s.idsKey())
	for _, id := range ids {
		keys = append(keys, s.prefix+":item:"+id)
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.NewStorageError("delete all", err)
	}
	return nil
}

// Stats returns store statistics
func (s *RedisStore) Stats(ctx context.Context) (map[string]interface{}, error) {
	n, err := s.client.LLen(ctx, s.idsKey()).Result()
	if err != nil {
		return nil, apperrors.NewStorageError("stats", err)
	}

	return map[string]interface{}{
		"backend":     "redis",
		"total_items": n,
		"key_prefix":  s.prefix,
	}, nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// encodeRow turns a storage row into hash fields. Absent fields are omitted.
func encodeRow(row domain.StorageItem) map[string]interface{} {
	fields := map[string]interface{}{
		fieldID: row.ID,
	}
	if row.Title != nil {
		fields[fieldTitle] = *row.Title
	}
	if row.Description != nil {
		fields[fieldDescription] = *row.Description
	}
	return fields
}

func decodeRow(fields map[string]string) (domain.StorageItem, error) {
	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return domain.StorageItem{}, err
	}

	row := domain.StorageItem{ID: id}
	if title, ok := fields[fieldTitle]; ok {
		row.Title = domain.StringPtr(title)
	}
	if description, ok := fields[fieldDescription]; ok {
		row.Description = domain.StringPtr(description)
	}
	return row, nil
}

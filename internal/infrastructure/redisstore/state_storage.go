// Package redisstore guarda el estado de sesión en Redis, una clave por valor.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/bizdash/internal/domain/repository"
)

var _ repository.StateStorage = (*StateStorage)(nil)

// StateStorage claves <prefix><key>; SetMany y Delete van en una transacción MULTI/EXEC.
type StateStorage struct {
	rdb    redis.UniversalClient
	prefix string
}

// New construye el adaptador sobre un cliente ya configurado.
func New(rdb redis.UniversalClient, prefix string) *StateStorage {
	return &StateStorage{rdb: rdb, prefix: prefix}
}

// Open crea el cliente y verifica la conexión con PING.
func Open(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (s *StateStorage) k(key string) string { return s.prefix + key }

func (s *StateStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, s.k(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *StateStorage) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for key, v := range values {
			p.Set(ctx, s.k(key), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *StateStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.k(key)
	}
	if err := s.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bizdash/internal/domain/repository"
)

var _ repository.StateStorage = (*StateStorage)(nil)

// StateStorage estado de sesión en la tabla app_state (una fila por clave).
type StateStorage struct {
	q  Querier
	tx *TxRunner
}

// NewStateStorage construye el adaptador; SetMany y Delete usan el runner para ser atómicos.
func NewStateStorage(q Querier, tx *TxRunner) *StateStorage {
	return &StateStorage{q: q, tx: tx}
}

func (s *StateStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.q.QueryRow(ctx, `SELECT value::text FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get state %s: %w", key, err)
	}
	return value, true, nil
}

func (s *StateStorage) SetMany(ctx context.Context, values map[string][]byte) error {
	return s.tx.Run(ctx, func(q Querier) error {
		for key, value := range values {
			_, err := q.Exec(ctx, `
				INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2::jsonb, now())
				ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
				key, string(value))
			if err != nil {
				return fmt.Errorf("set state %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *StateStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.q.Exec(ctx, `DELETE FROM app_state WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

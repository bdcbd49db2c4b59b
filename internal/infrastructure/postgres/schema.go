package postgres

import (
	"context"
	"fmt"
)

// schema tablas propias del terminal. Idempotente.
const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS receipt_journal (
	id             BIGSERIAL PRIMARY KEY,
	invoice_number TEXT NOT NULL,
	customer_name  TEXT NOT NULL DEFAULT '',
	total_amount   NUMERIC(14,2) NOT NULL DEFAULT 0,
	payment_method TEXT NOT NULL DEFAULT '',
	format         TEXT NOT NULL,
	archive_key    TEXT NOT NULL DEFAULT '',
	printed_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_receipt_journal_printed_at ON receipt_journal (printed_at DESC);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

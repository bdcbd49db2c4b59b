package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
)

var _ repository.ReceiptJournal = (*ReceiptJournal)(nil)

// ReceiptJournal diario de recibos impresos. total_amount es NUMERIC: el codec
// pgx-shopspring-decimal registrado en el pool lo mapea a decimal.Decimal.
type ReceiptJournal struct {
	q Querier
}

// NewReceiptJournal construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptJournal(q Querier) *ReceiptJournal {
	return &ReceiptJournal{q: q}
}

// Record inserta el registro y completa ID y PrintedAt.
func (j *ReceiptJournal) Record(ctx context.Context, rec *entity.ReceiptRecord) error {
	if rec.PrintedAt.IsZero() {
		rec.PrintedAt = time.Now()
	}
	err := j.q.QueryRow(ctx, `
		INSERT INTO receipt_journal (invoice_number, customer_name, total_amount, payment_method, format, archive_key, printed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		rec.InvoiceNumber, rec.CustomerName, rec.TotalAmount, rec.PaymentMethod, rec.Format, rec.ArchiveKey, rec.PrintedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert receipt_journal: %w", err)
	}
	return nil
}

// Recent últimos limit recibos, del más reciente al más antiguo.
func (j *ReceiptJournal) Recent(ctx context.Context, limit int) ([]entity.ReceiptRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.q.Query(ctx, `
		SELECT id, invoice_number, customer_name, total_amount, payment_method, format, archive_key, printed_at
		FROM receipt_journal
		ORDER BY printed_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list receipt_journal: %w", err)
	}
	defer rows.Close()

	out := make([]entity.ReceiptRecord, 0, limit)
	for rows.Next() {
		var r entity.ReceiptRecord
		if err := rows.Scan(&r.ID, &r.InvoiceNumber, &r.CustomerName, &r.TotalAmount, &r.PaymentMethod,
			&r.Format, &r.ArchiveKey, &r.PrintedAt); err != nil {
			return nil, fmt.Errorf("scan receipt_journal: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

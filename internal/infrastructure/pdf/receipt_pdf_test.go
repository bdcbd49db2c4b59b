package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/infrastructure/pdf"
)

func TestReceiptRenderer_GeneraPDF(t *testing.T) {
	doc := &receipt.Document{
		Header:        receipt.Header{Name: "Glow Salon", Address: "Moi Avenue, Nairobi", Phone: "0712 000 000", TaxPIN: "P051234567X"},
		InvoiceNumber: "SINV-0007",
		IssuedAt:      time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC),
		CustomerName:  "Amina Otieno",
		Lines: []receipt.Line{
			{Service: "Haircut", Employee: "Brian", Price: decimal.NewFromInt(500)},
			{Service: "Manicure", Employee: "Faith", Price: decimal.NewFromInt(500)},
		},
		Totals:        servicebilling.ComputeTotals(decimal.NewFromInt(500), decimal.NewFromInt(500)),
		PaymentMethod: "M-Pesa",
		Footer:        "Thank you for your business!",
	}

	r := pdf.NewReceiptRenderer()
	assert.Equal(t, receipt.FormatPDF, r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	out, err := r.Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestReceiptRenderer_SinLineas(t *testing.T) {
	out, err := pdf.NewReceiptRenderer().Render(&receipt.Document{InvoiceNumber: "SINV-1", IssuedAt: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizdash/pkg/money"
)

func TestFormatKES(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(50000), "KES 50,000"},
		{decimal.NewFromInt(0), "KES 0"},
		{decimal.NewFromInt(999), "KES 999"},
		{decimal.NewFromInt(1250000), "KES 1,250,000"},
		{decimal.RequireFromString("1499.6"), "KES 1,500"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, money.FormatKES(c.in), c.in.String())
	}
}

func TestFormatKESCents(t *testing.T) {
	assert.Equal(t, "KES 1,160.00", money.FormatKESCents(decimal.NewFromInt(1160)))
	assert.Equal(t, "KES 80.50", money.FormatKESCents(decimal.RequireFromString("80.5")))
	assert.Equal(t, "KES 0.00", money.FormatKESCents(decimal.Zero))
	assert.Equal(t, "KES 999.99", money.FormatKESCents(decimal.RequireFromString("999.994")))
	assert.Equal(t, "KES 1,000.01", money.FormatKESCents(decimal.RequireFromString("1000.005")))
	assert.Equal(t, "KES -1,160.00", money.FormatKESCents(decimal.NewFromInt(-1160)))
}

func TestFormatKESCents_MontosGrandesSinPerdida(t *testing.T) {
	v := decimal.RequireFromString("123456789012345678.91")
	assert.Equal(t, "KES 123,456,789,012,345,678.91", money.FormatKESCents(v))
}

func TestVAT(t *testing.T) {
	assert.True(t, money.VAT(decimal.NewFromInt(1000)).Equal(decimal.NewFromInt(160)))
}

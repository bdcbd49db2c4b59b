package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bizdash/internal/domain/analytics"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMarginBadge_Limites(t *testing.T) {
	cases := []struct {
		margin string
		want   analytics.Badge
	}{
		{"45", analytics.BadgeSuccess},
		{"30", analytics.BadgeSuccess},
		{"29.99", analytics.BadgeWarning},
		{"15", analytics.BadgeWarning},
		{"14.9", analytics.BadgeError},
		{"0", analytics.BadgeError},
		{"-12", analytics.BadgeError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, analytics.MarginBadge(d(c.margin)), "margen %s", c.margin)
	}
}

func TestClassifyStock(t *testing.T) {
	assert.Equal(t, analytics.OutOfStock, analytics.ClassifyStock(d("0"), d("5")))
	assert.Equal(t, analytics.OutOfStock, analytics.ClassifyStock(d("-1"), d("5")))
	assert.Equal(t, analytics.LowStock, analytics.ClassifyStock(d("5"), d("5")))
	assert.Equal(t, analytics.LowStock, analytics.ClassifyStock(d("2"), d("5")))
	assert.Equal(t, analytics.InStock, analytics.ClassifyStock(d("6"), d("5")))
	assert.Equal(t, analytics.BadgeWarning, analytics.LowStock.Badge())
}

func TestClassifyTurnover(t *testing.T) {
	assert.Equal(t, analytics.TurnoverExcellent, analytics.ClassifyTurnover(d("10.5")))
	assert.Equal(t, analytics.TurnoverGood, analytics.ClassifyTurnover(d("10")), "10 no supera el umbral de excelente")
	assert.Equal(t, analytics.TurnoverAverage, analytics.ClassifyTurnover(d("5")))
	assert.Equal(t, analytics.TurnoverPoor, analytics.ClassifyTurnover(d("2")))
}

func TestClassifyVelocity(t *testing.T) {
	assert.Equal(t, analytics.VelocityFast, analytics.ClassifyVelocity(d("5")))
	assert.Equal(t, analytics.VelocityModerate, analytics.ClassifyVelocity(d("1")))
	assert.Equal(t, analytics.VelocitySlow, analytics.ClassifyVelocity(d("0.2")))
	assert.Equal(t, analytics.VelocityStagnant, analytics.ClassifyVelocity(d("0")))
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, analytics.TrendUp, analytics.ClassifyTrend(d("3.2")))
	assert.Equal(t, analytics.TrendDown, analytics.ClassifyTrend(d("-0.1")))
	assert.Equal(t, analytics.TrendFlat, analytics.ClassifyTrend(d("0")))
}

package analytics

import "github.com/shopspring/decimal"

// Badge clase visual de un indicador.
type Badge string

const (
	BadgeSuccess Badge = "success"
	BadgeWarning Badge = "warning"
	BadgeError   Badge = "error"
	BadgeInfo    Badge = "info"
)

var (
	marginSuccess = decimal.NewFromInt(30)
	marginWarning = decimal.NewFromInt(15)

	turnoverExcellent = decimal.NewFromInt(10)
	turnoverGood      = decimal.NewFromInt(5)
	turnoverAverage   = decimal.NewFromInt(2)

	velocityFast     = decimal.NewFromInt(5)
	velocityModerate = decimal.NewFromInt(1)
)

// MarginBadge margen % ≥30 → success, ≥15 → warning, resto → error. Límite inferior inclusivo.
func MarginBadge(marginPct decimal.Decimal) Badge {
	switch {
	case marginPct.GreaterThanOrEqual(marginSuccess):
		return BadgeSuccess
	case marginPct.GreaterThanOrEqual(marginWarning):
		return BadgeWarning
	default:
		return BadgeError
	}
}

// StockStatus estado de stock de un producto.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// ClassifyStock qty ≤ 0 → agotado; qty ≤ nivel de reorden → bajo; resto → en stock.
func ClassifyStock(quantity, reorderLevel decimal.Decimal) StockStatus {
	switch {
	case !quantity.IsPositive():
		return OutOfStock
	case quantity.LessThanOrEqual(reorderLevel):
		return LowStock
	default:
		return InStock
	}
}

// Badge clase visual del estado de stock.
func (s StockStatus) Badge() Badge {
	switch s {
	case OutOfStock:
		return BadgeError
	case LowStock:
		return BadgeWarning
	default:
		return BadgeSuccess
	}
}

// Turnover rotación de inventario.
type Turnover string

const (
	TurnoverExcellent Turnover = "excellent"
	TurnoverGood      Turnover = "good"
	TurnoverAverage   Turnover = "average"
	TurnoverPoor      Turnover = "poor"
)

// ClassifyTurnover >10 excelente, >5 buena, >2 media, resto pobre (límites exclusivos).
func ClassifyTurnover(ratio decimal.Decimal) Turnover {
	switch {
	case ratio.GreaterThan(turnoverExcellent):
		return TurnoverExcellent
	case ratio.GreaterThan(turnoverGood):
		return TurnoverGood
	case ratio.GreaterThan(turnoverAverage):
		return TurnoverAverage
	default:
		return TurnoverPoor
	}
}

// Velocity velocidad de venta en unidades por día.
type Velocity string

const (
	VelocityFast     Velocity = "fast"
	VelocityModerate Velocity = "moderate"
	VelocitySlow     Velocity = "slow"
	VelocityStagnant Velocity = "stagnant"
)

// ClassifyVelocity ≥5/día rápida, ≥1/día moderada, >0 lenta, 0 estancada.
func ClassifyVelocity(unitsPerDay decimal.Decimal) Velocity {
	switch {
	case unitsPerDay.GreaterThanOrEqual(velocityFast):
		return VelocityFast
	case unitsPerDay.GreaterThanOrEqual(velocityModerate):
		return VelocityModerate
	case unitsPerDay.IsPositive():
		return VelocitySlow
	default:
		return VelocityStagnant
	}
}

// Trend dirección de un crecimiento porcentual.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// ClassifyTrend signo del crecimiento.
func ClassifyTrend(growthPct decimal.Decimal) Trend {
	switch growthPct.Sign() {
	case 1:
		return TrendUp
	case -1:
		return TrendDown
	default:
		return TrendFlat
	}
}

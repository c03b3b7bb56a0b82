package report

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/smartsales/backend/internal/domain/report"
)

// Statistics arrive from the aggregation layer in whatever shape the driver
// produced: integers, decimals, numeric strings, or nil for empty SUMs.
// Renderers require primitive numerics, so everything is coerced here and an
// unconvertible value degrades to zero instead of failing the report.

// NormalizeStats coerces raw statistic values into the primitive types the
// renderers consume.
func NormalizeStats(rowCount, totalQuantity, totalAmount any) report.Stats {
	return report.Stats{
		TicketCount:   toInt64(rowCount),
		TotalQuantity: toInt64(totalQuantity),
		TotalAmount:   toFloat64(totalAmount),
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	case decimal.Decimal:
		return n.IntPart()
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	case decimal.Decimal:
		f, _ := n.Float64()
		return f
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

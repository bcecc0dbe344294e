package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

var hundred = decimal.NewFromInt(100)

// PeriodMetrics are the scalar figures of one period
type PeriodMetrics struct {
	Revenue           decimal.Decimal
	Orders            int
	Users             int
	AverageOrderValue float64
	ConversionRate    float64
}

// Summarize reduces a period's revenue-eligible orders and signups to its scalar metrics.
// Orders are expected to be pre-filtered to revenue-bearing statuses.
func Summarize(orders []models.Order, users []models.User) PeriodMetrics {
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.TotalAmount))
	}

	m := PeriodMetrics{
		Revenue: revenue,
		Orders:  len(orders),
		Users:   len(users),
	}
	if m.Orders > 0 {
		m.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(m.Orders))).InexactFloat64()
	}
	if m.Users > 0 {
		m.ConversionRate = decimal.NewFromInt(int64(m.Orders)).
			Div(decimal.NewFromInt(int64(m.Users))).
			Mul(hundred).
			InexactFloat64()
	}
	return m
}

// Trends holds the period-over-period growth of each metric
type Trends struct {
	Revenue    float64
	Orders     float64
	Users      float64
	Conversion float64
	AOV        float64
}

// CompareMetrics applies Growth to every metric pair.
func CompareMetrics(current, previous PeriodMetrics) Trends {
	return Trends{
		Revenue:    Growth(current.Revenue.InexactFloat64(), previous.Revenue.InexactFloat64()),
		Orders:     Growth(float64(current.Orders), float64(previous.Orders)),
		Users:      Growth(float64(current.Users), float64(previous.Users)),
		Conversion: Growth(current.ConversionRate, previous.ConversionRate),
		AOV:        Growth(current.AverageOrderValue, previous.AverageOrderValue),
	}
}

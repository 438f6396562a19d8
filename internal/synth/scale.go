package synth

import (
	"fmt"
	"math"
	"time"
)

// Scale 0 is test mode: every table stays at or below ten rows so a full run
// finishes in well under a second while still exercising every join path.
const TestScale = 0

// Row-count curves for scale >= 1. The official kit's exact coefficients are
// deliberately not reproduced; these are simple monotonic functions with the
// same shape (facts linear, large dimensions linear with caps, physical
// locations growing with the square root of the scale, calendars and
// enumerations fixed).
var testCounts = map[string]int64{
	"date_dim":               7,
	"time_dim":               8,
	"customer_demographics":  10,
	"customer_address":       10,
	"income_band":            7,
	"household_demographics": 10,
	"item":                   3,
	"store":                  1,
	"warehouse":              1,
	"ship_mode":              5,
	"reason":                 5,
	"promotion":              3,
	"customer":               5,
	"web_site":               1,
	"call_center":            2,
	"web_page":               5,
	"catalog_page":           4,
	"store_sales":            10,
	"store_returns":          2,
	"catalog_sales":          6,
	"catalog_returns":        2,
	"web_sales":              8,
	"web_returns":            2,
	"inventory":              8,
}

// Plan maps a scale factor to a target row count per table. Scale 0 is the
// bounded test mode; negative scales are rejected before anything is written.
func Plan(scale int) (map[string]int64, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale factor must be non-negative, got %d", scale)
	}

	counts := make(map[string]int64, len(Tables))
	if scale == TestScale {
		for _, s := range Tables {
			counts[s.Name] = testCounts[s.Name]
		}
		return counts, nil
	}

	sf := int64(scale)
	counts["date_dim"] = calendarFor(scale).days
	counts["time_dim"] = 96 // one slot per 15 minutes
	counts["customer_demographics"] = 10000
	counts["customer_address"] = capped(5000*sf, 500000)
	counts["income_band"] = 7
	counts["household_demographics"] = 7200
	counts["item"] = capped(1800*sf, 180000)
	counts["store"] = sqrtScaled(12, scale)
	counts["warehouse"] = sqrtScaled(5, scale)
	counts["ship_mode"] = 5
	counts["reason"] = 12
	counts["promotion"] = 24
	counts["customer"] = capped(10000*sf, 1000000)
	counts["web_site"] = sqrtScaled(6, scale)
	counts["call_center"] = sqrtScaled(4, scale)
	counts["web_page"] = 30   // one page per category/subcategory pair
	counts["catalog_page"] = 12 // two seasonal catalogs per category
	counts["store_sales"] = 3000 * sf
	counts["store_returns"] = 360 * sf
	counts["catalog_sales"] = 1500 * sf
	counts["catalog_returns"] = 200 * sf
	counts["web_sales"] = 1000 * sf
	counts["web_returns"] = 180 * sf
	counts["inventory"] = capped(1000*sf, 25000)
	return counts, nil
}

func capped(n, cap int64) int64 {
	if n > cap {
		return cap
	}
	return n
}

func sqrtScaled(base int64, scale int) int64 {
	n := int64(float64(base) * math.Sqrt(float64(scale)))
	if n < base {
		return base
	}
	return n
}

// calendar is the date range backing the date dimension; surrogate key k maps
// to start + (k-1) days.
type calendar struct {
	start time.Time
	days  int64
}

func calendarFor(scale int) calendar {
	if scale == TestScale {
		return calendar{start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), days: 7}
	}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	return calendar{start: start, days: int64(end.Sub(start).Hours()/24) + 1}
}

func (c calendar) date(sk int64) time.Time {
	return c.start.AddDate(0, 0, int(sk-1))
}

// clampSK keeps a derived date key inside the generated range.
func (c calendar) clampSK(sk int64) int64 {
	if sk < 1 {
		return 1
	}
	if sk > c.days {
		return c.days
	}
	return sk
}

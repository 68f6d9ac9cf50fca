package yahoo

import (
	"FinScan/internal/domain/models"

	"github.com/tidwall/gjson"
)

// parseFundamentals reads quoteSummary modules defaultKeyStatistics and
// financialData. Every missing field keeps its conservative default.
func parseFundamentals(body []byte) models.Fundamentals {
	f := models.DefaultFundamentals()
	res := gjson.GetBytes(body, "quoteSummary.result.0")
	if !res.Exists() {
		return f
	}
	raw := func(path string, dst *float64) {
		if v := res.Get(path + ".raw"); v.Exists() && v.Type == gjson.Number {
			*dst = v.Float()
		}
	}
	raw("financialData.returnOnEquity", &f.ReturnOnEquity)
	raw("financialData.debtToEquity", &f.DebtToEquity)
	raw("financialData.earningsGrowth", &f.EarningsGrowth)
	raw("financialData.revenueGrowth", &f.RevenueGrowth)
	raw("defaultKeyStatistics.forwardPE", &f.ForwardPE)
	return f
}

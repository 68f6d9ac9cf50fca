package yahoo

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"FinScan/internal/domain/models"
)

// chartResponse is the subset of the v8 chart payload the scanner reads.
// OHLCV arrays use pointers because the upstream emits null for missing bars.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				Currency           string   `json:"currency"`
				ExchangeName       string   `json:"exchangeName"`
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
				DataGranularity    string   `json:"dataGranularity"`
				Range              string   `json:"range"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func parseChart(body []byte) (*chartResponse, error) {
	var cr chartResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if cr.Chart.Error != nil && cr.Chart.Error.Code != "" {
		return nil, fmt.Errorf("chart error %s: %s", cr.Chart.Error.Code, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result")
	}
	return &cr, nil
}

// bars turns the parallel arrays of the first result into bars, dropping
// every row whose close is null or NaN. Missing open/high/low fall back to
// the close and missing volume to zero.
func (cr *chartResponse) bars() []models.Bar {
	res := cr.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return []models.Bar{}
	}
	q := res.Indicators.Quote[0]
	out := make([]models.Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		c, ok := at(q.Close, i)
		if !ok {
			continue
		}
		b := models.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Open:   orDefault(q.Open, i, c),
			High:   orDefault(q.High, i, c),
			Low:    orDefault(q.Low, i, c),
			Close:  c,
			Volume: orDefault(q.Volume, i, math.NaN()),
		}
		if b.High < b.Low {
			b.High, b.Low = b.Low, b.High
		}
		out = append(out, b)
	}
	return out
}

func (cr *chartResponse) regularMarketPrice() (float64, bool) {
	p := cr.Chart.Result[0].Meta.RegularMarketPrice
	if p == nil || math.IsNaN(*p) || *p <= 0 {
		return 0, false
	}
	return *p, true
}

func at(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil || math.IsNaN(*vals[i]) {
		return 0, false
	}
	return *vals[i], true
}

func orDefault(vals []*float64, i int, def float64) float64 {
	if v, ok := at(vals, i); ok {
		return v
	}
	return def
}

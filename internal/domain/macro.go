package domain

import (
	"encoding/json"
	"strconv"

	"github.com/ayankousky/market-data-proxy/pkg/utils/mathutils"
)

// NotAvailable is reported in place of a macro field the provider did not return
const NotAvailable = "N/A"

// MacroSnapshot holds the macroeconomic indicators shown next to the charts.
// A nil field is reported as NotAvailable.
type MacroSnapshot struct {
	DXY          *float64
	TenYearYield *float64
	Inflation    *float64
	FedRate      *float64

	// Warnings lists the sources that failed while the rest of the snapshot was built
	Warnings []error
}

// MissingFields counts the fields that will be reported as NotAvailable
func (m MacroSnapshot) MissingFields() int {
	missing := 0
	for _, v := range []*float64{m.DXY, m.TenYearYield, m.Inflation, m.FedRate} {
		if v == nil {
			missing++
		}
	}
	return missing
}

type macroPayload struct {
	DXY          any    `json:"dxy"`
	TenYearYield string `json:"tenYearYield"`
	Inflation    string `json:"inflation"`
	FedRate      string `json:"fedRate"`
}

// MarshalJSON renders the dollar index as a number rounded to 2 places and
// the rates as percent strings, with NotAvailable for missing values.
func (m MacroSnapshot) MarshalJSON() ([]byte, error) {
	p := macroPayload{
		DXY:          NotAvailable,
		TenYearYield: percent(m.TenYearYield),
		Inflation:    percent(m.Inflation),
		FedRate:      percent(m.FedRate),
	}
	if m.DXY != nil {
		p.DXY = mathutils.Round(*m.DXY, 2)
	}
	return json.Marshal(p)
}

func percent(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

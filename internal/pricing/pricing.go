// Package pricing holds the static price and delivery-zone tables and the
// quote calculator used by the live quote endpoint and by server-side
// minimum-amount validation.
package pricing

import (
	"strconv"
	"strings"
)

// MinimumOrder is the floor applied when no quote is computable.
const MinimumOrder = 200

// PricePerPage maps print type to the per-page price in pesos.
var PricePerPage = map[string]int{
	"bw":    5,
	"color": 12,
}

// Zone groups delivery areas that share one flat delivery fee.
type Zone struct {
	Label string
	Fee   int
	Areas []string
}

// Zones is ordered nearest-first. An area belongs to exactly one zone;
// lookup is by exact area name.
var Zones = []Zone{
	{
		Label: "Within 10km",
		Fee:   60,
		Areas: []string{"Antipolo", "Cainta", "Taytay", "San Mateo", "Marikina"},
	},
	{
		Label: "10km - 20km",
		Fee:   100,
		Areas: []string{"Pasig", "Quezon City", "Mandaluyong", "Rodriguez", "Cubao"},
	},
}

// ZoneFor resolves a delivery area to its zone.
func ZoneFor(area string) (Zone, bool) {
	for _, z := range Zones {
		for _, a := range z.Areas {
			if a == area {
				return z, true
			}
		}
	}
	return Zone{}, false
}

// KnownArea reports whether the area exists in the zone table.
func KnownArea(area string) bool {
	_, ok := ZoneFor(area)
	return ok
}

type Quote struct {
	PrintCost   int `json:"printCost"`
	DeliveryFee int `json:"deliveryFee"`
	Total       int `json:"total"`
}

// Compute prices an order: pages x price-per-page x copies, plus the flat
// fee of the delivery area's zone. The second return is false when any
// input is missing or invalid; an incomplete form is a normal state, not
// an error.
func Compute(printType string, pages, copies int, area string) (Quote, bool) {
	perPage, ok := PricePerPage[printType]
	if !ok || pages < 1 || copies < 1 {
		return Quote{}, false
	}
	zone, ok := ZoneFor(area)
	if !ok {
		return Quote{}, false
	}

	printCost := pages * perPage * copies
	return Quote{
		PrintCost:   printCost,
		DeliveryFee: zone.Fee,
		Total:       printCost + zone.Fee,
	}, true
}

// ComputeRaw is Compute over untrusted form strings.
func ComputeRaw(printType, pages, copies, area string) (Quote, bool) {
	p, err := strconv.Atoi(strings.TrimSpace(pages))
	if err != nil {
		return Quote{}, false
	}
	c, err := strconv.Atoi(strings.TrimSpace(copies))
	if err != nil {
		return Quote{}, false
	}
	return Compute(printType, p, c, area)
}

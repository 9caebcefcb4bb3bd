package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		printType string
		pages     int
		copies    int
		area      string
		want      Quote
		ok        bool
	}{
		{
			name:      "bw zone 1",
			printType: "bw", pages: 10, copies: 2, area: "Antipolo",
			want: Quote{PrintCost: 100, DeliveryFee: 60, Total: 160},
			ok:   true,
		},
		{
			name:      "color zone 2",
			printType: "color", pages: 3, copies: 1, area: "Quezon City",
			want: Quote{PrintCost: 36, DeliveryFee: 100, Total: 136},
			ok:   true,
		},
		{
			name:      "single page single copy",
			printType: "bw", pages: 1, copies: 1, area: "Cainta",
			want: Quote{PrintCost: 5, DeliveryFee: 60, Total: 65},
			ok:   true,
		},
		{name: "unknown print type", printType: "sepia", pages: 10, copies: 1, area: "Antipolo"},
		{name: "unknown area", printType: "bw", pages: 10, copies: 1, area: "Atlantis"},
		{name: "empty area", printType: "bw", pages: 10, copies: 1, area: ""},
		{name: "zero pages", printType: "bw", pages: 0, copies: 1, area: "Antipolo"},
		{name: "zero copies", printType: "bw", pages: 10, copies: 0, area: "Antipolo"},
		{name: "negative pages", printType: "bw", pages: -5, copies: 1, area: "Antipolo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compute(tt.printType, tt.pages, tt.copies, tt.area)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, okA := Compute("bw", 10, 2, "Antipolo")
	b, okB := Compute("bw", 10, 2, "Antipolo")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestComputeRaw(t *testing.T) {
	q, ok := ComputeRaw("bw", "10", "2", "Antipolo")
	require.True(t, ok)
	assert.Equal(t, 160, q.Total)

	_, ok = ComputeRaw("bw", "", "2", "Antipolo")
	assert.False(t, ok)

	_, ok = ComputeRaw("bw", "ten", "2", "Antipolo")
	assert.False(t, ok)

	q, ok = ComputeRaw("bw", " 10 ", "2", "Antipolo")
	require.True(t, ok)
	assert.Equal(t, 160, q.Total)
}

func TestZoneFor(t *testing.T) {
	zone, ok := ZoneFor("Marikina")
	require.True(t, ok)
	assert.Equal(t, 60, zone.Fee)

	zone, ok = ZoneFor("Pasig")
	require.True(t, ok)
	assert.Equal(t, 100, zone.Fee)

	_, ok = ZoneFor("marikina") // exact match only
	assert.False(t, ok)
}

func TestEveryAreaBelongsToOneZone(t *testing.T) {
	seen := map[string]string{}
	for _, z := range Zones {
		for _, a := range z.Areas {
			prev, dup := seen[a]
			require.Falsef(t, dup, "area %q in both %q and %q", a, prev, z.Label)
			seen[a] = z.Label
		}
	}
}

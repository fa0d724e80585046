package tool

import (
	"context"
	"math"
	"strings"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
)

type PetPolicy struct {
	Allowed     bool    `json:"allowed"`
	Fee         float64 `json:"fee"`
	Description string  `json:"description"`
}

type PricingRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type PropertyPoliciesOutput struct {
	PetPolicies   map[string]PetPolicy    `json:"pet_policies"`
	PricingRanges map[string]PricingRange `json:"pricing_ranges"`
	Availability  map[string]int          `json:"availability"`
}

// executePropertyPolicies derives the property's policy sheet: pet rules from
// the "Pets" amenity rows, rent ranges from the pricing summary, and a count
// of available units per type. The full result lands in the session bag so
// later turns can quote it without another lookup.
func (c *Catalog) executePropertyPolicies(ctx context.Context, tool string, sess *statex.Session) (contractx.ToolResult, error) {
	petAmenities, err := c.store.Amenities(ctx, "Pets")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	petPolicies := make(map[string]PetPolicy, len(petAmenities))
	for _, amenity := range petAmenities {
		// "Dog-friendly" -> "dog"
		animal := strings.ToLower(strings.TrimSpace(strings.SplitN(amenity.Name, "-", 2)[0]))
		petPolicies[animal] = PetPolicy{
			Allowed:     amenity.IsIncluded,
			Fee:         amenity.FeeAmount,
			Description: amenity.Description,
		}
	}

	summary, err := c.store.PricingSummary(ctx, "")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	pricingRanges := make(map[string]PricingRange, len(summary))
	for unitType, stats := range summary {
		pricingRanges[unitType] = PricingRange{
			Min:     stats.Min,
			Max:     stats.Max,
			Average: round2(stats.Mean),
		}
	}

	available, err := c.store.AvailableUnits(ctx, "", "")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	availability := make(map[string]int, 2)
	for _, unit := range available {
		availability[unit.UnitType]++
	}

	out := PropertyPoliciesOutput{
		PetPolicies:   petPolicies,
		PricingRanges: pricingRanges,
		Availability:  availability,
	}
	sess.Set(statex.KeyPropertyPolicies, out)

	return contractx.ToolResult{Tool: tool, Result: out}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package tool

import (
	"context"
	"fmt"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

type UnitsQueryOutput struct {
	AvailableCount int            `json:"available_count"`
	CountsByType   map[string]int `json:"counts_by_type"`
	Units          []storex.Unit  `json:"units"`
}

// executeUnitsQuery filters available units by type and by the move-in hint.
// The hint goes through the fixed move-in table; an unrecognized literal is
// used as-is, so a caller sending a canonical date gets the expected bound.
func (c *Catalog) executeUnitsQuery(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	unitType := stringArg(args, "unit_type")
	moveInHint := stringArg(args, "move_in_date")
	resolved := c.moveIn.Resolve(moveInHint)

	units, err := c.store.AvailableUnits(ctx, unitType, resolved)
	if err != nil {
		return contractx.ToolResult{}, err
	}

	counts := make(map[string]int, 2)
	for _, unit := range units {
		counts[unit.UnitType]++
	}

	sess.SetLastUnitSearch(statex.UnitSearch{
		UnitType:     unitType,
		MoveInDate:   moveInHint,
		ResolvedDate: resolved,
		ResultCount:  len(units),
		CountsByType: counts,
	})

	return contractx.ToolResult{
		Tool: tool,
		Result: UnitsQueryOutput{
			AvailableCount: len(units),
			CountsByType:   counts,
			Units:          units,
		},
	}, nil
}

type UnitDetailsOutput struct {
	Unit          *storex.Unit                   `json:"unit,omitempty"`
	UnitType      string                         `json:"unit_type,omitempty"`
	Pricing       *PricingRange                  `json:"pricing,omitempty"`
	PricingByType map[string]storex.PricingStats `json:"pricing_by_type,omitempty"`
}

// executeUnitDetails serves three shapes: an exact unit by id, the rent range
// for a type, or the full pricing table when neither is given. The whole
// result, error payloads included, is mirrored into the session.
func (c *Catalog) executeUnitDetails(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	var res contractx.ToolResult

	unitID := int64PtrArg(args, "unit_id")
	switch {
	case unitID != nil:
		id := *unitID
		unit, err := c.store.UnitByID(ctx, id)
		if err != nil {
			return contractx.ToolResult{}, err
		}
		if unit == nil {
			res = contractx.ToolResult{Tool: tool, Error: fmt.Sprintf("no unit found with id %d", id)}
			break
		}
		res = contractx.ToolResult{Tool: tool, Result: UnitDetailsOutput{Unit: unit}}

	case stringArg(args, "unit_type") != "":
		unitType := stringArg(args, "unit_type")
		summary, err := c.store.PricingSummary(ctx, unitType)
		if err != nil {
			return contractx.ToolResult{}, err
		}
		stats, ok := summary[unitType]
		if !ok {
			res = contractx.ToolResult{Tool: tool, Error: fmt.Sprintf("no pricing information found for %s", unitType)}
			break
		}
		res = contractx.ToolResult{
			Tool: tool,
			Result: UnitDetailsOutput{
				UnitType: unitType,
				Pricing: &PricingRange{
					Min:     stats.Min,
					Max:     stats.Max,
					Average: round2(stats.Mean),
				},
			},
		}

	default:
		summary, err := c.store.PricingSummary(ctx, "")
		if err != nil {
			return contractx.ToolResult{}, err
		}
		res = contractx.ToolResult{Tool: tool, Result: UnitDetailsOutput{PricingByType: summary}}
	}

	sess.Set(statex.KeyLastUnitDetails, res)
	return res, nil
}

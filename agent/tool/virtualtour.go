package tool

import (
	"fmt"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
)

// Fixed reference data: one virtual tour link per toured floor-plan type.
var virtualTourLinks = map[string]string{
	"1_bedroom": "https://photos.app.goo.gl/tzHkairchH2cBTQq6",
	"2_bedroom": "https://photos.app.goo.gl/w9ARXbSUDza57eFS6",
}

type VirtualTourOutput struct {
	UnitType string `json:"unit_type"`
	TourLink string `json:"tour_link"`
}

func (c *Catalog) executeVirtualTourLink(tool string, args map[string]any) (contractx.ToolResult, error) {
	unitType := stringArg(args, "unit_type")
	link, ok := virtualTourLinks[unitType]
	if !ok {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("no virtual tour available for %s", unitType),
		}, nil
	}

	return contractx.ToolResult{
		Tool: tool,
		Result: VirtualTourOutput{
			UnitType: unitType,
			TourLink: link,
		},
	}, nil
}

package tool

import (
	"context"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

type AmenitiesOutput struct {
	AmenitiesCount int                         `json:"amenities_count"`
	Amenities      []storex.Amenity            `json:"amenities"`
	Categories     map[string][]storex.Amenity `json:"categories"`
}

func (c *Catalog) executeAmenitiesInfo(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	category := stringArg(args, "category")

	amenities, err := c.store.Amenities(ctx, category)
	if err != nil {
		return contractx.ToolResult{}, err
	}

	byCategory := make(map[string][]storex.Amenity, 4)
	for _, amenity := range amenities {
		byCategory[amenity.Category] = append(byCategory[amenity.Category], amenity)
	}

	sess.SetLastAmenitiesQuery(statex.AmenitiesQuery{
		Category:    category,
		ResultCount: len(amenities),
	})

	return contractx.ToolResult{
		Tool: tool,
		Result: AmenitiesOutput{
			AmenitiesCount: len(amenities),
			Amenities:      amenities,
			Categories:     byCategory,
		},
	}, nil
}

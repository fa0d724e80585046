package tool

import (
	"context"
	"fmt"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

type UnitSummary struct {
	UnitNumber string  `json:"unit_number"`
	UnitType   string  `json:"unit_type"`
	FloorPlan  string  `json:"floor_plan"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms"`
}

type TourScheduleOutput struct {
	TourID    int64        `json:"tour_id"`
	TourDate  string       `json:"tour_date"`
	TourTime  string       `json:"tour_time"`
	IsVirtual bool         `json:"is_virtual"`
	Unit      *UnitSummary `json:"unit,omitempty"`
	Message   string       `json:"message"`
}

// executeTourSchedule books a tour for the conversation's current prospect.
// Preconditions fail as data, each with its own payload: no established
// prospect, then an unparseable date (checked before the time so the first
// bad field is the one reported), then an unparseable time. With a type but
// no unit id, the first available unit of that type in storage order is
// attached.
func (c *Catalog) executeTourSchedule(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	prospectID := sess.CurrentProspectID()
	if prospectID == "" {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "no prospect identified; collect prospect details before scheduling",
		}, nil
	}

	rawDate := stringArg(args, "tour_date")
	tourDate, err := c.tourDates.Parse(rawDate)
	if err != nil {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("could not parse tour date: %s", rawDate),
		}, nil
	}

	rawTime := stringArg(args, "tour_time")
	tourTime, err := c.tourTimes.Parse(rawTime)
	if err != nil {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("could not parse tour time: %s", rawTime),
		}, nil
	}

	isVirtual := boolArg(args, "is_virtual")
	unitID := int64PtrArg(args, "unit_id")
	unitType := stringArg(args, "unit_type")

	if unitID == nil && unitType != "" {
		units, err := c.store.AvailableUnits(ctx, unitType, "")
		if err != nil {
			return contractx.ToolResult{}, err
		}
		if len(units) > 0 {
			unitID = &units[0].ID
		}
	}

	tourID := c.store.CreateTourBooking(ctx, storex.NewTourBooking{
		ProspectID: prospectID,
		TourDate:   tourDate,
		TourTime:   tourTime,
		UnitID:     unitID,
		IsVirtual:  isVirtual,
		Notes:      stringArg(args, "notes"),
	})
	if tourID == storex.BookingFailed {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "failed to schedule tour",
		}, nil
	}

	sess.SetLastScheduledTour(statex.ScheduledTour{
		TourID:    tourID,
		TourDate:  tourDate,
		TourTime:  tourTime,
		UnitID:    unitID,
		UnitType:  unitType,
		IsVirtual: isVirtual,
	})

	var unit *UnitSummary
	if unitID != nil {
		u, err := c.store.UnitByID(ctx, *unitID)
		if err != nil {
			return contractx.ToolResult{}, err
		}
		if u != nil {
			unit = &UnitSummary{
				UnitNumber: u.UnitNumber,
				UnitType:   u.UnitType,
				FloorPlan:  u.FloorPlan,
				Bedrooms:   u.Bedrooms,
				Bathrooms:  u.Bathrooms,
			}
		}
	}

	return contractx.ToolResult{
		Tool: tool,
		Result: TourScheduleOutput{
			TourID:    tourID,
			TourDate:  tourDate,
			TourTime:  tourTime,
			IsVirtual: isVirtual,
			Unit:      unit,
			Message:   "tour scheduled",
		},
	}, nil
}

type TourListOutput struct {
	ProspectID string                `json:"prospect_id"`
	TourCount  int                   `json:"tour_count"`
	Tours      []storex.TourWithUnit `json:"tours"`
}

// executeTourList lists the resolved prospect's bookings with the joined
// unit summary, soonest first.
func (c *Catalog) executeTourList(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	prospectID := resolveProspectID(args, sess)
	if prospectID == "" {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "no prospect id provided to list tours",
		}, nil
	}

	tours, err := c.store.TourBookingsForProspect(ctx, prospectID)
	if err != nil {
		return contractx.ToolResult{}, err
	}

	return contractx.ToolResult{
		Tool: tool,
		Result: TourListOutput{
			ProspectID: prospectID,
			TourCount:  len(tours),
			Tours:      tours,
		},
	}, nil
}

package tool

import (
	"context"
	"fmt"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

type ProspectCreateOutput struct {
	ProspectID string `json:"prospect_id"`
	Message    string `json:"message"`
}

// executeProspectCreate builds a prospect from whatever details the engine
// collected so far, stores it, and marks it as the conversation's current
// prospect. The move-in hint is resolved before hitting the store; the bag
// keeps both the literal and the resolved date.
func (c *Catalog) executeProspectCreate(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	moveInHint := stringArg(args, "move_in_date")
	resolved := c.moveIn.Resolve(moveInHint)
	hasPets := boolPtrArg(args, "has_pets")

	np := storex.NewProspect{
		Name:              stringArg(args, "name"),
		Phone:             stringArg(args, "phone"),
		Email:             stringArg(args, "email"),
		MoveInDate:        resolved,
		PreferredUnitType: stringArg(args, "preferred_unit_type"),
		HasPets:           hasPets,
	}

	prospectID, err := c.store.CreateProspect(ctx, np)
	if err != nil {
		return contractx.ToolResult{}, err
	}

	sess.SetCurrentProspectID(prospectID)
	sess.SetProspectInfo(statex.ProspectInfo{
		ProspectID:         prospectID,
		Name:               np.Name,
		Phone:              np.Phone,
		Email:              np.Email,
		MoveInDate:         moveInHint,
		ResolvedMoveInDate: resolved,
		PreferredUnitType:  np.PreferredUnitType,
		HasPets:            hasPets,
	})

	return contractx.ToolResult{
		Tool: tool,
		Result: ProspectCreateOutput{
			ProspectID: prospectID,
			Message:    "prospect created",
		},
	}, nil
}

type ProspectUpdateOutput struct {
	ProspectID string `json:"prospect_id"`
	Message    string `json:"message"`
}

// executeProspectUpdate applies only the supplied fields to the resolved
// prospect and merges the same changes into the session snapshot so the bag
// and the store agree.
func (c *Catalog) executeProspectUpdate(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	prospectID := resolveProspectID(args, sess)
	if prospectID == "" {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "no prospect id provided for update",
		}, nil
	}

	upd := storex.ProspectUpdate{
		Name:              stringPtrArg(args, "name"),
		Phone:             stringPtrArg(args, "phone"),
		Email:             stringPtrArg(args, "email"),
		PreferredUnitType: stringPtrArg(args, "preferred_unit_type"),
		HasPets:           boolPtrArg(args, "has_pets"),
		Income:            floatPtrArg(args, "income"),
		CreditScore:       intPtrArg(args, "credit_score"),
		Notes:             stringPtrArg(args, "notes"),
	}

	moveInHint := stringArg(args, "move_in_date")
	var resolved string
	if moveInHint != "" {
		resolved = c.moveIn.Resolve(moveInHint)
		upd.MoveInDate = &resolved
	}

	ok, err := c.store.UpdateProspect(ctx, prospectID, upd)
	if err != nil {
		return contractx.ToolResult{}, err
	}
	if !ok {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "failed to update prospect information",
		}, nil
	}

	info, _ := sess.ProspectInfo()
	info.ProspectID = prospectID
	mergeProspectInfo(&info, upd, moveInHint)
	sess.SetProspectInfo(info)

	return contractx.ToolResult{
		Tool: tool,
		Result: ProspectUpdateOutput{
			ProspectID: prospectID,
			Message:    "prospect updated",
		},
	}, nil
}

type ProspectGetOutput struct {
	Prospect *storex.Prospect `json:"prospect"`
}

// executeProspectGet fetches the resolved prospect and refreshes the session
// snapshot from the stored record.
func (c *Catalog) executeProspectGet(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
	prospectID := resolveProspectID(args, sess)
	if prospectID == "" {
		return contractx.ToolResult{
			Tool:  tool,
			Error: "no prospect id provided to retrieve prospect information",
		}, nil
	}

	p, err := c.store.ProspectByID(ctx, prospectID)
	if err != nil {
		return contractx.ToolResult{}, err
	}
	if p == nil {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("no prospect found with id %s", prospectID),
		}, nil
	}

	sess.SetProspectInfo(snapshotFromRecord(p))

	return contractx.ToolResult{
		Tool:   tool,
		Result: ProspectGetOutput{Prospect: p},
	}, nil
}

// resolveProspectID prefers the explicit argument over the session's current
// prospect.
func resolveProspectID(args map[string]any, sess *statex.Session) string {
	if id := stringArg(args, "prospect_id"); id != "" {
		return id
	}
	return sess.CurrentProspectID()
}

func mergeProspectInfo(info *statex.ProspectInfo, upd storex.ProspectUpdate, moveInHint string) {
	if upd.Name != nil {
		info.Name = *upd.Name
	}
	if upd.Phone != nil {
		info.Phone = *upd.Phone
	}
	if upd.Email != nil {
		info.Email = *upd.Email
	}
	if upd.MoveInDate != nil {
		info.MoveInDate = moveInHint
		info.ResolvedMoveInDate = *upd.MoveInDate
	}
	if upd.PreferredUnitType != nil {
		info.PreferredUnitType = *upd.PreferredUnitType
	}
	if upd.HasPets != nil {
		info.HasPets = upd.HasPets
	}
	if upd.Income != nil {
		info.Income = upd.Income
	}
	if upd.CreditScore != nil {
		info.CreditScore = upd.CreditScore
	}
	if upd.Notes != nil {
		info.Notes = *upd.Notes
	}
}

func snapshotFromRecord(p *storex.Prospect) statex.ProspectInfo {
	return statex.ProspectInfo{
		ProspectID:         p.ProspectID,
		Name:               p.Name,
		Phone:              p.Phone,
		Email:              p.Email,
		MoveInDate:         p.MoveInDate,
		ResolvedMoveInDate: p.MoveInDate,
		PreferredUnitType:  p.PreferredUnitType,
		HasPets:            p.HasPets,
		Income:             p.Income,
		CreditScore:        p.CreditScore,
		Notes:              p.Notes,
	}
}

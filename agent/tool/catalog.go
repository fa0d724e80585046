package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/Maadhav/rental-ai-agent/agent/contract"
	parsex "github.com/Maadhav/rental-ai-agent/agent/parse"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

const (
	ToolPropertyPolicies = "property.policies"
	ToolUnitsQuery       = "units.query"
	ToolUnitDetails      = "units.details"
	ToolAmenitiesInfo    = "amenities.info"
	ToolProspectCreate   = "prospects.create"
	ToolProspectUpdate   = "prospects.update"
	ToolProspectGet      = "prospects.get"
	ToolTourSchedule     = "tours.schedule"
	ToolTourList         = "tours.list"
	ToolVirtualTourLink  = "tours.virtual_link"
)

// Executor dispatches one tool call on behalf of the dialogue engine. The
// session bag is the engine's and may be nil; tools tolerate that. A Go error
// means the storage layer itself failed; business failures come back inside
// the ToolResult.
type Executor func(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error)

// Execute runs one decoded engine request.
func (e Executor) Execute(ctx context.Context, req contractx.ToolRequest, sess *statex.Session) (contractx.ToolResult, error) {
	return e(ctx, req.Tool, req.Args, sess)
}

// Catalog binds the leasing tools to the rental store and the fixed
// natural-language parsers.
type Catalog struct {
	store     *storex.Store
	moveIn    parsex.MoveInDateParser
	tourDates parsex.TourDateParser
	tourTimes parsex.TourTimeParser
}

// Option customizes a Catalog.
type Option func(*Catalog)

func WithMoveInDateParser(p parsex.MoveInDateParser) Option {
	return func(c *Catalog) {
		if p != nil {
			c.moveIn = p
		}
	}
}

func WithTourDateParser(p parsex.TourDateParser) Option {
	return func(c *Catalog) {
		if p != nil {
			c.tourDates = p
		}
	}
}

func WithTourTimeParser(p parsex.TourTimeParser) Option {
	return func(c *Catalog) {
		if p != nil {
			c.tourTimes = p
		}
	}
}

func NewCatalog(store *storex.Store, opts ...Option) (*Catalog, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: rental store is required", contractx.ErrValidation)
	}
	c := &Catalog{
		store:     store,
		moveIn:    parsex.FixedMoveInDates{},
		tourDates: parsex.RelativeTourDates{},
		tourTimes: parsex.ClockTimes{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Build returns the tool declarations for the engine plus the executor, the
// pair a hosting runtime registers together.
func Build(store *storex.Store, opts ...Option) ([]*schema.ToolInfo, Executor, error) {
	c, err := NewCatalog(store, opts...)
	if err != nil {
		return nil, nil, err
	}
	return Infos(), c.Executor(), nil
}

func (c *Catalog) Executor() Executor {
	return func(ctx context.Context, tool string, args map[string]any, sess *statex.Session) (contractx.ToolResult, error) {
		switch tool {
		case ToolPropertyPolicies:
			return c.executePropertyPolicies(ctx, tool, sess)
		case ToolUnitsQuery:
			return c.executeUnitsQuery(ctx, tool, args, sess)
		case ToolUnitDetails:
			return c.executeUnitDetails(ctx, tool, args, sess)
		case ToolAmenitiesInfo:
			return c.executeAmenitiesInfo(ctx, tool, args, sess)
		case ToolProspectCreate:
			return c.executeProspectCreate(ctx, tool, args, sess)
		case ToolProspectUpdate:
			return c.executeProspectUpdate(ctx, tool, args, sess)
		case ToolProspectGet:
			return c.executeProspectGet(ctx, tool, args, sess)
		case ToolTourSchedule:
			return c.executeTourSchedule(ctx, tool, args, sess)
		case ToolTourList:
			return c.executeTourList(ctx, tool, args, sess)
		case ToolVirtualTourLink:
			return c.executeVirtualTourLink(tool, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is not in the leasing catalog", tool),
			}, nil
		}
	}
}

// Infos declares every tool's name and argument schema for the engine.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolPropertyPolicies,
			Desc: "Look up pet policies, rent ranges per unit type, and current availability counts.",
		},
		{
			Name: ToolUnitsQuery,
			Desc: "Query currently available units, optionally by type and desired move-in date.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"unit_type":    {Type: schema.String, Desc: "Unit type, e.g. 1_bedroom or 2_bedroom"},
				"move_in_date": {Type: schema.String, Desc: "Desired move-in date, natural language or YYYY-MM-DD"},
			}),
		},
		{
			Name: ToolUnitDetails,
			Desc: "Get details for one unit by id, the rent range for a type, or the full pricing table.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"unit_id":   {Type: schema.Integer, Desc: "Specific unit id"},
				"unit_type": {Type: schema.String, Desc: "Unit type, e.g. 1_bedroom or 2_bedroom"},
			}),
		},
		{
			Name: ToolAmenitiesInfo,
			Desc: "List property amenities, optionally filtered by category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": {Type: schema.String, Desc: "Amenity category, e.g. Pets or Building"},
			}),
		},
		{
			Name: ToolProspectCreate,
			Desc: "Create a rental prospect record from whatever details are known so far.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"name":                {Type: schema.String, Desc: "Prospect's name"},
				"phone":               {Type: schema.String, Desc: "Phone number"},
				"email":               {Type: schema.String, Desc: "Email address"},
				"move_in_date":        {Type: schema.String, Desc: "Desired move-in date, natural language or YYYY-MM-DD"},
				"preferred_unit_type": {Type: schema.String, Desc: "Preferred unit type"},
				"has_pets":            {Type: schema.Boolean, Desc: "Whether the prospect has pets"},
			}),
		},
		{
			Name: ToolProspectUpdate,
			Desc: "Update the current prospect with newly learned details. Only supplied fields change.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"prospect_id":         {Type: schema.String, Desc: "Prospect id; defaults to the conversation's current prospect"},
				"name":                {Type: schema.String, Desc: "Prospect's name"},
				"phone":               {Type: schema.String, Desc: "Phone number"},
				"email":               {Type: schema.String, Desc: "Email address"},
				"move_in_date":        {Type: schema.String, Desc: "Desired move-in date, natural language or YYYY-MM-DD"},
				"preferred_unit_type": {Type: schema.String, Desc: "Preferred unit type"},
				"has_pets":            {Type: schema.Boolean, Desc: "Whether the prospect has pets"},
				"income":              {Type: schema.Number, Desc: "Annual income"},
				"credit_score":        {Type: schema.Integer, Desc: "Credit score"},
				"notes":               {Type: schema.String, Desc: "Free-text notes about the prospect"},
			}),
		},
		{
			Name: ToolProspectGet,
			Desc: "Fetch the stored record for a prospect.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"prospect_id": {Type: schema.String, Desc: "Prospect id; defaults to the conversation's current prospect"},
			}),
		},
		{
			Name: ToolTourSchedule,
			Desc: "Schedule an in-person or virtual tour for the conversation's current prospect.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"tour_date":  {Type: schema.String, Desc: "Tour date, e.g. 2025-06-15 or tomorrow", Required: true},
				"tour_time":  {Type: schema.String, Desc: "Tour time, e.g. 14:00 or 2pm", Required: true},
				"is_virtual": {Type: schema.Boolean, Desc: "Whether the tour is virtual"},
				"unit_id":    {Type: schema.Integer, Desc: "Specific unit to tour"},
				"unit_type":  {Type: schema.String, Desc: "Unit type to tour when no specific unit is chosen"},
				"notes":      {Type: schema.String, Desc: "Free-text notes for the tour"},
			}),
		},
		{
			Name: ToolTourList,
			Desc: "List the tours scheduled for a prospect.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"prospect_id": {Type: schema.String, Desc: "Prospect id; defaults to the conversation's current prospect"},
			}),
		},
		{
			Name: ToolVirtualTourLink,
			Desc: "Get the virtual tour link for a unit type.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"unit_type": {Type: schema.String, Desc: "Unit type, e.g. 1_bedroom or 2_bedroom", Required: true},
			}),
		},
	}
}

package tool

import (
	"context"
	"strings"
	"testing"

	statex "github.com/Maadhav/rental-ai-agent/agent/state"
)

func TestUnitsQueryResolvesMoveInHint(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)
	sess := statex.NewSession()

	out, err := c.Executor()(context.Background(), ToolUnitsQuery, map[string]any{
		"unit_type":    "1_bedroom",
		"move_in_date": "july",
	}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := out.Result.(UnitsQueryOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}

	// "july" -> 2025-07-01, which keeps unit 101 and drops 102 (2025-07-15).
	if result.AvailableCount != 1 || len(result.Units) != 1 || result.Units[0].ID != 101 {
		t.Fatalf("query result = %+v", result)
	}

	search, ok := sess.LastUnitSearch()
	if !ok {
		t.Fatal("search must be recorded in the session")
	}
	if search.MoveInDate != "july" || search.ResolvedDate != "2025-07-01" || search.ResultCount != 1 {
		t.Fatalf("search snapshot = %+v", search)
	}
}

func TestUnitsQueryNoFilters(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)

	out, err := c.Executor()(context.Background(), ToolUnitsQuery, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := out.Result.(UnitsQueryOutput)
	if result.AvailableCount != 4 {
		t.Fatalf("available = %d, want 4", result.AvailableCount)
	}
	if result.CountsByType["1_bedroom"] != 2 || result.CountsByType["2_bedroom"] != 2 {
		t.Fatalf("counts = %+v", result.CountsByType)
	}
}

func TestUnitDetailsByID(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)
	exec := c.Executor()

	out, err := exec(context.Background(), ToolUnitDetails, map[string]any{"unit_id": float64(101)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	details, ok := out.Result.(UnitDetailsOutput)
	if !ok || details.Unit == nil || details.Unit.UnitNumber != "101" {
		t.Fatalf("details = %+v, ok=%v", details, ok)
	}

	out, err = exec(context.Background(), ToolUnitDetails, map[string]any{"unit_id": 999}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() || !strings.Contains(out.Error, "999") {
		t.Fatalf("miss must return an error payload naming the id: %+v", out)
	}
}

func TestUnitDetailsByType(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)
	exec := c.Executor()

	out, err := exec(context.Background(), ToolUnitDetails, map[string]any{"unit_type": "2_bedroom"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	details := out.Result.(UnitDetailsOutput)
	if details.Pricing == nil || details.Pricing.Min != 2100 || details.Pricing.Max != 2200 || details.Pricing.Average != 2150 {
		t.Fatalf("pricing = %+v", details.Pricing)
	}

	out, err = exec(context.Background(), ToolUnitDetails, map[string]any{"unit_type": "studio"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() || !strings.Contains(out.Error, "studio") {
		t.Fatalf("unknown type must return an error payload: %+v", out)
	}
}

func TestUnitDetailsFullTable(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)
	sess := statex.NewSession()

	out, err := c.Executor()(context.Background(), ToolUnitDetails, nil, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	details := out.Result.(UnitDetailsOutput)
	if len(details.PricingByType) != 2 {
		t.Fatalf("pricing table = %+v", details.PricingByType)
	}

	if _, ok := sess.Get(statex.KeyLastUnitDetails); !ok {
		t.Fatal("details must be recorded in the session")
	}
}

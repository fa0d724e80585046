package tool

import (
	"context"
	"strings"
	"testing"
	"time"

	parsex "github.com/Maadhav/rental-ai-agent/agent/parse"
	statex "github.com/Maadhav/rental-ai-agent/agent/state"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	}
}

func TestTourScheduleRequiresProspect(t *testing.T) {
	t.Parallel()

	c, st := newTestCatalog(t)
	exec := c.Executor()
	ctx := context.Background()

	out, err := exec(ctx, ToolTourSchedule, map[string]any{
		"tour_date": "tomorrow",
		"tour_time": "3pm",
	}, statex.NewSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() || !strings.Contains(out.Error, "no prospect") {
		t.Fatalf("expected missing-prospect payload, got %+v", out)
	}

	// Nothing may have been written: a fresh prospect still has zero tours.
	id, err := st.CreateProspect(ctx, storex.NewProspect{Name: "Check"})
	if err != nil {
		t.Fatalf("CreateProspect() error = %v", err)
	}
	tours, err := st.TourBookingsForProspect(ctx, id)
	if err != nil {
		t.Fatalf("TourBookingsForProspect() error = %v", err)
	}
	if len(tours) != 0 {
		t.Fatalf("tours = %d, want 0", len(tours))
	}
}

func TestTourScheduleBadDateShortCircuits(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t)
	sess := statex.NewSession()
	exec := c.Executor()
	ctx := context.Background()

	if _, err := exec(ctx, ToolProspectCreate, map[string]any{"name": "Mark"}, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No date at all: the date error must come back even though the time is
	// also unparseable.
	out, err := exec(ctx, ToolTourSchedule, map[string]any{"tour_time": "late-ish pm"}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() || !strings.Contains(out.Error, "tour date") {
		t.Fatalf("expected date payload, got %+v", out)
	}

	out, err = exec(ctx, ToolTourSchedule, map[string]any{
		"tour_date": "tomorrow",
		"tour_time": "late-ish pm",
	}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() || !strings.Contains(out.Error, "tour time") {
		t.Fatalf("expected time payload, got %+v", out)
	}
}

// The canonical walkthrough: create Mark, search 1-bedrooms for July, book a
// tour for tomorrow at 3pm with no explicit unit.
func TestTourScheduleEndToEnd(t *testing.T) {
	t.Parallel()

	c, st := newTestCatalog(t, WithTourDateParser(parsex.RelativeTourDates{Now: fixedClock()}))
	sess := statex.NewSession()
	exec := c.Executor()
	ctx := context.Background()

	out, err := exec(ctx, ToolProspectCreate, map[string]any{"name": "Mark"}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prospectID := out.Result.(ProspectCreateOutput).ProspectID

	out, err = exec(ctx, ToolUnitsQuery, map[string]any{
		"unit_type":    "1_bedroom",
		"move_in_date": "july",
	}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if search, _ := sess.LastUnitSearch(); search.ResolvedDate != "2025-07-01" {
		t.Fatalf("search snapshot = %+v", search)
	}

	out, err = exec(ctx, ToolTourSchedule, map[string]any{
		"tour_date": "tomorrow",
		"tour_time": "3pm",
		"unit_type": "1_bedroom",
	}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK() {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	booked, ok := out.Result.(TourScheduleOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if booked.TourDate != "2025-06-15" || booked.TourTime != "15:00" {
		t.Fatalf("booking = %+v", booked)
	}
	// First available 1-bedroom in storage order is unit 101.
	if booked.Unit == nil || booked.Unit.UnitNumber != "101" || booked.Unit.FloorPlan != "Maple" {
		t.Fatalf("attached unit = %+v", booked.Unit)
	}

	tours, err := st.TourBookingsForProspect(ctx, prospectID)
	if err != nil {
		t.Fatalf("TourBookingsForProspect() error = %v", err)
	}
	if len(tours) != 1 {
		t.Fatalf("tours = %d, want 1", len(tours))
	}
	row := tours[0]
	if row.TourDate != "2025-06-15" || row.TourTime != "15:00" || row.Status != "Scheduled" {
		t.Fatalf("stored booking = %+v", row)
	}
	if row.UnitID == nil || *row.UnitID != 101 {
		t.Fatalf("stored unit id = %v, want 101", row.UnitID)
	}

	tour, ok := sess.LastScheduledTour()
	if !ok || tour.TourID != booked.TourID || tour.TourTime != "15:00" {
		t.Fatalf("tour snapshot = %+v, ok=%v", tour, ok)
	}
}

func TestTourScheduleExplicitUnit(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t, WithTourDateParser(parsex.RelativeTourDates{Now: fixedClock()}))
	sess := statex.NewSession()
	exec := c.Executor()
	ctx := context.Background()

	if _, err := exec(ctx, ToolProspectCreate, map[string]any{"name": "Dana"}, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := exec(ctx, ToolTourSchedule, map[string]any{
		"tour_date":  "2025-06-20",
		"tour_time":  "10:30",
		"unit_id":    float64(301),
		"is_virtual": true,
		"notes":      "prefers mornings",
	}, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	booked := out.Result.(TourScheduleOutput)
	if booked.TourDate != "2025-06-20" || booked.TourTime != "10:30" || !booked.IsVirtual {
		t.Fatalf("booking = %+v", booked)
	}
	if booked.Unit == nil || booked.Unit.UnitNumber != "301" {
		t.Fatalf("attached unit = %+v", booked.Unit)
	}
}

func TestTourList(t *testing.T) {
	t.Parallel()

	c, _ := newTestCatalog(t, WithTourDateParser(parsex.RelativeTourDates{Now: fixedClock()}))
	sess := statex.NewSession()
	exec := c.Executor()
	ctx := context.Background()

	out, err := exec(ctx, ToolTourList, nil, statex.NewSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK() {
		t.Fatal("list without a resolvable prospect must return an error payload")
	}

	if _, err := exec(ctx, ToolProspectCreate, map[string]any{"name": "Mark"}, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := exec(ctx, ToolTourSchedule, map[string]any{"tour_date": "next week", "tour_time": "2pm"}, sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err = exec(ctx, ToolTourList, nil, sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listed, ok := out.Result.(TourListOutput)
	if !ok || listed.TourCount != 1 {
		t.Fatalf("list result = %+v, ok=%v", listed, ok)
	}
	if listed.Tours[0].TourDate != "2025-06-21" || listed.Tours[0].TourTime != "14:00" {
		t.Fatalf("listed tour = %+v", listed.Tours[0])
	}
}

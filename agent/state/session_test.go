package state

import "testing"

func TestNilSessionIsTolerated(t *testing.T) {
	t.Parallel()

	var s *Session
	s.Set(KeyCurrentProspectID, "p-1")
	s.Ensure()

	if got := s.CurrentProspectID(); got != "" {
		t.Fatalf("CurrentProspectID() on nil session = %q, want empty", got)
	}
	if _, ok := s.Get(KeyProspectInfo); ok {
		t.Fatal("Get() on nil session must report absent")
	}
	if _, ok := s.ProspectInfo(); ok {
		t.Fatal("ProspectInfo() on nil session must report absent")
	}
}

func TestSessionLazyInit(t *testing.T) {
	t.Parallel()

	s := &Session{}
	s.Set(KeyCurrentProspectID, "p-2")

	if s.Values == nil {
		t.Fatal("Set() must initialize the map")
	}
	if got := s.CurrentProspectID(); got != "p-2" {
		t.Fatalf("CurrentProspectID() = %q, want p-2", got)
	}
}

func TestSessionTypedSnapshots(t *testing.T) {
	t.Parallel()

	s := NewSession()

	hasPets := true
	s.SetProspectInfo(ProspectInfo{
		ProspectID: "p-3",
		Name:       "Mark",
		MoveInDate: "july",
		HasPets:    &hasPets,
	})
	info, ok := s.ProspectInfo()
	if !ok {
		t.Fatal("ProspectInfo() must report present")
	}
	if info.Name != "Mark" || info.ProspectID != "p-3" {
		t.Fatalf("unexpected snapshot: %+v", info)
	}
	if info.HasPets == nil || !*info.HasPets {
		t.Fatal("HasPets must survive the round trip")
	}

	s.SetLastUnitSearch(UnitSearch{UnitType: "1_bedroom", ResultCount: 2})
	search, ok := s.LastUnitSearch()
	if !ok || search.ResultCount != 2 {
		t.Fatalf("LastUnitSearch() = %+v, ok=%v", search, ok)
	}

	s.SetLastScheduledTour(ScheduledTour{TourID: 7, TourDate: "2025-06-15"})
	tour, ok := s.LastScheduledTour()
	if !ok || tour.TourID != 7 {
		t.Fatalf("LastScheduledTour() = %+v, ok=%v", tour, ok)
	}
}

func TestSessionMistypedValueReportsAbsent(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Set(KeyProspectInfo, "not a snapshot")

	if _, ok := s.ProspectInfo(); ok {
		t.Fatal("ProspectInfo() must report absent for a mistyped value")
	}
	if got := s.GetString(KeyProspectInfo); got != "not a snapshot" {
		t.Fatalf("GetString() = %q", got)
	}
}

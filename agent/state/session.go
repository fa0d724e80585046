package state

// Session keys written by the tool layer. The dialogue engine owns the bag,
// carries it across turns, and passes it by reference into every tool call.
const (
	KeyCurrentProspectID  = "current_prospect_id"
	KeyProspectInfo       = "prospect_info"
	KeyPropertyPolicies   = "property_policies"
	KeyLastUnitSearch     = "last_unit_search"
	KeyLastUnitDetails    = "last_unit_details"
	KeyLastAmenitiesQuery = "last_amenities_query"
	KeyLastScheduledTour  = "last_scheduled_tour"
)

// Session is the per-conversation mutable key-value bag. Every accessor is
// nil-safe: reads on a nil or empty session return zero values, and writes on
// a nil session are dropped rather than panicking, so no tool has to check
// the bag before using it.
type Session struct {
	Values map[string]any `json:"values,omitempty"`
}

func NewSession() *Session {
	return &Session{Values: make(map[string]any, 8)}
}

// Ensure lazily initializes the underlying map.
func (s *Session) Ensure() {
	if s == nil {
		return
	}
	if s.Values == nil {
		s.Values = make(map[string]any, 8)
	}
}

func (s *Session) Set(key string, val any) {
	if s == nil || key == "" {
		return
	}
	s.Ensure()
	s.Values[key] = val
}

func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Values == nil {
		return nil, false
	}
	v, ok := s.Values[key]
	return v, ok
}

func (s *Session) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

/* --------------------------- Typed snapshots ---------------------------- */

// ProspectInfo is the denormalized prospect snapshot kept in the bag so later
// turns can answer without a store round trip. MoveInDate keeps the literal
// the caller supplied; ResolvedMoveInDate holds the canonical date it mapped to.
type ProspectInfo struct {
	ProspectID         string   `json:"prospect_id"`
	Name               string   `json:"name,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Email              string   `json:"email,omitempty"`
	MoveInDate         string   `json:"move_in_date,omitempty"`
	ResolvedMoveInDate string   `json:"resolved_move_in_date,omitempty"`
	PreferredUnitType  string   `json:"preferred_unit_type,omitempty"`
	HasPets            *bool    `json:"has_pets,omitempty"`
	Income             *float64 `json:"income,omitempty"`
	CreditScore        *int     `json:"credit_score,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// UnitSearch records the parameters and result shape of the last unit query.
type UnitSearch struct {
	UnitType     string         `json:"unit_type,omitempty"`
	MoveInDate   string         `json:"move_in_date,omitempty"`
	ResolvedDate string         `json:"resolved_date,omitempty"`
	ResultCount  int            `json:"result_count"`
	CountsByType map[string]int `json:"counts_by_type,omitempty"`
}

// AmenitiesQuery records the last amenities lookup.
type AmenitiesQuery struct {
	Category    string `json:"category,omitempty"`
	ResultCount int    `json:"result_count"`
}

// ScheduledTour records the last successfully booked tour.
type ScheduledTour struct {
	TourID    int64  `json:"tour_id"`
	TourDate  string `json:"tour_date"`
	TourTime  string `json:"tour_time"`
	UnitID    *int64 `json:"unit_id,omitempty"`
	UnitType  string `json:"unit_type,omitempty"`
	IsVirtual bool   `json:"is_virtual"`
}

/* ---------------------------- Typed accessors ---------------------------- */

func (s *Session) CurrentProspectID() string {
	return s.GetString(KeyCurrentProspectID)
}

func (s *Session) SetCurrentProspectID(id string) {
	s.Set(KeyCurrentProspectID, id)
}

func (s *Session) ProspectInfo() (ProspectInfo, bool) {
	v, ok := s.Get(KeyProspectInfo)
	if !ok {
		return ProspectInfo{}, false
	}
	info, ok := v.(ProspectInfo)
	return info, ok
}

func (s *Session) SetProspectInfo(info ProspectInfo) {
	s.Set(KeyProspectInfo, info)
}

func (s *Session) LastUnitSearch() (UnitSearch, bool) {
	v, ok := s.Get(KeyLastUnitSearch)
	if !ok {
		return UnitSearch{}, false
	}
	search, ok := v.(UnitSearch)
	return search, ok
}

func (s *Session) SetLastUnitSearch(search UnitSearch) {
	s.Set(KeyLastUnitSearch, search)
}

func (s *Session) SetLastAmenitiesQuery(q AmenitiesQuery) {
	s.Set(KeyLastAmenitiesQuery, q)
}

func (s *Session) LastScheduledTour() (ScheduledTour, bool) {
	v, ok := s.Get(KeyLastScheduledTour)
	if !ok {
		return ScheduledTour{}, false
	}
	tour, ok := v.(ScheduledTour)
	return tour, ok
}

func (s *Session) SetLastScheduledTour(tour ScheduledTour) {
	s.Set(KeyLastScheduledTour, tour)
}

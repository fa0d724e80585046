package store

import "github.com/uptrace/bun"

// TourStatusScheduled is the only status a booking can be created with.
const TourStatusScheduled = "Scheduled"

// Unit is a rentable apartment unit. Seed data only; nothing in scope
// mutates units after Open.
type Unit struct {
	bun.BaseModel `bun:"table:units"`

	ID            int64   `bun:"id,pk" json:"id"`
	UnitNumber    string  `bun:"unit_number,notnull" json:"unit_number"`
	UnitType      string  `bun:"unit_type,notnull" json:"unit_type"`
	FloorPlan     string  `bun:"floor_plan" json:"floor_plan"`
	SquareFeet    int     `bun:"square_feet" json:"square_feet"`
	Bedrooms      int     `bun:"bedrooms,notnull" json:"bedrooms"`
	Bathrooms     float64 `bun:"bathrooms,notnull" json:"bathrooms"`
	RentAmount    float64 `bun:"rent_amount,notnull" json:"rent_amount"`
	IsAvailable   bool    `bun:"is_available,notnull" json:"is_available"`
	AvailableDate string  `bun:"available_date" json:"available_date"`
	Features      string  `bun:"features" json:"features"`
}

// Prospect is a rental lead. ProspectID is the opaque token handed to the
// dialogue engine; the integer pk never leaves the store.
type Prospect struct {
	bun.BaseModel `bun:"table:prospects"`

	ID                int64    `bun:"id,pk,autoincrement" json:"-"`
	ProspectID        string   `bun:"prospect_id,notnull,unique" json:"prospect_id"`
	Name              string   `bun:"name" json:"name,omitempty"`
	Phone             string   `bun:"phone" json:"phone,omitempty"`
	Email             string   `bun:"email" json:"email,omitempty"`
	MoveInDate        string   `bun:"move_in_date" json:"move_in_date,omitempty"`
	PreferredUnitType string   `bun:"preferred_unit_type" json:"preferred_unit_type,omitempty"`
	HasPets           *bool    `bun:"has_pets" json:"has_pets,omitempty"`
	Income            *float64 `bun:"income" json:"income,omitempty"`
	CreditScore       *int     `bun:"credit_score" json:"credit_score,omitempty"`
	Notes             string   `bun:"notes" json:"notes,omitempty"`
	CreatedAt         string   `bun:"created_at,notnull" json:"created_at"`
	LastContact       string   `bun:"last_contact" json:"last_contact"`
}

// Amenity is a property amenity. Static seed data, read-only in scope.
type Amenity struct {
	bun.BaseModel `bun:"table:amenities"`

	ID          int64   `bun:"id,pk" json:"id"`
	Name        string  `bun:"name,notnull" json:"name"`
	Description string  `bun:"description" json:"description"`
	Category    string  `bun:"category" json:"category"`
	FeeAmount   float64 `bun:"fee_amount" json:"fee_amount"`
	IsIncluded  bool    `bun:"is_included,notnull" json:"is_included"`
}

// TourBooking links a prospect to a tour slot, optionally for a specific unit.
type TourBooking struct {
	bun.BaseModel `bun:"table:tour_bookings"`

	ID         int64  `bun:"id,pk,autoincrement" json:"tour_id"`
	ProspectID string `bun:"prospect_id,notnull" json:"prospect_id"`
	TourDate   string `bun:"tour_date,notnull" json:"tour_date"`
	TourTime   string `bun:"tour_time,notnull" json:"tour_time"`
	UnitID     *int64 `bun:"unit_id" json:"unit_id,omitempty"`
	IsVirtual  bool   `bun:"is_virtual,notnull" json:"is_virtual"`
	Status     string `bun:"status,notnull" json:"status"`
	Notes      string `bun:"notes" json:"notes,omitempty"`
}

// TourWithUnit is a booking row left-joined with its unit summary. The unit
// columns are pointers because the join side may be absent.
type TourWithUnit struct {
	ID         int64   `bun:"id" json:"tour_id"`
	ProspectID string  `bun:"prospect_id" json:"prospect_id"`
	TourDate   string  `bun:"tour_date" json:"tour_date"`
	TourTime   string  `bun:"tour_time" json:"tour_time"`
	UnitID     *int64  `bun:"unit_id" json:"unit_id,omitempty"`
	IsVirtual  bool    `bun:"is_virtual" json:"is_virtual"`
	Status     string  `bun:"status" json:"status"`
	Notes      string  `bun:"notes" json:"notes,omitempty"`
	UnitNumber *string `bun:"unit_number" json:"unit_number,omitempty"`
	UnitType   *string `bun:"unit_type" json:"unit_type,omitempty"`
	FloorPlan  *string `bun:"floor_plan" json:"floor_plan,omitempty"`
}

// PricingStats aggregates rent over every unit of a type, available or not.
type PricingStats struct {
	Min   float64 `bun:"min_rent" json:"min"`
	Max   float64 `bun:"max_rent" json:"max"`
	Mean  float64 `bun:"avg_rent" json:"mean"`
	Count int     `bun:"count" json:"count"`
}

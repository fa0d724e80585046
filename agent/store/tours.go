package store

import (
	"context"

	"github.com/rs/zerolog/log"
)

// BookingFailed is the sentinel returned when a tour booking cannot be
// written. Booking creation is the one write that tolerates storage errors;
// they surface to the tool layer as this value, never as a Go error.
const BookingFailed int64 = -1

// NewTourBooking carries the fields for a booking. Status is not among them:
// every booking is created "Scheduled".
type NewTourBooking struct {
	ProspectID string
	TourDate   string
	TourTime   string
	UnitID     *int64
	IsVirtual  bool
	Notes      string
}

// CreateTourBooking inserts a booking and returns its id, or BookingFailed.
func (s *Store) CreateTourBooking(ctx context.Context, nb NewTourBooking) int64 {
	b := &TourBooking{
		ProspectID: nb.ProspectID,
		TourDate:   nb.TourDate,
		TourTime:   nb.TourTime,
		UnitID:     nb.UnitID,
		IsVirtual:  nb.IsVirtual,
		Status:     TourStatusScheduled,
		Notes:      nb.Notes,
	}
	res, err := s.db.NewInsert().Model(b).Exec(ctx)
	if err != nil {
		log.Error().Err(err).Str("prospect_id", nb.ProspectID).Msg("create tour booking")
		return BookingFailed
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error().Err(err).Str("prospect_id", nb.ProspectID).Msg("read tour booking id")
		return BookingFailed
	}
	return id
}

// TourBookingsForProspect lists a prospect's bookings joined with a summary
// of the toured unit, ordered by date then time.
func (s *Store) TourBookingsForProspect(ctx context.Context, prospectID string) ([]TourWithUnit, error) {
	var tours []TourWithUnit
	err := s.db.NewSelect().
		Model((*TourBooking)(nil)).
		ModelTableExpr("tour_bookings AS t").
		ColumnExpr("t.*").
		ColumnExpr("u.unit_number").
		ColumnExpr("u.unit_type").
		ColumnExpr("u.floor_plan").
		Join("LEFT JOIN units AS u ON u.id = t.unit_id").
		Where("t.prospect_id = ?", prospectID).
		OrderExpr("t.tour_date ASC, t.tour_time ASC").
		Scan(ctx, &tours)
	if err != nil {
		return nil, err
	}
	return tours, nil
}

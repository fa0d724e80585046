package store

import (
	"context"
	"database/sql"
	"errors"
)

// AvailableUnits lists units whose availability flag is set, optionally
// narrowed to a type and to units available on or before the given date.
// Order is storage order; callers that need a ranking must impose their own.
func (s *Store) AvailableUnits(ctx context.Context, unitType, notAvailableAfter string) ([]Unit, error) {
	var units []Unit
	q := s.db.NewSelect().
		Model(&units).
		Where("is_available = ?", true)
	if unitType != "" {
		q = q.Where("unit_type = ?", unitType)
	}
	if notAvailableAfter != "" {
		q = q.Where("available_date <= ?", notAvailableAfter)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return units, nil
}

// UnitByID fetches one unit. A miss is (nil, nil), not an error.
func (s *Store) UnitByID(ctx context.Context, id int64) (*Unit, error) {
	unit := new(Unit)
	err := s.db.NewSelect().
		Model(unit).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// PricingSummary aggregates rent per unit type over ALL units, available or
// not, so quoted ranges reflect the whole inventory. Passing a type narrows
// the result to that type's row.
func (s *Store) PricingSummary(ctx context.Context, unitType string) (map[string]PricingStats, error) {
	type pricingRow struct {
		UnitType string `bun:"unit_type"`
		PricingStats
	}

	var rows []pricingRow
	q := s.db.NewSelect().
		Model((*Unit)(nil)).
		ColumnExpr("unit_type").
		ColumnExpr("MIN(rent_amount) AS min_rent").
		ColumnExpr("MAX(rent_amount) AS max_rent").
		ColumnExpr("AVG(rent_amount) AS avg_rent").
		ColumnExpr("COUNT(*) AS count").
		GroupExpr("unit_type")
	if unitType != "" {
		q = q.Where("unit_type = ?", unitType)
	}
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}

	summary := make(map[string]PricingStats, len(rows))
	for _, row := range rows {
		summary[row.UnitType] = row.PricingStats
	}
	return summary, nil
}

package store

import "context"

// Amenities lists property amenities, optionally filtered by category.
func (s *Store) Amenities(ctx context.Context, category string) ([]Amenity, error) {
	var amenities []Amenity
	q := s.db.NewSelect().Model(&amenities)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return amenities, nil
}

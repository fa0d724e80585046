package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// NewProspect carries the fields a prospect can be created with. Everything
// is optional; unset fields stay empty in the record.
type NewProspect struct {
	Name              string
	Phone             string
	Email             string
	MoveInDate        string
	PreferredUnitType string
	HasPets           *bool
}

// ProspectUpdate is a partial update: one pointer per updatable attribute.
// A nil field is untouched, so absence never clears a stored value.
type ProspectUpdate struct {
	Name              *string
	Phone             *string
	Email             *string
	MoveInDate        *string
	PreferredUnitType *string
	HasPets           *bool
	Income            *float64
	CreditScore       *int
	Notes             *string
}

func (u ProspectUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Phone == nil &&
		u.Email == nil &&
		u.MoveInDate == nil &&
		u.PreferredUnitType == nil &&
		u.HasPets == nil &&
		u.Income == nil &&
		u.CreditScore == nil &&
		u.Notes == nil
}

// CreateProspect inserts a new prospect and returns its generated id.
// Creation and last-contact timestamps are both set to the call time.
func (s *Store) CreateProspect(ctx context.Context, np NewProspect) (string, error) {
	now := s.timestamp()
	p := &Prospect{
		ProspectID:        uuid.NewString(),
		Name:              np.Name,
		Phone:             np.Phone,
		Email:             np.Email,
		MoveInDate:        np.MoveInDate,
		PreferredUnitType: np.PreferredUnitType,
		HasPets:           np.HasPets,
		CreatedAt:         now,
		LastContact:       now,
	}
	if _, err := s.db.NewInsert().Model(p).Exec(ctx); err != nil {
		return "", err
	}
	return p.ProspectID, nil
}

// UpdateProspect applies the supplied fields and refreshes last_contact.
// It reports false without error when the update is empty or the id matches
// no row; both are expected business outcomes, not storage failures.
func (s *Store) UpdateProspect(ctx context.Context, prospectID string, upd ProspectUpdate) (bool, error) {
	if upd.IsEmpty() {
		return false, nil
	}

	q := s.db.NewUpdate().
		Model((*Prospect)(nil)).
		Where("prospect_id = ?", prospectID)

	if upd.Name != nil {
		q = q.Set("name = ?", *upd.Name)
	}
	if upd.Phone != nil {
		q = q.Set("phone = ?", *upd.Phone)
	}
	if upd.Email != nil {
		q = q.Set("email = ?", *upd.Email)
	}
	if upd.MoveInDate != nil {
		q = q.Set("move_in_date = ?", *upd.MoveInDate)
	}
	if upd.PreferredUnitType != nil {
		q = q.Set("preferred_unit_type = ?", *upd.PreferredUnitType)
	}
	if upd.HasPets != nil {
		q = q.Set("has_pets = ?", *upd.HasPets)
	}
	if upd.Income != nil {
		q = q.Set("income = ?", *upd.Income)
	}
	if upd.CreditScore != nil {
		q = q.Set("credit_score = ?", *upd.CreditScore)
	}
	if upd.Notes != nil {
		q = q.Set("notes = ?", *upd.Notes)
	}
	q = q.Set("last_contact = ?", s.timestamp())

	res, err := q.Exec(ctx)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ProspectByID fetches one prospect by its opaque id. A miss is (nil, nil).
func (s *Store) ProspectByID(ctx context.Context, prospectID string) (*Prospect, error) {
	p := new(Prospect)
	err := s.db.NewSelect().
		Model(p).
		Where("prospect_id = ?", prospectID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"SURUWE_BACK-END/internal/models"
)

const orderColumns = `
	id, profile_id, tailor_name, tailor_city, tailor_phone, description,
	fit_notes, status, completed_photo_url, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.ProfileID, &o.TailorName, &o.TailorCity, &o.TailorPhone,
		&o.Description, &o.FitNotes, &o.Status, &o.CompletedPhotoURL,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

// NewOrder is the insert payload for CreateOrder. Status is fixed at "sent";
// drafts are never persisted.
type NewOrder struct {
	ProfileID   uuid.UUID
	TailorName  string
	TailorCity  string
	TailorPhone *string
	Description string
	FitNotes    string
}

// CreateOrder inserts a new order in status sent.
func (s *Store) CreateOrder(ctx context.Context, in NewOrder) (*models.Order, error) {
	const q = `
insert into orders (profile_id, tailor_name, tailor_city, tailor_phone, description, fit_notes, status)
values ($1, $2, $3, nullif($4, ''), $5, $6, 'sent')
returning ` + orderColumns
	phone := ""
	if in.TailorPhone != nil {
		phone = *in.TailorPhone
	}
	return scanOrder(s.pool.QueryRow(ctx, q,
		in.ProfileID, in.TailorName, in.TailorCity, phone, in.Description, in.FitNotes))
}

// GetOrder fetches an order by id scoped to its owning profile.
func (s *Store) GetOrder(ctx context.Context, profileID, orderID uuid.UUID) (*models.Order, error) {
	const q = `select ` + orderColumns + ` from orders where id = $1 and profile_id = $2 limit 1`
	return scanOrder(s.pool.QueryRow(ctx, q, orderID, profileID))
}

// ListOrders returns a profile's orders, newest first.
func (s *Store) ListOrders(ctx context.Context, profileID uuid.UUID) ([]models.Order, error) {
	const q = `select ` + orderColumns + ` from orders where profile_id = $1 order by created_at desc`
	rows, err := s.pool.Query(ctx, q, profileID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, translate(rows.Err())
}

// OrderPatch carries the editable order fields; nil leaves a column alone.
type OrderPatch struct {
	TailorName  *string
	TailorCity  *string
	TailorPhone *string
	Description *string
	FitNotes    *string
}

// UpdateOrder applies a patch to the editable fields and returns the fresh
// row. Status is not touched here.
func (s *Store) UpdateOrder(ctx context.Context, profileID, orderID uuid.UUID, patch OrderPatch) (*models.Order, error) {
	set := []string{}
	args := []any{}
	i := 1

	addStr := func(col string, p *string, nullIfEmpty bool) {
		if p == nil {
			return
		}
		var v any = *p
		if nullIfEmpty && *p == "" {
			v = nil
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, v)
		i++
	}
	addStr("tailor_name", patch.TailorName, false)
	addStr("tailor_city", patch.TailorCity, false)
	addStr("tailor_phone", patch.TailorPhone, true)
	addStr("description", patch.Description, false)
	addStr("fit_notes", patch.FitNotes, false)

	if len(set) == 0 {
		return s.GetOrder(ctx, profileID, orderID)
	}
	set = append(set, "updated_at = now()")

	q := fmt.Sprintf(
		`update orders set %s where id = $%d and profile_id = $%d returning %s`,
		strings.Join(set, ", "), i, i+1, orderColumns,
	)
	args = append(args, orderID, profileID)
	return scanOrder(s.pool.QueryRow(ctx, q, args...))
}

// SetCompletedPhoto attaches the finished-piece photo and escalates the
// status to completed. The transition check keeps status monotonic.
func (s *Store) SetCompletedPhoto(ctx context.Context, profileID, orderID uuid.UUID, url string) (*models.Order, error) {
	current, err := s.GetOrder(ctx, profileID, orderID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(models.StatusCompleted) {
		return nil, ErrStatusBackward
	}

	const q = `
update orders set completed_photo_url = $3, status = 'completed', updated_at = now()
where id = $1 and profile_id = $2
returning ` + orderColumns
	return scanOrder(s.pool.QueryRow(ctx, q, orderID, profileID, url))
}

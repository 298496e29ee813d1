package store

import (
	"context"

	"github.com/google/uuid"

	"SURUWE_BACK-END/internal/models"
)

const photoColumns = `id, profile_id, url, sort_order, created_at`

func scanPhoto(row interface{ Scan(...any) error }) (*models.ProfilePhoto, error) {
	var p models.ProfilePhoto
	err := row.Scan(&p.ID, &p.ProfileID, &p.URL, &p.SortOrder, &p.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// CreatePhoto appends a photo to the grid. The sort order is assigned past
// the current maximum; position 0 stays the primary image.
func (s *Store) CreatePhoto(ctx context.Context, profileID uuid.UUID, url string) (*models.ProfilePhoto, error) {
	const q = `
insert into profile_photos (profile_id, url, sort_order)
values ($1, $2, coalesce((select max(sort_order) + 1 from profile_photos where profile_id = $1), 0))
returning ` + photoColumns
	return scanPhoto(s.pool.QueryRow(ctx, q, profileID, url))
}

// ListPhotos returns a profile's photos by sort order ascending.
func (s *Store) ListPhotos(ctx context.Context, profileID uuid.UUID) ([]models.ProfilePhoto, error) {
	const q = `select ` + photoColumns + ` from profile_photos where profile_id = $1 order by sort_order asc`
	rows, err := s.pool.Query(ctx, q, profileID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	photos := []models.ProfilePhoto{}
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, translate(rows.Err())
}

// DeletePhoto removes one photo, scoped to the owning profile.
func (s *Store) DeletePhoto(ctx context.Context, profileID, photoID uuid.UUID) error {
	const q = `delete from profile_photos where id = $1 and profile_id = $2`
	ct, err := s.pool.Exec(ctx, q, photoID, profileID)
	if err != nil {
		return translate(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

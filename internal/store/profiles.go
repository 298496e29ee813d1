package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"SURUWE_BACK-END/internal/models"
)

const profileColumns = `
	id, slug, name, phone, gender, measurements, measurement_unit,
	measurements_updated_at, style_notes, theme, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (*models.Profile, error) {
	var (
		p           models.Profile
		rawMeasures []byte
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Phone, &p.Gender, &rawMeasures,
		&p.MeasurementUnit, &p.MeasurementsUpdatedAt, &p.StyleNotes,
		&p.Theme, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	p.Measurements = map[string]float64{}
	if len(rawMeasures) > 0 {
		if err := json.Unmarshal(rawMeasures, &p.Measurements); err != nil {
			return nil, fmt.Errorf("decode measurements: %w", err)
		}
	}
	return &p, nil
}

// CreateProfile inserts a fresh profile with empty measurements. Returns
// ErrConflict when the slug is already taken.
func (s *Store) CreateProfile(ctx context.Context, slug, name string) (*models.Profile, error) {
	const q = `
insert into profiles (slug, name, gender, measurements, measurement_unit, style_notes, theme)
values ($1, $2, 'male', '{}'::jsonb, 'inches', '', 'dark')
returning ` + profileColumns
	return scanProfile(s.pool.QueryRow(ctx, q, slug, name))
}

// GetProfile fetches a profile by id.
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	const q = `select ` + profileColumns + ` from profiles where id = $1 limit 1`
	return scanProfile(s.pool.QueryRow(ctx, q, id))
}

// GetProfileBySlug fetches a profile by its public slug.
func (s *Store) GetProfileBySlug(ctx context.Context, slug string) (*models.Profile, error) {
	const q = `select ` + profileColumns + ` from profiles where slug = $1 limit 1`
	return scanProfile(s.pool.QueryRow(ctx, q, slug))
}

// ProfilePatch carries the mutable non-measurement fields. Nil means leave
// the column alone; an empty phone clears it.
type ProfilePatch struct {
	Phone      *string
	Theme      *models.Theme
	StyleNotes *string
}

// UpdateProfile applies a patch and returns the fresh row.
func (s *Store) UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*models.Profile, error) {
	set := []string{}
	args := []any{}
	i := 1

	if patch.Phone != nil {
		var v any = *patch.Phone
		if *patch.Phone == "" {
			v = nil
		}
		set = append(set, fmt.Sprintf("phone = $%d", i))
		args = append(args, v)
		i++
	}
	if patch.Theme != nil {
		set = append(set, fmt.Sprintf("theme = $%d", i))
		args = append(args, *patch.Theme)
		i++
	}
	if patch.StyleNotes != nil {
		set = append(set, fmt.Sprintf("style_notes = $%d", i))
		args = append(args, *patch.StyleNotes)
		i++
	}
	if len(set) == 0 {
		return s.GetProfile(ctx, id)
	}
	set = append(set, "updated_at = now()")

	q := fmt.Sprintf(
		`update profiles set %s where id = $%d returning %s`,
		strings.Join(set, ", "), i, profileColumns,
	)
	args = append(args, id)
	return scanProfile(s.pool.QueryRow(ctx, q, args...))
}

// ReplaceMeasurements overwrites the measurement map wholesale together with
// the gender and unit it was taken under, and stamps the update time.
func (s *Store) ReplaceMeasurements(ctx context.Context, id uuid.UUID, values map[string]float64, gender models.Gender, unit models.MeasurementUnit, now time.Time) (*models.Profile, error) {
	if values == nil {
		values = map[string]float64{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode measurements: %w", err)
	}

	const q = `
update profiles
set measurements = $2, gender = $3, measurement_unit = $4,
	measurements_updated_at = $5, updated_at = now()
where id = $1
returning ` + profileColumns
	return scanProfile(s.pool.QueryRow(ctx, q, id, raw, gender, unit, now.UTC()))
}

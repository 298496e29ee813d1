package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfilePhoto is a personal photo on a profile. Ordering is append-only;
// sort order 0 is the primary/hero image.
type ProfilePhoto struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	URL       string    `json:"url" db:"url"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

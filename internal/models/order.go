package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of a tailoring request. Transitions
// only move forward: draft -> sent -> in_progress -> completed.
type OrderStatus string

const (
	StatusDraft      OrderStatus = "draft"
	StatusSent       OrderStatus = "sent"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// rank orders statuses for monotonic escalation checks.
func (s OrderStatus) rank() int {
	switch s {
	case StatusDraft:
		return 0
	case StatusSent:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next keeps the status
// monotonic. Skipping in_progress is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.Valid() && next.rank() >= s.rank()
}

// Order is a single tailoring request owned by one profile. Orders are only
// ever persisted in status "sent" or later; the wizard never writes a draft.
type Order struct {
	ID                uuid.UUID   `json:"id" db:"id"`
	ProfileID         uuid.UUID   `json:"profile_id" db:"profile_id"`
	TailorName        string      `json:"tailor_name" db:"tailor_name"`
	TailorCity        string      `json:"tailor_city" db:"tailor_city"`
	TailorPhone       *string     `json:"tailor_phone" db:"tailor_phone"`
	Description       string      `json:"description" db:"description"`
	FitNotes          string      `json:"fit_notes" db:"fit_notes"`
	Status            OrderStatus `json:"status" db:"status"`
	CompletedPhotoURL *string     `json:"completed_photo_url" db:"completed_photo_url"`
	CreatedAt         time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" db:"updated_at"`
}

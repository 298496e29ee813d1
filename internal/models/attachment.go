package models

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentType classifies a reference image attached to an order.
type AttachmentType string

const (
	AttachmentInspiration AttachmentType = "inspiration"
	AttachmentScreenshot  AttachmentType = "screenshot"
	AttachmentCompleted   AttachmentType = "completed"
)

func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentInspiration, AttachmentScreenshot, AttachmentCompleted:
		return true
	}
	return false
}

// OrderAttachment is a reference image tied to an order. VisibleToTailor is
// set by the owner before submission and immutable afterwards.
type OrderAttachment struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	OrderID         uuid.UUID      `json:"order_id" db:"order_id"`
	URL             string         `json:"url" db:"url"`
	Type            AttachmentType `json:"type" db:"type"`
	VisibleToTailor bool           `json:"visible_to_tailor" db:"visible_to_tailor"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

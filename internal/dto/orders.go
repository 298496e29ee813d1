package dto

import "SURUWE_BACK-END/internal/models"

// OrderListResponse lists the owner's orders, newest first.
type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
}

// OrderDetailResponse is one order with its attachments.
type OrderDetailResponse struct {
	Order       *models.Order            `json:"order"`
	Attachments []models.OrderAttachment `json:"attachments"`
}

// OrderUpdateRequest replaces the order's editable fields. This is a full
// replace of each supplied field, not a diff.
type OrderUpdateRequest struct {
	TailorName  *string `json:"tailor_name"`
	TailorCity  *string `json:"tailor_city"`
	TailorPhone *string `json:"tailor_phone"`
	Description *string `json:"description"`
	FitNotes    *string `json:"fit_notes"`
}

// CompletedPhotoResponse returns the order after a finished-piece photo was
// attached (status escalated to completed).
type CompletedPhotoResponse struct {
	Order *models.Order `json:"order"`
}

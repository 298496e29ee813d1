package dto

import (
	"SURUWE_BACK-END/internal/measurements"
	"SURUWE_BACK-END/internal/models"
)

// WizardStateResponse describes where an order wizard session currently is.
type WizardStateResponse struct {
	SessionID string `json:"session_id"`
	Stage     string `json:"stage"`
	StageNum  int    `json:"stage_num"`
	Stages    int    `json:"stages"`

	TailorName  string                  `json:"tailor_name"`
	TailorCity  string                  `json:"tailor_city"`
	Description string                  `json:"description"`
	FitNotes    string                  `json:"fit_notes"`
	Attachments []WizardAttachmentState `json:"attachments"`

	// Gate is set while the wizard sits on the measurements stage.
	Gate *WizardGateState `json:"gate,omitempty"`

	// Preview is the message that would be sent right now.
	Preview string `json:"preview,omitempty"`
}

// WizardAttachmentState is one staged (not yet uploaded) reference image.
type WizardAttachmentState struct {
	Index           int    `json:"index"`
	Name            string `json:"name"`
	Size            int    `json:"size"`
	VisibleToTailor bool   `json:"visible_to_tailor"`
}

// WizardGateState tells the client which measurements branch applies.
type WizardGateState struct {
	HasMeasurements bool                   `json:"has_measurements"`
	Stale           bool                   `json:"stale"`
	LastUpdated     string                 `json:"last_updated,omitempty"`
	Sections        []measurements.Section `json:"sections"`
	Values          map[string]float64     `json:"values"`
	Gender          string                 `json:"gender"`
	Unit            string                 `json:"measurement_unit"`
}

// WizardTailorRequest carries stage 1 of the wizard.
type WizardTailorRequest struct {
	TailorName  string `json:"tailor_name"`
	TailorCity  string `json:"tailor_city"`
	Description string `json:"description"`
}

// WizardNotesRequest carries stage 2's fit notes.
type WizardNotesRequest struct {
	FitNotes string `json:"fit_notes"`
}

// WizardMeasurementsRequest drives the measurements stage. Action is one of
// continue, update, skip, save. For save, the remaining fields replace the
// wizard's working copy (and the profile, when saving commits).
type WizardMeasurementsRequest struct {
	Action       string             `json:"action"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
	Gender       string             `json:"gender,omitempty"`
	Unit         string             `json:"measurement_unit,omitempty"`
}

// WizardSubmitResponse is what the wizard hands back to the dashboard.
type WizardSubmitResponse struct {
	Order          *models.Order `json:"order"`
	Message        string        `json:"message"`
	Link           string        `json:"link"`
	DroppedUploads int           `json:"dropped_uploads"`
	UploadErrors   []string      `json:"upload_errors,omitempty"`
}

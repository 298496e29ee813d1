// Package wizard drives the four-stage new-order flow: tailor details, fit
// notes and reference images, the measurements gate, review and send. The
// measurement-editing detour is its own stage rather than a fractional step
// number.
package wizard

import (
	"errors"
	"strings"
	"time"

	"SURUWE_BACK-END/internal/measurements"
	"SURUWE_BACK-END/internal/models"
)

// Stage is the wizard's position in the flow.
type Stage int

const (
	StageTailorDetails Stage = iota + 1
	StageFitNotes
	StageMeasurements
	StageMeasurementsEdit
	StageReview
)

// String returns the wire name of the stage.
func (s Stage) String() string {
	switch s {
	case StageTailorDetails:
		return "tailor_details"
	case StageFitNotes:
		return "fit_notes"
	case StageMeasurements:
		return "measurements"
	case StageMeasurementsEdit:
		return "measurements_edit"
	case StageReview:
		return "review"
	}
	return "unknown"
}

// Number maps the stage onto the user-visible 1..4 progress counter. The
// editing detour still reads as step 3.
func (s Stage) Number() int {
	switch s {
	case StageTailorDetails:
		return 1
	case StageFitNotes:
		return 2
	case StageMeasurements, StageMeasurementsEdit:
		return 3
	case StageReview:
		return 4
	}
	return 0
}

// TotalSteps is the user-visible step count.
const TotalSteps = 4

// StaleAfter is how old measurements may get before the wizard warns.
const StaleAfter = 30 * 24 * time.Hour

// Stale reports whether measurements need a refresh prompt: never stamped,
// or stamped more than 30 days before now.
func Stale(updatedAt *time.Time, now time.Time) bool {
	return updatedAt == nil || now.Sub(*updatedAt) > StaleAfter
}

var (
	ErrWrongStage       = errors.New("action not valid in current stage")
	ErrTailorRequired   = errors.New("tailor name and description are required")
	ErrNoSuchAttachment = errors.New("no staged attachment at that index")
)

// StagedAttachment is a reference image held in memory until submit. Nothing
// is uploaded or persisted before the terminal send.
type StagedAttachment struct {
	Name    string
	Data    []byte
	Visible bool
}

// Gate describes the measurements branch the wizard takes on entering
// stage 3.
type Gate struct {
	HasMeasurements bool
	Stale           bool
	// LastUpdated is nil when measurements were never stamped.
	LastUpdated *time.Time
}

// Wizard is one in-flight order flow for one profile. It is not safe for
// concurrent use; each session is assumed to be driven by a single client
// issuing one request at a time.
type Wizard struct {
	profile *models.Profile
	editor  *measurements.Editor
	now     func() time.Time

	stage       Stage
	tailorName  string
	tailorCity  string
	description string
	fitNotes    string
	attachments []StagedAttachment

	measurementsSaved bool
}

// New starts a wizard at the tailor-details stage. The editor is seeded from
// the profile's persisted measurements; edits stay wizard-local until a save
// commits them.
func New(profile *models.Profile, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	return &Wizard{
		profile: profile,
		editor:  measurements.NewEditor(profile.Gender, profile.MeasurementUnit, profile.Measurements),
		now:     now,
		stage:   StageTailorDetails,
	}
}

func (w *Wizard) Stage() Stage { return w.stage }

func (w *Wizard) TailorName() string  { return w.tailorName }
func (w *Wizard) TailorCity() string  { return w.tailorCity }
func (w *Wizard) Description() string { return w.description }
func (w *Wizard) FitNotes() string    { return w.fitNotes }

// Editor exposes the wizard-local measurement working copy. It is live: edits
// through it feed the review message whether or not they get saved.
func (w *Wizard) Editor() *measurements.Editor { return w.editor }

// Profile returns the profile the wizard is running for, reflecting any
// measurement save committed through the flow.
func (w *Wizard) Profile() *models.Profile { return w.profile }

// MeasurementsSaved reports whether the flow committed a measurement save.
// A committed save survives wizard cancellation.
func (w *Wizard) MeasurementsSaved() bool { return w.measurementsSaved }

// SetTailorDetails records stage 1 and advances. The transition is blocked
// until tailor name and description are both non-empty after trimming.
func (w *Wizard) SetTailorDetails(name, city, description string) error {
	if w.stage != StageTailorDetails {
		return ErrWrongStage
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return ErrTailorRequired
	}
	w.tailorName = name
	w.tailorCity = strings.TrimSpace(city)
	w.description = description
	w.stage = StageFitNotes
	return nil
}

// SetFitNotes records stage 2 and advances unconditionally; notes and
// attachments are both optional.
func (w *Wizard) SetFitNotes(notes string) error {
	if w.stage != StageFitNotes {
		return ErrWrongStage
	}
	w.fitNotes = strings.TrimSpace(notes)
	w.stage = StageMeasurements
	return nil
}

// AddAttachment stages a reference image during stage 2. Visibility defaults
// to tailor-visible, matching the flow's default.
func (w *Wizard) AddAttachment(name string, data []byte, visible bool) (int, error) {
	if w.stage != StageFitNotes {
		return 0, ErrWrongStage
	}
	w.attachments = append(w.attachments, StagedAttachment{Name: name, Data: data, Visible: visible})
	return len(w.attachments) - 1, nil
}

// RemoveAttachment drops a staged image before submit.
func (w *Wizard) RemoveAttachment(index int) error {
	if w.stage != StageFitNotes {
		return ErrWrongStage
	}
	if index < 0 || index >= len(w.attachments) {
		return ErrNoSuchAttachment
	}
	w.attachments = append(w.attachments[:index], w.attachments[index+1:]...)
	return nil
}

// ToggleAttachmentVisibility flips whether the tailor-facing view may see a
// staged image. Immutable once the order is submitted.
func (w *Wizard) ToggleAttachmentVisibility(index int) error {
	if w.stage != StageFitNotes {
		return ErrWrongStage
	}
	if index < 0 || index >= len(w.attachments) {
		return ErrNoSuchAttachment
	}
	w.attachments[index].Visible = !w.attachments[index].Visible
	return nil
}

// Attachments returns the staged images in order.
func (w *Wizard) Attachments() []StagedAttachment { return w.attachments }

// Gate evaluates the measurements branch against the profile's persisted
// state. With no measurements at all the staleness question never arises;
// the full editor is shown inline instead.
func (w *Wizard) Gate() Gate {
	has := w.profile.HasMeasurements()
	return Gate{
		HasMeasurements: has,
		Stale:           has && Stale(w.profile.MeasurementsUpdatedAt, w.now()),
		LastUpdated:     w.profile.MeasurementsUpdatedAt,
	}
}

// Continue accepts the existing measurements and moves to review. Only
// offered when the gate shows fresh measurements.
func (w *Wizard) Continue() error {
	if w.stage != StageMeasurements {
		return ErrWrongStage
	}
	g := w.Gate()
	if !g.HasMeasurements || g.Stale {
		return ErrWrongStage
	}
	w.stage = StageReview
	return nil
}

// Update opens the editing detour. Offered whenever measurements exist
// (fresh or stale).
func (w *Wizard) Update() error {
	if w.stage != StageMeasurements {
		return ErrWrongStage
	}
	if !w.profile.HasMeasurements() {
		return ErrWrongStage
	}
	w.stage = StageMeasurementsEdit
	return nil
}

// Skip moves to review without touching measurements: "skip for now" on the
// empty path, "skip, they are still correct" on the stale path.
func (w *Wizard) Skip() error {
	if w.stage != StageMeasurements {
		return ErrWrongStage
	}
	g := w.Gate()
	if g.HasMeasurements && !g.Stale {
		// the fresh path offers Continue, not Skip
		return ErrWrongStage
	}
	w.stage = StageReview
	return nil
}

// Back steps to the immediately preceding numbered stage. The editing detour
// returns to the gate. From stage 1 the wizard is cancelled: the caller
// discards it and nothing was persisted, apart from a measurement save
// already committed.
func (w *Wizard) Back() (cancelled bool) {
	switch w.stage {
	case StageTailorDetails:
		return true
	case StageFitNotes:
		w.stage = StageTailorDetails
	case StageMeasurements:
		w.stage = StageFitNotes
	case StageMeasurementsEdit:
		w.stage = StageMeasurements
	case StageReview:
		w.stage = StageMeasurements
	}
	return false
}

package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SURUWE_BACK-END/internal/models"
	"SURUWE_BACK-END/internal/store"
	"SURUWE_BACK-END/internal/upload"
	"SURUWE_BACK-END/internal/whatsapp"
)

// ProfileGateway is the slice of the store the measurement save needs.
type ProfileGateway interface {
	ReplaceMeasurements(ctx context.Context, id uuid.UUID, values map[string]float64, gender models.Gender, unit models.MeasurementUnit, now time.Time) (*models.Profile, error)
}

// OrderGateway is the slice of the store the submit needs.
type OrderGateway interface {
	CreateOrder(ctx context.Context, in store.NewOrder) (*models.Order, error)
	CreateAttachment(ctx context.Context, orderID uuid.UUID, url string, typ models.AttachmentType, visible bool) (*models.OrderAttachment, error)
}

// SubmitConfig tunes the terminal send.
type SubmitConfig struct {
	// BaseURL is embedded in the composed message's profile link.
	BaseURL string
	// SurfaceUploadFailures reports per-file upload errors in the result
	// instead of only logging them. Either way a failed file is dropped and
	// the order still goes out.
	SurfaceUploadFailures bool
	Logger                *zap.Logger
}

// Result is what the wizard hands back to the dashboard after submit.
type Result struct {
	Order   *models.Order
	Message string
	Link    string
	// DroppedUploads counts staged files that never became attachment rows.
	DroppedUploads int
	// UploadErrors is populated only when SurfaceUploadFailures is set.
	UploadErrors []string
}

// SaveMeasurements commits the editor's working copy to the profile: full
// replace of the map plus gender, unit and the update stamp, then advances
// to review unconditionally. Valid from the editing detour, or inline at the
// gate when the profile had no measurements to begin with.
func (w *Wizard) SaveMeasurements(ctx context.Context, gw ProfileGateway) error {
	switch w.stage {
	case StageMeasurementsEdit:
	case StageMeasurements:
		if w.profile.HasMeasurements() {
			return ErrWrongStage
		}
	default:
		return ErrWrongStage
	}

	updated, err := gw.ReplaceMeasurements(ctx, w.profile.ID, w.editor.Values(), w.editor.Gender(), w.editor.Unit(), w.now())
	if err != nil {
		return err
	}
	w.profile = updated
	w.measurementsSaved = true
	w.stage = StageReview
	return nil
}

// Message composes the order text as it would be sent right now. It always
// uses the wizard-local measurements, saved or not: what you see is what you
// send.
func (w *Wizard) Message(baseURL string) string {
	local := *w.profile
	local.Measurements = w.editor.Values()
	order := models.Order{
		ProfileID:   w.profile.ID,
		TailorName:  w.tailorName,
		TailorCity:  w.tailorCity,
		Description: w.description,
		FitNotes:    w.fitNotes,
		Status:      models.StatusDraft,
	}
	return whatsapp.OrderMessage(baseURL, &local, &order)
}

// Submit is the terminal action: create the order (status sent), upload the
// staged images one by one, record an attachment row per uploaded file, and
// compose the message plus share link. Order creation failure aborts the
// whole submit and the wizard stays on review; upload failures are per-file
// and never block the send.
func (w *Wizard) Submit(ctx context.Context, orders OrderGateway, uploader upload.Uploader, cfg SubmitConfig) (*Result, error) {
	if w.stage != StageReview {
		return nil, ErrWrongStage
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	order, err := orders.CreateOrder(ctx, store.NewOrder{
		ProfileID:   w.profile.ID,
		TailorName:  w.tailorName,
		TailorCity:  w.tailorCity,
		Description: w.description,
		FitNotes:    w.fitNotes,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	res := &Result{Order: order}
	folder := fmt.Sprintf("orders/%s", order.ID)
	for i, att := range w.attachments {
		url, err := uploader.Upload(ctx, att.Data, folder)
		if err != nil {
			logger.Warn("attachment dropped: upload failed",
				zap.String("order_id", order.ID.String()),
				zap.Int("index", i),
				zap.Error(err))
			res.DroppedUploads++
			if cfg.SurfaceUploadFailures {
				res.UploadErrors = append(res.UploadErrors, fmt.Sprintf("%s: %v", att.Name, err))
			}
			continue
		}
		if _, err := orders.CreateAttachment(ctx, order.ID, url, models.AttachmentInspiration, att.Visible); err != nil {
			logger.Warn("attachment dropped: record insert failed",
				zap.String("order_id", order.ID.String()),
				zap.Int("index", i),
				zap.Error(err))
			res.DroppedUploads++
			if cfg.SurfaceUploadFailures {
				res.UploadErrors = append(res.UploadErrors, fmt.Sprintf("%s: %v", att.Name, err))
			}
		}
	}

	local := *w.profile
	local.Measurements = w.editor.Values()
	res.Message = whatsapp.OrderMessage(cfg.BaseURL, &local, order)
	res.Link = whatsapp.ShareLink(res.Message, "")
	return res, nil
}

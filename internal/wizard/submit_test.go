package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SURUWE_BACK-END/internal/models"
	"SURUWE_BACK-END/internal/store"
)

type fakeOrderGateway struct {
	createOrderErr error
	order          *models.Order
	attachments    []*models.OrderAttachment
	attachErrAt    int // 1-based call index that fails, 0 for never
	attachCalls    int
}

func (f *fakeOrderGateway) CreateOrder(_ context.Context, in store.NewOrder) (*models.Order, error) {
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	f.order = &models.Order{
		ID:          uuid.New(),
		ProfileID:   in.ProfileID,
		TailorName:  in.TailorName,
		TailorCity:  in.TailorCity,
		Description: in.Description,
		FitNotes:    in.FitNotes,
		Status:      models.StatusSent,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
	return f.order, nil
}

func (f *fakeOrderGateway) CreateAttachment(_ context.Context, orderID uuid.UUID, url string, typ models.AttachmentType, visible bool) (*models.OrderAttachment, error) {
	f.attachCalls++
	if f.attachErrAt != 0 && f.attachCalls == f.attachErrAt {
		return nil, errors.New("insert failed")
	}
	att := &models.OrderAttachment{
		ID:              uuid.New(),
		OrderID:         orderID,
		URL:             url,
		Type:            typ,
		VisibleToTailor: visible,
	}
	f.attachments = append(f.attachments, att)
	return att, nil
}

type fakeUploader struct {
	failNames map[string]bool
	uploaded  []string
	calls     int
}

func (f *fakeUploader) Upload(_ context.Context, data []byte, folder string) (string, error) {
	f.calls++
	name := string(data)
	if f.failNames[name] {
		return "", errors.New("storage unreachable")
	}
	url := fmt.Sprintf("https://cdn.example.com/%s/%s.jpg", folder, name)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

type fakeProfileGateway struct {
	saved *models.Profile
}

func (f *fakeProfileGateway) ReplaceMeasurements(_ context.Context, id uuid.UUID, values map[string]float64, gender models.Gender, unit models.MeasurementUnit, now time.Time) (*models.Profile, error) {
	f.saved = &models.Profile{
		ID:                    id,
		Slug:                  "amina-k3f9",
		Name:                  "Amina",
		Gender:                gender,
		MeasurementUnit:       unit,
		Measurements:          values,
		MeasurementsUpdatedAt: &now,
	}
	return f.saved, nil
}

func reviewWizard(t *testing.T, p *models.Profile) *Wizard {
	t.Helper()
	w := New(p, fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", "a dress"))
	require.NoError(t, w.SetFitNotes("roomy sleeves"))
	return w
}

func TestSubmit_CreatesOrderAndAttachments(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", "a dress"))
	_, err := w.AddAttachment("front", []byte("front"), true)
	require.NoError(t, err)
	_, err = w.AddAttachment("back", []byte("back"), false)
	require.NoError(t, err)
	require.NoError(t, w.SetFitNotes("roomy sleeves"))
	require.NoError(t, w.Continue())

	gw := &fakeOrderGateway{}
	up := &fakeUploader{}
	res, err := w.Submit(context.Background(), gw, up, SubmitConfig{BaseURL: "https://suruwe.app/p"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSent, res.Order.Status)
	assert.Zero(t, res.DroppedUploads)
	require.Len(t, gw.attachments, 2)
	assert.True(t, gw.attachments[0].VisibleToTailor)
	assert.False(t, gw.attachments[1].VisibleToTailor)
	assert.Contains(t, up.uploaded[0], "orders/"+res.Order.ID.String())

	assert.Contains(t, res.Message, "Mr. Adebayo, looking to get something made. a dress.")
	assert.Contains(t, res.Message, "A few notes on fit: roomy sleeves.")
	assert.Contains(t, res.Message, "https://suruwe.app/p/amina-k3f9")
	assert.Contains(t, res.Link, "https://wa.me/?text=")
}

func TestSubmit_FailedUploadDropsFileNotOrder(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", "a dress"))
	for _, name := range []string{"one", "two", "three"} {
		_, err := w.AddAttachment(name, []byte(name), true)
		require.NoError(t, err)
	}
	require.NoError(t, w.SetFitNotes(""))
	require.NoError(t, w.Continue())

	gw := &fakeOrderGateway{}
	up := &fakeUploader{failNames: map[string]bool{"two": true}}
	res, err := w.Submit(context.Background(), gw, up, SubmitConfig{BaseURL: "https://suruwe.app/p", SurfaceUploadFailures: true})
	require.NoError(t, err)

	assert.Equal(t, 3, up.calls)
	assert.Len(t, gw.attachments, 2)
	assert.Equal(t, 1, res.DroppedUploads)
	require.Len(t, res.UploadErrors, 1)
	assert.Contains(t, res.UploadErrors[0], "two")
	assert.Equal(t, models.StatusSent, res.Order.Status)
}

func TestSubmit_FailedAttachmentInsertCountsAsDropped(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "", "a dress"))
	_, err := w.AddAttachment("front", []byte("front"), true)
	require.NoError(t, err)
	require.NoError(t, w.SetFitNotes(""))
	require.NoError(t, w.Skip())

	gw := &fakeOrderGateway{attachErrAt: 1}
	res, err := w.Submit(context.Background(), gw, &fakeUploader{}, SubmitConfig{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.DroppedUploads)
	assert.Empty(t, res.UploadErrors, "errors surfaced only when configured")
}

func TestSubmit_OrderCreationFailureAborts(t *testing.T) {
	w := reviewWizard(t, profileWith(nil, nil))
	require.NoError(t, w.Skip())

	gw := &fakeOrderGateway{createOrderErr: errors.New("db down")}
	up := &fakeUploader{}
	_, err := w.Submit(context.Background(), gw, up, SubmitConfig{})
	require.Error(t, err)

	assert.Zero(t, up.calls, "nothing uploaded when the order insert fails")
	assert.Equal(t, StageReview, w.Stage(), "wizard stays on review for retry")
}

func TestSubmit_RequiresReviewStage(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)
	_, err := w.Submit(context.Background(), &fakeOrderGateway{}, &fakeUploader{}, SubmitConfig{})
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestSaveMeasurements_FromEditDetour(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	advanceToGate(t, w)
	require.NoError(t, w.Update())

	w.Editor().SetField("bust", "37.5")
	w.Editor().SetField("waist", "29")

	gw := &fakeProfileGateway{}
	require.NoError(t, w.SaveMeasurements(context.Background(), gw))

	assert.Equal(t, StageReview, w.Stage())
	assert.True(t, w.MeasurementsSaved())
	assert.Equal(t, map[string]float64{"bust": 37.5, "waist": 29}, gw.saved.Measurements)
	assert.Equal(t, fixedNow, *gw.saved.MeasurementsUpdatedAt)
	assert.Same(t, gw.saved, w.Profile(), "wizard adopts the stored row")
}

func TestSaveMeasurements_InlineOnEmptyGateOnly(t *testing.T) {
	empty := New(profileWith(nil, nil), fixedClock)
	advanceToGate(t, empty)
	empty.Editor().SetField("bust", "36")
	require.NoError(t, empty.SaveMeasurements(context.Background(), &fakeProfileGateway{}))
	assert.Equal(t, StageReview, empty.Stage())

	// With measurements present the gate offers the detour, not an inline save.
	fresh := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	advanceToGate(t, fresh)
	assert.ErrorIs(t, fresh.SaveMeasurements(context.Background(), &fakeProfileGateway{}), ErrWrongStage)
}

func TestMessage_UsesWizardLocalMeasurements(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "", "a dress"))
	require.NoError(t, w.SetFitNotes(""))
	require.NoError(t, w.Update())
	w.Editor().SetField("bust", "38")

	msg := w.Message("https://suruwe.app/p")

	// The link carries the slug; local edits do not alter the stored profile.
	assert.Contains(t, msg, "https://suruwe.app/p/amina-k3f9")
	assert.Equal(t, 36.0, w.Profile().Measurements["bust"])
}

func TestSkipForNow_EmptyProfileEndToEnd(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", "a kaftan"))
	require.NoError(t, w.SetFitNotes(""))
	require.NoError(t, w.Skip())

	gw := &fakeOrderGateway{}
	res, err := w.Submit(context.Background(), gw, &fakeUploader{}, SubmitConfig{BaseURL: "https://suruwe.app/p"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusSent, res.Order.Status)
	assert.Empty(t, w.Profile().Measurements, "skip never writes measurements")
	assert.Contains(t, res.Message, "a kaftan")
}

package wizard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SURUWE_BACK-END/internal/models"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func profileWith(measurements map[string]float64, updatedAt *time.Time) *models.Profile {
	return &models.Profile{
		ID:                    uuid.New(),
		Slug:                  "amina-k3f9",
		Name:                  "Amina",
		Gender:                models.GenderFemale,
		MeasurementUnit:       models.UnitInches,
		Measurements:          measurements,
		MeasurementsUpdatedAt: updatedAt,
	}
}

func daysAgo(n int) *time.Time {
	t := fixedNow.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func TestSetTailorDetails_BlocksBlankFields(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)

	assert.ErrorIs(t, w.SetTailorDetails("   ", "Lagos", "a dress"), ErrTailorRequired)
	assert.ErrorIs(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", " \t "), ErrTailorRequired)
	assert.Equal(t, StageTailorDetails, w.Stage())

	require.NoError(t, w.SetTailorDetails(" Mr. Adebayo ", " Lagos ", " a dress "))
	assert.Equal(t, StageFitNotes, w.Stage())
	assert.Equal(t, "Mr. Adebayo", w.TailorName())
	assert.Equal(t, "Lagos", w.TailorCity())
	assert.Equal(t, "a dress", w.Description())
}

func TestSetTailorDetails_CityOptional(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)

	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "", "a dress"))
	assert.Empty(t, w.TailorCity())
}

func TestSetFitNotes_AdvancesUnconditionally(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "", "a dress"))

	require.NoError(t, w.SetFitNotes(""))
	assert.Equal(t, StageMeasurements, w.Stage())
}

func TestStageActions_RejectedOutOfOrder(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)

	assert.ErrorIs(t, w.SetFitNotes("notes"), ErrWrongStage)
	assert.ErrorIs(t, w.Continue(), ErrWrongStage)
	assert.ErrorIs(t, w.Skip(), ErrWrongStage)
	_, err := w.AddAttachment("a.jpg", []byte{1}, true)
	assert.ErrorIs(t, err, ErrWrongStage)
}

func TestAttachments_StagedDuringFitNotes(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "", "a dress"))

	i, err := w.AddAttachment("front.jpg", []byte{1}, true)
	require.NoError(t, err)
	_, err = w.AddAttachment("back.jpg", []byte{2}, true)
	require.NoError(t, err)

	require.NoError(t, w.ToggleAttachmentVisibility(i))
	assert.False(t, w.Attachments()[0].Visible)
	require.NoError(t, w.ToggleAttachmentVisibility(i))
	assert.True(t, w.Attachments()[0].Visible)

	require.NoError(t, w.RemoveAttachment(0))
	require.Len(t, w.Attachments(), 1)
	assert.Equal(t, "back.jpg", w.Attachments()[0].Name)

	assert.ErrorIs(t, w.RemoveAttachment(5), ErrNoSuchAttachment)
	assert.ErrorIs(t, w.ToggleAttachmentVisibility(-1), ErrNoSuchAttachment)
}

func TestStale(t *testing.T) {
	assert.True(t, Stale(nil, fixedNow), "never stamped counts as stale")
	assert.False(t, Stale(daysAgo(29), fixedNow))
	assert.False(t, Stale(daysAgo(30), fixedNow))
	assert.True(t, Stale(daysAgo(31), fixedNow))
}

func TestGate_EmptyProfile(t *testing.T) {
	w := New(profileWith(nil, nil), fixedClock)

	g := w.Gate()
	assert.False(t, g.HasMeasurements)
	assert.False(t, g.Stale, "staleness never arises without measurements")
	assert.Nil(t, g.LastUpdated)
}

func TestGate_FreshAndStale(t *testing.T) {
	fresh := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	g := fresh.Gate()
	assert.True(t, g.HasMeasurements)
	assert.False(t, g.Stale)

	stale := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	g = stale.Gate()
	assert.True(t, g.HasMeasurements)
	assert.True(t, g.Stale)
}

func advanceToGate(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SetTailorDetails("Mr. Adebayo", "Lagos", "a dress"))
	require.NoError(t, w.SetFitNotes(""))
}

func TestContinue_FreshOnly(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	advanceToGate(t, w)

	require.NoError(t, w.Continue())
	assert.Equal(t, StageReview, w.Stage())
}

func TestContinue_BlockedWhenStaleOrEmpty(t *testing.T) {
	stale := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	advanceToGate(t, stale)
	assert.ErrorIs(t, stale.Continue(), ErrWrongStage)

	empty := New(profileWith(nil, nil), fixedClock)
	advanceToGate(t, empty)
	assert.ErrorIs(t, empty.Continue(), ErrWrongStage)
}

func TestSkip_StaleOrEmptyOnly(t *testing.T) {
	stale := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	advanceToGate(t, stale)
	require.NoError(t, stale.Skip())
	assert.Equal(t, StageReview, stale.Stage())

	empty := New(profileWith(nil, nil), fixedClock)
	advanceToGate(t, empty)
	require.NoError(t, empty.Skip())
	assert.Equal(t, StageReview, empty.Stage())

	fresh := New(profileWith(map[string]float64{"bust": 36}, daysAgo(5)), fixedClock)
	advanceToGate(t, fresh)
	assert.ErrorIs(t, fresh.Skip(), ErrWrongStage)
}

func TestUpdate_RequiresExistingMeasurements(t *testing.T) {
	stale := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	advanceToGate(t, stale)
	require.NoError(t, stale.Update())
	assert.Equal(t, StageMeasurementsEdit, stale.Stage())
	assert.Equal(t, 3, stale.Stage().Number(), "detour still reads as step 3")

	empty := New(profileWith(nil, nil), fixedClock)
	advanceToGate(t, empty)
	assert.ErrorIs(t, empty.Update(), ErrWrongStage)
}

func TestBack_WalksStagesAndCancels(t *testing.T) {
	w := New(profileWith(map[string]float64{"bust": 36}, daysAgo(45)), fixedClock)
	advanceToGate(t, w)
	require.NoError(t, w.Update())

	assert.False(t, w.Back())
	assert.Equal(t, StageMeasurements, w.Stage())

	require.NoError(t, w.Skip())
	assert.False(t, w.Back())
	assert.Equal(t, StageMeasurements, w.Stage())

	assert.False(t, w.Back())
	assert.Equal(t, StageFitNotes, w.Stage())
	assert.False(t, w.Back())
	assert.Equal(t, StageTailorDetails, w.Stage())

	assert.True(t, w.Back(), "back from stage 1 cancels")
}

func TestStage_WireNamesAndNumbers(t *testing.T) {
	assert.Equal(t, "tailor_details", StageTailorDetails.String())
	assert.Equal(t, "review", StageReview.String())
	assert.Equal(t, 1, StageTailorDetails.Number())
	assert.Equal(t, 4, StageReview.Number())
	assert.Equal(t, 4, TotalSteps)
}

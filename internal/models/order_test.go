package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusSent.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusSent.CanTransitionTo(StatusCompleted), "skipping in_progress is allowed")
	assert.True(t, StatusInProgress.CanTransitionTo(StatusInProgress), "same status is a no-op, not a violation")

	assert.False(t, StatusCompleted.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusInProgress.CanTransitionTo(StatusSent))
	assert.False(t, StatusSent.CanTransitionTo(StatusDraft))
	assert.False(t, StatusSent.CanTransitionTo("cancelled"))
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusDraft, StatusSent, StatusInProgress, StatusCompleted} {
		assert.True(t, s.Valid())
	}
	assert.False(t, OrderStatus("cancelled").Valid())
}

func TestProfile_HasMeasurements(t *testing.T) {
	p := &Profile{}
	assert.False(t, p.HasMeasurements())

	p.Measurements = map[string]float64{}
	assert.False(t, p.HasMeasurements())

	p.Measurements["chest"] = 40
	assert.True(t, p.HasMeasurements())
}

func TestMeasurementUnit_Label(t *testing.T) {
	assert.Equal(t, "in", UnitInches.Label())
	assert.Equal(t, "cm", UnitCM.Label())
}

package measurements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SURUWE_BACK-END/internal/models"
)

func TestEditor_SetFieldParsesDecimals(t *testing.T) {
	e := NewEditor(models.GenderMale, models.UnitInches, nil)

	e.SetField("chest", "34.5")
	assert.Equal(t, map[string]float64{"chest": 34.5}, e.Values())

	e.SetField("chest", " 38 ")
	assert.Equal(t, map[string]float64{"chest": 38}, e.Values())
}

func TestEditor_SetFieldClearsOnBadInput(t *testing.T) {
	e := NewEditor(models.GenderMale, models.UnitInches, map[string]float64{"waist": 32})

	e.SetField("waist", "")
	assert.Empty(t, e.Values())

	e.SetField("waist", "32")
	e.SetField("waist", "not a number")
	assert.Empty(t, e.Values())

	// Clearing an already-absent key is a no-op.
	e.SetField("waist", "")
	assert.Empty(t, e.Values())
}

func TestEditor_CopiesSeedMap(t *testing.T) {
	seed := map[string]float64{"chest": 40}
	e := NewEditor(models.GenderMale, models.UnitInches, seed)

	e.SetField("chest", "41")
	assert.Equal(t, 40.0, seed["chest"])

	// Values hands out a copy too.
	out := e.Values()
	out["chest"] = 99
	assert.Equal(t, 41.0, e.Values()["chest"])
}

func TestEditor_GenderSwitchKeepsValues(t *testing.T) {
	e := NewEditor(models.GenderMale, models.UnitInches, map[string]float64{"chest": 40, "waist": 32})

	e.SetGender(models.GenderFemale)
	assert.Equal(t, models.GenderFemale, e.Gender())
	// Recorded values survive the switch even when off-schema.
	assert.Equal(t, map[string]float64{"chest": 40, "waist": 32}, e.Values())

	e.SetGender("other")
	assert.Equal(t, models.GenderFemale, e.Gender())
}

func TestEditor_UnitToggle(t *testing.T) {
	e := NewEditor(models.GenderFemale, models.UnitInches, nil)

	e.SetUnit(models.UnitCM)
	assert.Equal(t, models.UnitCM, e.Unit())

	e.SetUnit("feet")
	assert.Equal(t, models.UnitCM, e.Unit())
}

func TestPreview_FiltersToPresentKeys(t *testing.T) {
	values := map[string]float64{"chest": 40, "inseam": 31, "neck": 15}

	chips := Preview(values, models.GenderMale)

	// Curated order, only keys with values, neck is not a key measurement.
	assert.Equal(t, []PreviewChip{
		{Key: "chest", Label: "Chest", Value: 40},
		{Key: "inseam", Label: "Inseam", Value: 31},
	}, chips)
}

func TestPreview_EmptyValues(t *testing.T) {
	assert.Empty(t, Preview(nil, models.GenderFemale))
}

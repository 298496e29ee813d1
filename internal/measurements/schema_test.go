package measurements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"SURUWE_BACK-END/internal/models"
)

func TestFieldsFor_Counts(t *testing.T) {
	assert.Len(t, FieldsFor(models.GenderMale), 17)
	assert.Len(t, FieldsFor(models.GenderFemale), 19)
}

func TestSectionsFor_PartitionsFields(t *testing.T) {
	for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
		fields := FieldsFor(gender)
		sections := SectionsFor(gender)

		// Every field lands in exactly one section, field order preserved.
		var flattened []Field
		for _, s := range sections {
			for _, f := range s.Fields {
				assert.Equal(t, s.Name, f.Section)
				flattened = append(flattened, f)
			}
		}
		assert.Equal(t, fields, flattened, "gender %s", gender)
	}
}

func TestSectionsFor_SectionOrder(t *testing.T) {
	var names []string
	for _, s := range SectionsFor(models.GenderFemale) {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Upper Body", "Arms", "Torso", "Lower Body"}, names)
}

func TestKeyFor_SubsetOfSchema(t *testing.T) {
	for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
		known := map[string]bool{}
		for _, f := range FieldsFor(gender) {
			known[f.Key] = true
		}
		for _, key := range KeyFor(gender) {
			assert.True(t, known[key], "key %q missing from %s schema", key, gender)
		}
	}
}

func TestKeyFor_GenderSpecific(t *testing.T) {
	assert.Contains(t, KeyFor(models.GenderMale), "chest")
	assert.NotContains(t, KeyFor(models.GenderMale), "bust")
	assert.Contains(t, KeyFor(models.GenderFemale), "bust")
	assert.NotContains(t, KeyFor(models.GenderFemale), "chest")
}

func TestLabelFor_FallsBackToKey(t *testing.T) {
	assert.Equal(t, "Chest", LabelFor(models.GenderMale, "chest"))
	// "bust" is not in the male schema; orphaned keys render as themselves.
	assert.Equal(t, "bust", LabelFor(models.GenderMale, "bust"))
}

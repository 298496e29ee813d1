package measurements

import (
	"strconv"
	"strings"

	"SURUWE_BACK-END/internal/models"
)

// Editor is the controlled measurement form: a working copy of a profile's
// measurement map plus the gender and unit toggles. It performs no I/O; the
// caller decides when (and whether) the values get persisted.
type Editor struct {
	gender models.Gender
	unit   models.MeasurementUnit
	values map[string]float64
}

// NewEditor starts an editor pre-filled from an existing map. The input is
// copied, so later edits never leak back into the caller's map.
func NewEditor(gender models.Gender, unit models.MeasurementUnit, values map[string]float64) *Editor {
	e := &Editor{gender: gender, unit: unit, values: make(map[string]float64, len(values))}
	for k, v := range values {
		e.values[k] = v
	}
	return e
}

// SetField normalizes a raw text entry for one field. Empty or unparsable
// input removes the key (the field becomes unmeasured); anything that parses
// as a decimal is stored as is, with no range validation.
func (e *Editor) SetField(key, raw string) {
	raw = strings.TrimSpace(raw)
	num, err := strconv.ParseFloat(raw, 64)
	if raw == "" || err != nil {
		delete(e.values, key)
		return
	}
	e.values[key] = num
}

// Values returns a copy of the current mapping.
func (e *Editor) Values() map[string]float64 {
	out := make(map[string]float64, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

func (e *Editor) Gender() models.Gender        { return e.gender }
func (e *Editor) Unit() models.MeasurementUnit { return e.unit }

// SetGender switches the field schema. Values recorded under the previous
// schema are intentionally not purged.
func (e *Editor) SetGender(g models.Gender) {
	if g.Valid() {
		e.gender = g
	}
}

func (e *Editor) SetUnit(u models.MeasurementUnit) {
	if u.Valid() {
		e.unit = u
	}
}

// Sections returns the schema sections for the editor's current gender.
func (e *Editor) Sections() []Section {
	return SectionsFor(e.gender)
}

package measurements

import "SURUWE_BACK-END/internal/models"

// Field is one measurable dimension, grouped into a body section.
type Field struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Section string `json:"section"`
}

// Section is an ordered group of fields under one body-section heading.
type Section struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Men's measurements grouped by body section.
var maleFields = []Field{
	{Key: "neck", Label: "Neck", Section: "Upper Body"},
	{Key: "chest", Label: "Chest", Section: "Upper Body"},
	{Key: "shoulder", Label: "Shoulder", Section: "Upper Body"},
	{Key: "back_width", Label: "Back Width", Section: "Upper Body"},
	{Key: "armhole", Label: "Armhole", Section: "Upper Body"},
	{Key: "bicep", Label: "Bicep", Section: "Arms"},
	{Key: "sleeve", Label: "Sleeve Length", Section: "Arms"},
	{Key: "wrist", Label: "Wrist", Section: "Arms"},
	{Key: "waist", Label: "Waist", Section: "Torso"},
	{Key: "hips", Label: "Hips", Section: "Torso"},
	{Key: "torso_length", Label: "Torso Length", Section: "Torso"},
	{Key: "inseam", Label: "Inseam", Section: "Lower Body"},
	{Key: "outseam", Label: "Outseam", Section: "Lower Body"},
	{Key: "thigh", Label: "Thigh", Section: "Lower Body"},
	{Key: "knee", Label: "Knee", Section: "Lower Body"},
	{Key: "ankle", Label: "Ankle", Section: "Lower Body"},
	{Key: "crotch_depth", Label: "Crotch Depth", Section: "Lower Body"},
}

// Women's measurements grouped by body section.
var femaleFields = []Field{
	{Key: "neck", Label: "Neck", Section: "Upper Body"},
	{Key: "bust", Label: "Bust", Section: "Upper Body"},
	{Key: "underbust", Label: "Underbust", Section: "Upper Body"},
	{Key: "shoulder", Label: "Shoulder", Section: "Upper Body"},
	{Key: "back_width", Label: "Back Width", Section: "Upper Body"},
	{Key: "armhole", Label: "Armhole", Section: "Upper Body"},
	{Key: "bicep", Label: "Bicep", Section: "Arms"},
	{Key: "bodice_length", Label: "Bodice Length", Section: "Arms"},
	{Key: "sleeve", Label: "Sleeve Length", Section: "Arms"},
	{Key: "wrist", Label: "Wrist", Section: "Arms"},
	{Key: "waist", Label: "Waist", Section: "Torso"},
	{Key: "hips", Label: "Hips", Section: "Torso"},
	{Key: "high_hip", Label: "High Hip", Section: "Torso"},
	{Key: "torso_length", Label: "Torso Length", Section: "Torso"},
	{Key: "inseam", Label: "Inseam", Section: "Lower Body"},
	{Key: "outseam", Label: "Outseam", Section: "Lower Body"},
	{Key: "thigh", Label: "Thigh", Section: "Lower Body"},
	{Key: "knee", Label: "Knee", Section: "Lower Body"},
	{Key: "ankle", Label: "Ankle", Section: "Lower Body"},
}

// Key measurements shown in compact previews (most important for tailoring).
var (
	keyMale   = []string{"chest", "waist", "hips", "shoulder", "sleeve", "inseam"}
	keyFemale = []string{"bust", "waist", "hips", "shoulder", "sleeve", "inseam"}
)

// FieldsFor returns the ordered measurement fields for a gender.
func FieldsFor(gender models.Gender) []Field {
	if gender == models.GenderMale {
		return maleFields
	}
	return femaleFields
}

// SectionsFor groups FieldsFor(gender) by section. Section order follows
// first occurrence in the flat field list.
func SectionsFor(gender models.Gender) []Section {
	fields := FieldsFor(gender)
	index := map[string]int{}
	var sections []Section
	for _, f := range fields {
		i, ok := index[f.Section]
		if !ok {
			i = len(sections)
			index[f.Section] = i
			sections = append(sections, Section{Name: f.Section})
		}
		sections[i].Fields = append(sections[i].Fields, f)
	}
	return sections
}

// KeyFor returns the curated key-measurement subset for a gender.
func KeyFor(gender models.Gender) []string {
	if gender == models.GenderMale {
		return keyMale
	}
	return keyFemale
}

// LabelFor resolves a field key to its display label, falling back to the
// key itself for values stored under a schema the profile no longer uses.
func LabelFor(gender models.Gender, key string) string {
	for _, f := range FieldsFor(gender) {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

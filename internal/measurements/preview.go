package measurements

import "SURUWE_BACK-END/internal/models"

// PreviewChip is one key measurement with its resolved label, for the
// compact preview on the tailor-facing view.
type PreviewChip struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Preview filters the key-measurement subset down to values actually present
// in the map, preserving the curated order.
func Preview(values map[string]float64, gender models.Gender) []PreviewChip {
	var chips []PreviewChip
	for _, key := range KeyFor(gender) {
		v, ok := values[key]
		if !ok {
			continue
		}
		chips = append(chips, PreviewChip{Key: key, Label: LabelFor(gender, key), Value: v})
	}
	return chips
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateContextSlots(t *testing.T) {
	t.Parallel()

	record := &ConsultationRecord{
		Patient: Patient{Name: "Max", Species: "Dog"},
		Consultation: Consultation{
			Date:          "2024-01-01",
			ClinicalNotes: []ClinicalNote{{Note: "Alert and responsive", Type: "general"}},
			TreatmentItems: TreatmentItems{
				Procedures:    []Procedure{{Name: "Radiograph", Quantity: 1}},
				Medicines:     []Medicine{{Name: "Meloxicam"}},
				Prescriptions: []Prescription{{Name: "Carprofen", Duration: "7 days"}},
			},
			Diagnostics: []Diagnostic{{Name: "CBC", Result: "Normal"}},
		},
	}

	ctx := record.TemplateContext()

	assert.Equal(t, record.Patient, ctx["patient"])
	assert.Equal(t, record.Consultation, ctx["consultation"])

	// The shortcut slots must alias the nested collections by value.
	assert.Equal(t, record.Consultation.ClinicalNotes, ctx["clinical_notes"])
	assert.Equal(t, record.Consultation.TreatmentItems.Procedures, ctx["procedures"])
	assert.Equal(t, record.Consultation.TreatmentItems.Medicines, ctx["medicines"])
	assert.Equal(t, record.Consultation.TreatmentItems.Prescriptions, ctx["prescriptions"])
	assert.Equal(t, record.Consultation.Diagnostics, ctx["diagnostics"])
}

func TestTemplateContextAfterMappingRoundTrip(t *testing.T) {
	t.Parallel()

	var doc any
	raw := `{
		"consultation": {
			"clinical_notes": [{"note": "Eating well", "type": "progress"}, {"note": "Wound clean"}]
		}
	}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	record, err := RecordFromDocument(doc)
	require.NoError(t, err)

	ctx := record.TemplateContext()
	assert.Equal(t, record.Consultation.ClinicalNotes, ctx["clinical_notes"])
}

func TestTemplateContextEmptyRecord(t *testing.T) {
	t.Parallel()

	record, err := RecordFromDocument(map[string]any{})
	require.NoError(t, err)

	ctx := record.TemplateContext()
	for _, slot := range []string{"patient", "consultation", "clinical_notes", "procedures", "medicines", "prescriptions", "diagnostics"} {
		assert.Contains(t, ctx, slot)
	}
}

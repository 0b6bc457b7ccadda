package domain

import "fmt"

// RecordFromDocument converts a decoded consultation document into a
// fully populated ConsultationRecord.
//
// The mapping is deliberately permissive: every absent scalar becomes
// its zero/default value, every absent collection becomes an empty
// slice, and substructures of the wrong shape are treated as absent.
// Malformed domain data flows through to note generation instead of
// being rejected. The only failure mode is a document that is not a
// key-value mapping at all, which yields ErrInvalidDocument.
func RecordFromDocument(doc any) (*ConsultationRecord, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidDocument, doc)
	}

	record := &ConsultationRecord{
		Patient:      mapPatient(asObject(root["patient"])),
		Consultation: mapConsultation(asObject(root["consultation"])),
	}

	return record, nil
}

func mapPatient(src map[string]any) Patient {
	return Patient{
		Name:        asString(src["name"]),
		Species:     asString(src["species"]),
		Breed:       asString(src["breed"]),
		Gender:      asString(src["gender"]),
		Neutered:    asBool(src["neutered"]),
		DateOfBirth: asString(src["date_of_birth"]),
		Weight:      asString(src["weight"]),
		Microchip:   asString(src["microchip"]),
	}
}

func mapConsultation(src map[string]any) Consultation {
	consultation := Consultation{
		Date:           asString(src["date"]),
		Time:           asString(src["time"]),
		Reason:         asString(src["reason"]),
		Type:           asString(src["type"]),
		ClinicalNotes:  []ClinicalNote{},
		TreatmentItems: mapTreatmentItems(asObject(src["treatment_items"])),
		Diagnostics:    []Diagnostic{},
	}

	for _, item := range asList(src["clinical_notes"]) {
		note := asObject(item)
		noteType := asString(note["type"])
		if noteType == "" {
			noteType = DefaultNoteType
		}
		consultation.ClinicalNotes = append(consultation.ClinicalNotes, ClinicalNote{
			Note: asString(note["note"]),
			Type: noteType,
		})
	}

	for _, item := range asList(src["diagnostics"]) {
		diag := asObject(item)
		consultation.Diagnostics = append(consultation.Diagnostics, Diagnostic{
			Name:   asString(diag["name"]),
			Result: asString(diag["result"]),
			Notes:  asString(diag["notes"]),
		})
	}

	return consultation
}

func mapTreatmentItems(src map[string]any) TreatmentItems {
	items := TreatmentItems{
		Procedures:    []Procedure{},
		Medicines:     []Medicine{},
		Prescriptions: []Prescription{},
		Foods:         []map[string]any{},
		Supplies:      []map[string]any{},
	}

	for _, item := range asList(src["procedures"]) {
		proc := asObject(item)
		items.Procedures = append(items.Procedures, Procedure{
			Name:       asString(proc["name"]),
			Date:       asString(proc["date"]),
			Time:       asString(proc["time"]),
			Code:       asString(proc["code"]),
			Quantity:   asIntDefault(proc["quantity"], 1),
			TotalPrice: asIntDefault(proc["total_price"], 0),
			Currency:   asString(proc["currency"]),
		})
	}

	for _, item := range asList(src["medicines"]) {
		med := asObject(item)
		items.Medicines = append(items.Medicines, Medicine{
			Name:         asString(med["name"]),
			Dosage:       asString(med["dosage"]),
			Instructions: asString(med["instructions"]),
		})
	}

	for _, item := range asList(src["prescriptions"]) {
		rx := asObject(item)
		items.Prescriptions = append(items.Prescriptions, Prescription{
			Name:         asString(rx["name"]),
			Dosage:       asString(rx["dosage"]),
			Instructions: asString(rx["instructions"]),
			Duration:     asString(rx["duration"]),
		})
	}

	for _, item := range asList(src["foods"]) {
		if food := asObject(item); food != nil {
			items.Foods = append(items.Foods, food)
		}
	}

	for _, item := range asList(src["supplies"]) {
		if supply := asObject(item); supply != nil {
			items.Supplies = append(items.Supplies, supply)
		}
	}

	return items
}

// asObject returns v as a key-value mapping, or nil when v is absent or
// of the wrong shape. Lookups on a nil map are safe, so callers can
// chain field extraction without presence checks.
func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asIntDefault reads an integer field, tolerating the float64 form that
// encoding/json produces for all numbers. Absent or non-numeric values
// yield the provided default; no range validation is performed.
func asIntDefault(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return def
	}
}

package domain

// Patient holds the identifying details of the animal seen in a
// consultation. All fields except Microchip are always populated after
// mapping; absent source values become empty strings or false rather
// than missing fields.
type Patient struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Gender      string `json:"gender"`
	Neutered    bool   `json:"neutered"`
	DateOfBirth string `json:"date_of_birth"`
	Weight      string `json:"weight"`
	Microchip   string `json:"microchip,omitempty"`
}

// ClinicalNote is a single free-text note recorded during the
// consultation. Type defaults to "general" when the source omits it.
type ClinicalNote struct {
	Note string `json:"note"`
	Type string `json:"type"`
}

// DefaultNoteType is applied when a clinical note carries no type.
const DefaultNoteType = "general"

// Procedure is a billable procedure performed during the consultation.
// TotalPrice is expressed in the smallest currency unit.
type Procedure struct {
	Name       string `json:"name"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
	Code       string `json:"code,omitempty"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"total_price,omitempty"`
	Currency   string `json:"currency,omitempty"`
}

// Medicine is a medicine administered during the consultation.
type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescription is a medication prescribed for home use.
type Prescription struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// Diagnostic is a diagnostic test performed during the consultation.
type Diagnostic struct {
	Name   string `json:"name"`
	Result string `json:"result,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// TreatmentItems groups everything administered, prescribed or supplied
// during the consultation. Foods and Supplies are passed through as
// opaque key-value maps without validation. All sequences preserve
// source order.
type TreatmentItems struct {
	Procedures    []Procedure      `json:"procedures"`
	Medicines     []Medicine       `json:"medicines"`
	Prescriptions []Prescription   `json:"prescriptions"`
	Foods         []map[string]any `json:"foods"`
	Supplies      []map[string]any `json:"supplies"`
}

// Consultation describes a single veterinary visit.
type Consultation struct {
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	Reason         string         `json:"reason"`
	Type           string         `json:"type"`
	ClinicalNotes  []ClinicalNote `json:"clinical_notes"`
	TreatmentItems TreatmentItems `json:"treatment_items"`
	Diagnostics    []Diagnostic   `json:"diagnostics"`
}

// ConsultationRecord is the top-level typed form of one consultation
// document: exactly one patient and one consultation. It lives only for
// the duration of a generation request.
type ConsultationRecord struct {
	Patient      Patient      `json:"patient"`
	Consultation Consultation `json:"consultation"`
}

// TemplateContext flattens the record into the named slots consumed by
// prompt templates. The nested collections are exposed both through the
// consultation slot and as top-level shortcuts so templates can refer
// to them without deep paths. The projection is pure and cannot fail.
func (r *ConsultationRecord) TemplateContext() map[string]any {
	return map[string]any{
		"patient":        r.Patient,
		"consultation":   r.Consultation,
		"clinical_notes": r.Consultation.ClinicalNotes,
		"procedures":     r.Consultation.TreatmentItems.Procedures,
		"medicines":      r.Consultation.TreatmentItems.Medicines,
		"prescriptions":  r.Consultation.TreatmentItems.Prescriptions,
		"diagnostics":    r.Consultation.Diagnostics,
	}
}

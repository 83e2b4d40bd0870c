package domain

// Static reference records for the medication/symptom lookup tables.
// These are a data join, not part of the intake protocol.

// Medication struct
type Medication struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// InteractionSeverity type
type InteractionSeverity string

const (
	// SeverityLow const
	SeverityLow InteractionSeverity = "low"
	// SeverityModerate const
	SeverityModerate InteractionSeverity = "moderate"
	// SeverityHigh const
	SeverityHigh InteractionSeverity = "high"
)

// MedicationInteraction struct - a known interaction between two medications
type MedicationInteraction struct {
	Medication1 string              `json:"medication1"`
	Medication2 string              `json:"medication2"`
	Severity    InteractionSeverity `json:"severity"`
	Description string              `json:"description"`
}

// Symptom struct
type Symptom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Condition struct - a condition matched against reported symptoms
type Condition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms"`
	Treatments  []string `json:"treatments"`
}

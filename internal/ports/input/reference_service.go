package input

import "golang-health-portal/internal/domain"

// ReferenceService interface - Input port (use case)
// Static medication/symptom reference lookups.
type ReferenceService interface {
	// ListMedications returns the medication directory.
	ListMedications() []domain.Medication

	// CheckInteractions returns known interactions between the selected
	// medications, one entry per interacting pair.
	CheckInteractions(medicationIDs []string) []domain.MedicationInteraction

	// ListSymptoms returns the symptom directory.
	ListSymptoms() []domain.Symptom

	// CheckConditions returns conditions matching at least one of the
	// selected symptoms.
	CheckConditions(symptomIDs []string) []domain.Condition
}

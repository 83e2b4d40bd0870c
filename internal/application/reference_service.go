package application

import "golang-health-portal/internal/domain"

// ReferenceService struct - Application service implementing static
// medication/symptom reference lookups
type ReferenceService struct{}

// NewReferenceService func - Creates new reference lookup service
func NewReferenceService() *ReferenceService {
	return &ReferenceService{}
}

// ListMedications func - Use case: List the medication directory
func (s *ReferenceService) ListMedications() []domain.Medication {
	result := make([]domain.Medication, len(medications))
	copy(result, medications)
	return result
}

// CheckInteractions func - Use case: Find interactions between the selected
// medications. An interaction is reported only when both of its medications
// were selected.
func (s *ReferenceService) CheckInteractions(medicationIDs []string) []domain.MedicationInteraction {
	selected := make(map[string]bool, len(medicationIDs))
	for _, id := range medicationIDs {
		selected[id] = true
	}

	result := make([]domain.MedicationInteraction, 0)
	for _, interaction := range medicationInteractions {
		if selected[interaction.Medication1] && selected[interaction.Medication2] {
			result = append(result, interaction)
		}
	}
	return result
}

// ListSymptoms func - Use case: List the symptom directory
func (s *ReferenceService) ListSymptoms() []domain.Symptom {
	result := make([]domain.Symptom, len(symptoms))
	copy(result, symptoms)
	return result
}

// CheckConditions func - Use case: Find conditions matching the reported
// symptoms. Conditions with at least one matching symptom are returned.
func (s *ReferenceService) CheckConditions(symptomIDs []string) []domain.Condition {
	selected := make(map[string]bool, len(symptomIDs))
	for _, id := range symptomIDs {
		selected[id] = true
	}

	result := make([]domain.Condition, 0)
	for _, condition := range conditions {
		for _, symptomID := range condition.Symptoms {
			if selected[symptomID] {
				result = append(result, condition)
				break
			}
		}
	}
	return result
}

package application

import "golang-health-portal/internal/domain"

// Static reference tables. These mirror the clinical reference data the
// lookup endpoints serve; a data join, not protocol logic.

var medications = []domain.Medication{
	{ID: "1", Name: "Ibuprofen", Description: "Nonsteroidal anti-inflammatory drug (NSAID)"},
	{ID: "2", Name: "Aspirin", Description: "Salicylate drug used for pain relief and blood thinning"},
	{ID: "3", Name: "Warfarin", Description: "Blood thinner medication"},
	{ID: "4", Name: "Metformin", Description: "Diabetes medication"},
	{ID: "5", Name: "Lisinopril", Description: "ACE inhibitor for blood pressure"},
	{ID: "6", Name: "Amoxicillin", Description: "Antibiotic medication"},
	{ID: "7", Name: "Omeprazole", Description: "Proton pump inhibitor for acid reflux"},
	{ID: "8", Name: "Sertraline", Description: "Antidepressant medication"},
	{ID: "9", Name: "Atorvastatin", Description: "Cholesterol-lowering medication"},
	{ID: "10", Name: "Metoprolol", Description: "Beta blocker for heart conditions"},
}

var medicationInteractions = []domain.MedicationInteraction{
	{Medication1: "1", Medication2: "3", Severity: domain.SeverityHigh, Description: "Taking ibuprofen while on blood thinners may increase bleeding risk."},
	{Medication1: "2", Medication2: "3", Severity: domain.SeverityHigh, Description: "Combining aspirin with warfarin significantly increases bleeding risk."},
	{Medication1: "4", Medication2: "7", Severity: domain.SeverityModerate, Description: "Omeprazole may affect the absorption of metformin."},
	{Medication1: "5", Medication2: "8", Severity: domain.SeverityModerate, Description: "Lisinopril may interact with sertraline to increase dizziness risk."},
	{Medication1: "6", Medication2: "9", Severity: domain.SeverityLow, Description: "Amoxicillin may slightly reduce the effectiveness of atorvastatin."},
	{Medication1: "7", Medication2: "8", Severity: domain.SeverityModerate, Description: "Omeprazole may increase sertraline levels in the blood."},
	{Medication1: "9", Medication2: "10", Severity: domain.SeverityModerate, Description: "Atorvastatin may increase the effects of metoprolol."},
}

var symptoms = []domain.Symptom{
	{ID: "1", Name: "Fever", Description: "Elevated body temperature above normal"},
	{ID: "2", Name: "Headache", Description: "Pain in any region of the head"},
	{ID: "3", Name: "Cough", Description: "Sudden expulsion of air from the lungs"},
	{ID: "4", Name: "Fatigue", Description: "Extreme tiredness or exhaustion"},
	{ID: "5", Name: "Nausea", Description: "Feeling of sickness with an inclination to vomit"},
	{ID: "6", Name: "Chest Pain", Description: "Pain in the chest area"},
	{ID: "7", Name: "Shortness of Breath", Description: "Difficulty breathing"},
	{ID: "8", Name: "Joint Pain", Description: "Pain in any joint of the body"},
	{ID: "9", Name: "Sore Throat", Description: "Pain or irritation in the throat"},
	{ID: "10", Name: "Rash", Description: "Redness or irritation of the skin"},
}

var conditions = []domain.Condition{
	{
		ID:          "1",
		Name:        "Common Cold",
		Description: "Viral infection of the nose and throat",
		Symptoms:    []string{"1", "2", "3", "9"},
		Treatments: []string{
			"Rest and get plenty of sleep",
			"Stay hydrated with water, tea, or clear broths",
			"Use over-the-counter medications for symptom relief",
			"Use a humidifier to ease congestion",
			"Gargle with warm salt water for sore throat",
		},
	},
	{
		ID:          "2",
		Name:        "Influenza",
		Description: "Viral infection affecting the respiratory system",
		Symptoms:    []string{"1", "2", "3", "4", "5", "8"},
		Treatments: []string{
			"Rest and stay home to prevent spreading",
			"Take antiviral medications if prescribed",
			"Stay hydrated with water and electrolyte drinks",
			"Use over-the-counter medications for fever and pain",
			"Consider getting the flu vaccine annually",
		},
	},
	{
		ID:          "3",
		Name:        "COVID-19",
		Description: "Coronavirus disease",
		Symptoms:    []string{"1", "3", "7", "2", "4"},
		Treatments: []string{
			"Isolate to prevent spreading",
			"Rest and stay hydrated",
			"Monitor oxygen levels if shortness of breath persists",
			"Take prescribed antiviral medications if available",
			"Seek emergency care if symptoms worsen",
		},
	},
	{
		ID:          "4",
		Name:        "Pneumonia",
		Description: "Infection that inflames the air sacs in lungs",
		Symptoms:    []string{"1", "3", "7", "6", "4"},
		Treatments: []string{
			"Take prescribed antibiotics if bacterial",
			"Rest and avoid strenuous activity",
			"Stay hydrated",
			"Use a humidifier to help with breathing",
			"Seek emergency care if breathing becomes difficult",
		},
	},
	{
		ID:          "5",
		Name:        "Allergic Reaction",
		Description: "Immune system response to allergens",
		Symptoms:    []string{"10", "7", "9"},
		Treatments: []string{
			"Take antihistamines",
			"Use prescribed epinephrine if severe",
			"Avoid known allergens",
			"Apply cool compresses for rash",
			"Seek emergency care if breathing becomes difficult",
		},
	},
}

package domain

// GenerationMode type - tells the reasoning service what kind of text is
// being requested so adapters can tune the request accordingly
type GenerationMode string

const (
	// GenerationModeQuestion const - an interview question
	GenerationModeQuestion GenerationMode = "question"
	// GenerationModeNote const - a structured clinical note from a transcript
	GenerationModeNote GenerationMode = "note"
	// GenerationModeAnalysis const - a document analysis
	GenerationModeAnalysis GenerationMode = "analysis"
	// GenerationModeChat const - a conversational assistant reply
	GenerationModeChat GenerationMode = "chat"
)

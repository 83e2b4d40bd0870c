package application

import (
	"fmt"
	"strings"

	"golang-health-portal/internal/domain"
)

const firstQuestionPrompt = `You are a clinician conducting a focused patient intake interview.
The patient describes their concern as:

%s

Ask the single most important follow-up question to clarify this concern.
Respond with the question only, no preamble.`

const nextQuestionPrompt = `You are a clinician conducting a focused patient intake interview.
Interview so far:

%s

Ask the next most important follow-up question. Do not repeat earlier
questions. Respond with the question only, no preamble.`

const soapNotePrompt = `Generate professional SOAP notes using the following format:

# SOAP Notes

## Subjective
- Chief complaint
- History of present illness
- Review of systems
- Past medical history

## Objective
- Vital signs
- Physical examination findings
- Lab results (if mentioned)

## Assessment
- Primary diagnosis
- Differential diagnoses
- Clinical reasoning

## Plan
- Treatment recommendations
- Medications (if needed)
- Follow-up instructions
- Patient education

Format the response in markdown, starting directly with the '# SOAP Notes' header.

Interview transcript:

%s`

const chatPrompt = `You are a supportive health assistant for a patient portal.
Answer the patient's message with clear, empathetic guidance in plain
language. Format the response in markdown. Do not diagnose; encourage the
patient to contact a clinician for anything urgent or uncertain, and to call
emergency services if they may be in immediate danger.

Patient message:

%s`

const documentAnalysisPrompt = `Analyze the following medical document and provide a clear, well-structured explanation of its contents and any required actions.
Respond in %s. Format the response in markdown with the following sections:

## Document Overview
- **Type:** [Specify the type of document]
- **Purpose:** [Brief description of the document's purpose]
- **Date:** [If available]

## Key Information
- **Main Points:** [List the most important information]
- **Findings:** [Any significant findings or results]
- **Diagnoses:** [If any are mentioned]

## Required Actions
- **Follow-up Appointments:** [List any required follow-ups]
- **Medications:** [Any prescribed medications or changes]
- **Lifestyle Changes:** [Recommended lifestyle modifications]
- **Other Tasks:** [Any other required actions]

## Important Dates
- **Appointments:** [List upcoming appointments]
- **Deadlines:** [Any important deadlines]
- **Follow-up Schedule:** [Follow-up timeline]

## Additional Notes
- **Warnings:** [Any important warnings or precautions]
- **Questions:** [Questions that should be asked]
- **Additional Information:** [Any other relevant details]

Document name: %s
Document content (%s, base64):
%s

Make sure to:
1. Use clear, concise language
2. Format lists with bullet points
3. Highlight important information in bold
4. Include specific dates and times when available
5. Clearly separate different types of information`

// formatTranscript renders the ordered question/answer pairs exactly as
// submitted. Order must be preserved: it defines the transcript the note is
// generated from.
func formatTranscript(transcript []domain.QuestionAnswer) string {
	var b strings.Builder
	for i, qa := range transcript {
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n", i+1, qa.Question, i+1, qa.Answer)
	}
	return b.String()
}

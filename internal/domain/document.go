package domain

import "net/http"

// DocumentKind type - declared content kind of a submitted document
type DocumentKind string

const (
	// DocumentKindPDF const
	DocumentKindPDF DocumentKind = "pdf"
	// DocumentKindPNG const
	DocumentKindPNG DocumentKind = "png"
	// DocumentKindJPG const
	DocumentKindJPG DocumentKind = "jpg"
	// DocumentKindJPEG const
	DocumentKindJPEG DocumentKind = "jpeg"
)

// SupportedDocumentKind reports whether the declared content kind is one the
// analyzer accepts
func SupportedDocumentKind(kind DocumentKind) bool {
	switch kind {
	case DocumentKindPDF, DocumentKindPNG, DocumentKindJPG, DocumentKindJPEG:
		return true
	}
	return false
}

// Validate checks an item before analysis. Returns ErrUnsupportedDocument
// for a kind the analyzer does not accept and ErrEmptyDocument for an empty
// payload.
func (item *DocumentItem) Validate() error {
	if !SupportedDocumentKind(item.Kind) {
		return ErrUnsupportedDocument
	}
	if len(item.Payload) == 0 {
		return ErrEmptyDocument
	}
	return nil
}

// detectedKinds maps sniffed MIME types to the declared kinds they satisfy
var detectedKinds = map[string][]DocumentKind{
	"application/pdf": {DocumentKindPDF},
	"image/png":       {DocumentKindPNG},
	"image/jpeg":      {DocumentKindJPG, DocumentKindJPEG},
}

// MatchesDeclaredKind sniffs the payload content and reports whether it is
// consistent with the declared kind. A mismatch is treated as a decode
// failure for that item.
func (item *DocumentItem) MatchesDeclaredKind() bool {
	detected := http.DetectContentType(item.Payload)
	for _, kind := range detectedKinds[detected] {
		if kind == item.Kind {
			return true
		}
	}
	return false
}

// DocumentItem represents one submitted document within a batch request.
// Name is the caller-supplied file name and acts as the join key between
// request and response; uniqueness is not enforced.
type DocumentItem struct {
	Name    string
	Payload []byte
	Kind    DocumentKind
}

// DocumentOutcome is the tagged per-item result of a batch analysis: either
// generated analysis text or an error message, never both
type DocumentOutcome struct {
	Analysis string `json:"analysis,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Succeeded reports whether the item produced analysis text
func (o DocumentOutcome) Succeeded() bool {
	return o.Error == ""
}

// SucceededOutcome builds a successful outcome
func SucceededOutcome(analysis string) DocumentOutcome {
	return DocumentOutcome{Analysis: analysis}
}

// FailedOutcome builds a failed outcome carrying the reason
func FailedOutcome(reason string) DocumentOutcome {
	return DocumentOutcome{Error: reason}
}

// BatchAnalysisRequest struct - Domain request for batch document analysis
type BatchAnalysisRequest struct {
	Items    []DocumentItem
	Language string // Output language; empty selects the configured default
}

// BatchAnalysisResult struct - Domain response for batch document analysis.
// Outcomes is keyed by item name; when the caller submits duplicate names the
// later-processed item overwrites the earlier outcome for that key.
type BatchAnalysisResult struct {
	Outcomes map[string]DocumentOutcome
	Success  bool // False only when every item failed
}

package journal

import (
	"fmt"

	"github.com/goccy/go-json"

	"sedrouting/internal/domain"
)

// Event is one case notification from the message bus: a document was
// sent or received in a case. The direction comes from the topic, not the
// payload.
type Event struct {
	CaseID       string `json:"caseId"`
	CaseType     string `json:"caseType"`
	DocumentID   string `json:"documentId"`
	DocumentType string `json:"documentType"`
	// NationalID is the id the bus already knows, when it does. It is a
	// hint, never trusted without registry resolution.
	NationalID string `json:"nationalId,omitempty"`
}

// DecodeEvent parses an event payload.
func DecodeEvent(raw []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.CaseID == "" || ev.DocumentID == "" {
		return Event{}, fmt.Errorf("event missing case or document id")
	}
	return ev, nil
}

// TriggeringType returns the typed document type of the event.
func (e Event) TriggeringType() domain.DocumentType {
	return domain.DocumentType(e.DocumentType)
}

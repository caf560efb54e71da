package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const TypeFinanceChanged = "finance.changed"

var ErrMalformedEvent = errors.New("malformed event")

// refreshPrefixes are the event families that change what the dashboard shows.
var refreshPrefixes = []string{"booking.", "salary.", "expense.", "vehicle."}

type Event struct {
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
	Source string `json:"source,omitempty"`
}

func ParseEvent(body []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	e.Type = strings.TrimSpace(e.Type)
	return e, nil
}

// Refreshes reports whether the event should trigger a dashboard refresh.
func (e Event) Refreshes() bool {
	if e.Type == TypeFinanceChanged {
		return true
	}
	for _, prefix := range refreshPrefixes {
		if strings.HasPrefix(e.Type, prefix) {
			return true
		}
	}
	return false
}

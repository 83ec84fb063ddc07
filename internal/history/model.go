package history

import (
	"encoding/json"
	"time"
)

// Record is one persisted generation outcome.
type Record struct {
	ID        string
	JD        string
	Profile   json.RawMessage
	HTML      string
	CreatedAt time.Time
}

package semantic

import (
	"encoding/json"
	"time"
)

// Record is a piece of knowledge persisted on behalf of an agent, such as the
// payload of a Memorize action.
type Record struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Content    string          `json:"content"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// DefaultCollection holds records saved without an explicit collection.
const DefaultCollection = "memories"

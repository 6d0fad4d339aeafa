package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const ViewsInvalidatedRoutingKey = "views.invalidated"

// ViewsInvalidatedMessage tells downstream consumers which pages of a user
// need to be re-rendered.
type ViewsInvalidatedMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Paths     []string  `json:"paths"`
	Timestamp time.Time `json:"timestamp"`
}

// NewViewsInvalidatedMessage lists the dashboard plus one detail page per account.
func NewViewsInvalidatedMessage(userID uuid.UUID, accountIDs ...uuid.UUID) *ViewsInvalidatedMessage {
	paths := make([]string, 0, len(accountIDs)+1)
	paths = append(paths, "/dashboard")
	for _, id := range accountIDs {
		paths = append(paths, fmt.Sprintf("/account/%s", id))
	}
	return &ViewsInvalidatedMessage{
		ID:        uuid.New(),
		UserID:    userID,
		Paths:     paths,
		Timestamp: time.Now().UTC(),
	}
}

func (m *ViewsInvalidatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ViewsInvalidatedMessageFromJSON(data []byte) (*ViewsInvalidatedMessage, error) {
	var msg ViewsInvalidatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

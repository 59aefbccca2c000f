package kafka

import (
	"encoding/json"
	"time"
)

// StatementRequest asks the reporter to build one user statement.
// The reporter re-reads everything from storage; the message carries
// only the addressing.
type StatementRequest struct {
	UserID      int64     `json:"user_id"`
	Period      string    `json:"period"`
	RequestedAt time.Time `json:"requested_at"`
}

func NewStatementRequest(userID int64, period string) *StatementRequest {
	return &StatementRequest{
		UserID:      userID,
		Period:      period,
		RequestedAt: time.Now(),
	}
}

func (m *StatementRequest) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func StatementRequestFromJSON(data []byte) (*StatementRequest, error) {
	var msg StatementRequest
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

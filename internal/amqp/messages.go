package amqp

import (
	"encoding/json"
	"time"
)

// NotificationMessage carries one computed insight from the notifier job to
// the delivery worker. It is self-contained so the worker never re-runs the
// aggregation.
type NotificationMessage struct {
	To        string    `json:"to"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// NewNotificationMessage builds a message stamped with the current time.
func NewNotificationMessage(to, title, body string) *NotificationMessage {
	return &NotificationMessage{
		To:        to,
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes.
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Package schematype holds JSON-serialized payload types shared between
// ent schemas and application code.
package schematype

import "time"

// Question is a single generated feedback question.
type Question struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Category    string `json:"category"` // technical, business, action
	Placeholder string `json:"placeholder,omitempty"`
}

// ChatTurn is one turn in a feedback conversation history.
type ChatTurn struct {
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// QAPair is a completed question/answer pair stored on an insight.
type QAPair struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Answer     string `json:"answer"`
}

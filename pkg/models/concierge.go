package models

// UserContext carries optional caller hints into the concierge.
type UserContext struct {
	UserID    string   `json:"user_id,omitempty"`
	Role      string   `json:"role,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Location  string   `json:"location,omitempty"`
}

// AskRequest is the body of POST /concierge/ask.
type AskRequest struct {
	Question    string       `json:"question"`
	UserContext *UserContext `json:"user_context,omitempty"`
}

// AskResponse is the concierge answer envelope.
type AskResponse struct {
	Answer       string `json:"answer"`
	QuestionType string `json:"question_type"`
}

// LinkedInPostRequest is the body of POST /concierge/generate-linkedin-post.
type LinkedInPostRequest struct {
	Topic        string   `json:"topic"`
	KeyPoints    []string `json:"key_points,omitempty"`
	TagHandles   []string `json:"people_companies_to_tag,omitempty"`
	CallToAction string   `json:"call_to_action,omitempty"`
	Link         string   `json:"link,omitempty"`
}

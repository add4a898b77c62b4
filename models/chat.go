package models

// ChatTurn is one exchange in a chatbot conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatContext is the rolling conversation history kept per user.
type ChatContext struct {
	Turns []ChatTurn `json:"turns"`
}

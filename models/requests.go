package models

// Prompt_Turn is a single role-tagged turn inside an outbound completion request.
// Role is one of "system", "user", "assistant".
type Prompt_Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat_Request is the wire body POSTed to <base>/api/chat.
// Stream is always false; the system waits for complete replies.
type Chat_Request struct {
	Model    string        `json:"model"`
	Messages []Prompt_Turn `json:"messages"`
	Stream   bool          `json:"stream"`
}

// New_Chat_Request builds the fixed two-turn request: system prompt then user input.
func New_Chat_Request(model, systemPrompt, userInput string) Chat_Request {
	return Chat_Request{
		Model: model,
		Messages: []Prompt_Turn{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userInput},
		},
		Stream: false,
	}
}

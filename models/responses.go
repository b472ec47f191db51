package models

// Chat_Response is the wire body returned by <base>/api/chat when stream is false.
type Chat_Response struct {
	Model   string      `json:"model"`
	Message Prompt_Turn `json:"message"`
	Done    bool        `json:"done"`
}

// Completion_Result is the outcome of one completion attempt against one
// endpoint+model pair. Reply is non-empty on success and echoes the model used.
type Completion_Result struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

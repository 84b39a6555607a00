package domain

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatUsage mirrors the token accounting of the LLM upstream.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletion is the upstream reply to a chat request.
type ChatCompletion struct {
	Content string     `json:"content"`
	Usage   *ChatUsage `json:"usage,omitempty"`
}

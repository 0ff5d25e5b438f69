package types

type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Message    string `json:"message"`
}

type AskResponse struct {
	Answer      string    `json:"answer"`
	ChatHistory []Message `json:"chat_history"`
}

type SearchResponse struct {
	Documents []ScoredChunk `json:"documents"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

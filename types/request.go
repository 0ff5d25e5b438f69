package types

type AskRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
	Question   string `json:"question" validate:"required"`
}

type SearchRequest struct {
	DocumentID string `json:"document_id" validate:"required"`
	Query      string `json:"query" validate:"required"`
	Limit      int    `json:"limit,omitempty"`
}

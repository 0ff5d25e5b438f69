package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/service"
	"github.com/docchat/docchat-be/types"
)

type AskHandler struct {
	rag      *service.RAGService
	sessions *database.SessionStore
}

func NewAskHandler(rag *service.RAGService, sessions *database.SessionStore) *AskHandler {
	return &AskHandler{
		rag:      rag,
		sessions: sessions,
	}
}

// HandleAsk answers a question against an uploaded document's index and
// appends the exchange to the session's history. Accepts a JSON body or, for
// form clients, document_id/user_question fields.
func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, "invalid request body")
			return
		}
	} else {
		req.DocumentID = c.PostForm("document_id")
		req.Question = c.PostForm("user_question")
	}

	if errs := types.Validate(&req); len(errs) > 0 {
		writeBadRequest(c, "document_id and question are required")
		return
	}

	// Get returns a snapshot, so the index and the history it carries are
	// consistent even if a reupload replaces the session mid-request.
	session, err := h.sessions.Get(req.DocumentID)
	if err != nil {
		writeError(c, err)
		return
	}

	answer, _, err := h.rag.Answer(c.Request.Context(), session.Index, req.Question, session.History)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.sessions.AppendTurn(req.DocumentID, req.Question, answer); err != nil {
		writeError(c, err)
		return
	}

	chatHistory, err := h.sessions.History(req.DocumentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AskResponse{
		Answer:      answer,
		ChatHistory: chatHistory,
	})
}

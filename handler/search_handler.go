package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/types"
)

const defaultSearchLimit = 5

type SearchHandler struct {
	sessions *database.SessionStore
}

func NewSearchHandler(sessions *database.SessionStore) *SearchHandler {
	return &SearchHandler{
		sessions: sessions,
	}
}

// HandleSearch returns the top-k chunks for a query without invoking the
// completion backend.
func (h *SearchHandler) HandleSearch(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body")
		return
	}
	if errs := types.Validate(&req); len(errs) > 0 {
		writeBadRequest(c, "document_id and query are required")
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	session, err := h.sessions.Get(req.DocumentID)
	if err != nil {
		writeError(c, err)
		return
	}

	chunks, err := session.Index.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SearchResponse{Documents: chunks})
}

package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/docchat/docchat-be/database"
	"github.com/docchat/docchat-be/service"
	"github.com/docchat/docchat-be/types"
)

const maxUploadSize = 10 << 20

type UploadHandler struct {
	documents *service.DocumentService
	sessions  *database.SessionStore
}

func NewUploadHandler(documents *service.DocumentService, sessions *database.SessionStore) *UploadHandler {
	return &UploadHandler{
		documents: documents,
		sessions:  sessions,
	}
}

// HandleUpload ingests one or more PDF files into a fresh session, or into
// an existing one when a document_id form field is supplied. A reupload
// replaces the session's index wholesale and resets its history.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		writeBadRequest(c, "invalid multipart form")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["file"]
	}
	if len(fileHeaders) == 0 {
		writeBadRequest(c, "no files uploaded")
		return
	}

	docs := make([]types.Document, 0, len(fileHeaders))
	names := make([]string, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		if header.Size > maxUploadSize {
			writeBadRequest(c, "file too large: "+header.Filename)
			return
		}
		data, err := readFile(header)
		if err != nil {
			writeError(c, err)
			return
		}
		docs = append(docs, types.Document{
			Filename:   header.Filename,
			Data:       data,
			UploadedAt: time.Now(),
		})
		names = append(names, header.Filename)
	}

	index, err := h.documents.Ingest(c.Request.Context(), docs)
	if err != nil {
		writeError(c, err)
		return
	}

	filename := strings.Join(names, ", ")
	var session *database.Session
	if id := c.PostForm("document_id"); id != "" {
		session, err = h.sessions.Replace(id, index, filename)
		if err != nil {
			writeError(c, err)
			return
		}
	} else {
		session = h.sessions.Create(index, filename)
	}

	log.Info().
		Str("document_id", session.ID).
		Str("filename", filename).
		Int("chunks", index.Len()).
		Time("session_created_at", session.CreatedAt).
		Msg("documents indexed")

	c.JSON(http.StatusOK, types.UploadResponse{
		DocumentID: session.ID,
		Filename:   filename,
		Message:    "Documents processed successfully!",
	})
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

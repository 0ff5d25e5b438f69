package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API surface. Kept separate from cmd so tests can run
// the exact routes the server exposes.
func NewRouter(upload *UploadHandler, ask *AskHandler, search *SearchHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsHandler := NewCorsHandler()
	router.Use(corsHandler.CorsMiddleware)

	router.GET("/", HandleWelcome)
	router.POST("/upload", upload.HandleUpload)
	router.POST("/ask", ask.HandleAsk)
	router.POST("/search", search.HandleSearch)

	return router
}

func HandleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Document-Based Chatbot!"})
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docchat/docchat-be/types"
	"github.com/docchat/docchat-be/utils"
)

// uploadDocumentCmd posts one or more PDFs to a running server. The index
// lives in server memory, so ingestion has to go through the HTTP API.
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Upload PDF files to a running server",
	Long: `Uploads one or more PDF files to a running docchat-be server and
prints the document id to use with the ask command.`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		files, _ := cmd.Flags().GetStringArray("file")
		documentID, _ := cmd.Flags().GetString("document-id")
		if len(files) == 0 {
			log.Fatal("at least one --file is required")
		}

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				log.Fatalf("failed to read %s: %v", path, err)
			}
			part, err := writer.CreateFormFile("files", utils.SanitizeFilename(filepath.Base(path)))
			if err != nil {
				log.Fatalf("failed to build form: %v", err)
			}
			if _, err := part.Write(data); err != nil {
				log.Fatalf("failed to build form: %v", err)
			}
		}
		if documentID != "" {
			writer.WriteField("document_id", documentID)
		}
		if err := writer.Close(); err != nil {
			log.Fatalf("failed to build form: %v", err)
		}

		resp, err := http.Post(serverURL+"/upload", writer.FormDataContentType(), &body)
		if err != nil {
			log.Fatalf("upload failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			detail, _ := io.ReadAll(resp.Body)
			log.Fatalf("upload failed with status %d: %s", resp.StatusCode, detail)
		}

		var uploadResp types.UploadResponse
		if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
			log.Fatalf("failed to decode response: %v", err)
		}
		fmt.Printf("document_id: %s\nfilename: %s\n", uploadResp.DocumentID, uploadResp.Filename)
	},
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringArrayP("file", "f", []string{}, "Path to a PDF file to upload (repeatable)")
	uploadDocumentCmd.Flags().StringP("server", "s", "http://localhost:8000", "URL of the running server")
	uploadDocumentCmd.Flags().StringP("document-id", "d", "", "Existing document id to replace")
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/docchat/docchat-be/types"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question about an uploaded document",
	Long: `Sends a question about a previously uploaded document to a running
docchat-be server and prints the answer.`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		documentID, _ := cmd.Flags().GetString("document-id")
		question, _ := cmd.Flags().GetString("question")
		if documentID == "" || question == "" {
			log.Fatal("--document-id and --question are required")
		}

		payload, err := json.Marshal(types.AskRequest{
			DocumentID: documentID,
			Question:   question,
		})
		if err != nil {
			log.Fatalf("failed to encode request: %v", err)
		}

		resp, err := http.Post(serverURL+"/ask", "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Fatalf("ask failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			detail, _ := io.ReadAll(resp.Body)
			log.Fatalf("ask failed with status %d: %s", resp.StatusCode, detail)
		}

		var askResp types.AskResponse
		if err := json.NewDecoder(resp.Body).Decode(&askResp); err != nil {
			log.Fatalf("failed to decode response: %v", err)
		}
		fmt.Println(askResp.Answer)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringP("server", "s", "http://localhost:8000", "URL of the running server")
	askCmd.Flags().StringP("document-id", "d", "", "Document id returned by upload")
	askCmd.Flags().StringP("question", "q", "", "Question to ask")
}

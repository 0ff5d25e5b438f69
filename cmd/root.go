package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docchat-be",
	Short: "Chat with your PDF documents",
	Long: `docchat-be is a backend for question answering over uploaded PDF
documents. Upload a document, it is chunked and embedded into an in-memory
vector index, then ask questions against it; answers are generated by a
hosted LLM conditioned on the retrieved chunks.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

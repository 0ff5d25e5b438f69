package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextMalformedPDF(t *testing.T) {
	pdfService := NewPDFService()

	_, err := pdfService.ExtractText([]byte("this is not a pdf"))
	assert.Error(t, err)
}

func TestExtractTextEmptyInput(t *testing.T) {
	pdfService := NewPDFService()

	_, err := pdfService.ExtractText(nil)
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello\nworld", cleanText("hello\fworld\r"))
	assert.Equal(t, "text", cleanText(" \u0000te\ufffdxt"))
	assert.Equal(t, "spaced", cleanText("  spaced  "))
}

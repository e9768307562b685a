package extract

import (
	"bytes"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc  = "application/msword"
	MimeText = "text/plain"
)

func Supported(mime string) bool {
	switch mime {
	case MimePDF, MimeDocx, MimeDoc, MimeText:
		return true
	}
	return false
}

// Extract pulls best-effort plain text out of an uploaded file based on its
// declared MIME type, plus a page count for PDFs. Unsupported types and
// extraction failures yield empty text rather than an error: a material with
// no extracted text falls back to its description at generation time.
func Extract(path, mime string) (text string, pages int) {
	switch mime {
	case MimePDF:
		return fromPDF(path)
	case MimeDocx, MimeDoc:
		return fromWord(path), 0
	case MimeText:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", 0
		}
		return string(b), 0
	}
	return "", 0
}

func fromPDF(path string) (string, int) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		pages = 0
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", pages
	}
	defer f.Close()

	rd, err := r.GetPlainText()
	if err != nil {
		return "", pages
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", pages
	}
	return buf.String(), pages
}

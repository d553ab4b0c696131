package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontSize   = 11
	pdfLineHeight = 5.5
	pdfParaGap    = 4
)

// renderPDF converts lesson text into a single-column PDF document.
// Blank-line-separated paragraphs become document paragraphs.
func renderPDF(text string) (out []byte, err error) {
	// fpdf reports errors through its internal state but can also
	// panic on misuse; treat both as render failures.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("document engine: %v", r)
		}
	}()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Lesson Plan", true)
	doc.AddPage()
	doc.SetFont("Helvetica", "", pdfFontSize)

	// Core fonts are cp1252; translate what can be translated and let
	// the rest degrade.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, para := range splitParagraphs(text) {
		doc.MultiCell(0, pdfLineHeight, tr(para), "", "L", false)
		doc.Ln(pdfParaGap)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitParagraphs splits text on blank lines, dropping empty chunks.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paras []string
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			paras = append(paras, chunk)
		}
	}
	if len(paras) == 0 {
		paras = []string{""}
	}
	return paras
}

package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed export filenames and media types.
const (
	MarkdownFileName = "lesson_plan.md"
	TextFileName     = "lesson_plan.txt"
	PDFFileName      = "lesson_plan.pdf"

	MarkdownMediaType = "text/markdown"
	TextMediaType     = "text/plain"
	PDFMediaType      = "application/pdf"
)

// ErrExportUnavailable indicates the document-format export failed or
// is unavailable. Non-fatal: the markdown and plain-text exports are
// unaffected.
type ErrExportUnavailable struct {
	Err error
}

func (e *ErrExportUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("PDF export unavailable: %v", e.Err)
	}
	return "PDF export unavailable"
}

func (e *ErrExportUnavailable) Unwrap() error { return e.Err }

// Adapter converts lesson text into export payloads. The document
// engine is probed once at construction; callers check
// SupportsDocumentExport before offering that format.
type Adapter struct {
	pdfAvailable bool
}

// NewAdapter creates an Adapter, probing the document engine with a
// one-paragraph render.
func NewAdapter() *Adapter {
	_, err := renderPDF("probe")
	return &Adapter{pdfAvailable: err == nil}
}

// SupportsDocumentExport reports whether PDF export is available.
func (a *Adapter) SupportsDocumentExport() bool {
	return a.pdfAvailable
}

// Markdown returns the lesson as UTF-8 markdown bytes (identity).
func (a *Adapter) Markdown(lesson string) []byte {
	return []byte(lesson)
}

// Text returns the lesson as UTF-8 plain-text bytes. The format
// distinction from Markdown is cosmetic; the bytes are identical.
func (a *Adapter) Text(lesson string) []byte {
	return []byte(lesson)
}

// PDF returns the lesson as a PDF byte stream, converting blank-line
// separated paragraphs into document paragraphs.
func (a *Adapter) PDF(lesson string) ([]byte, error) {
	if !a.pdfAvailable {
		return nil, &ErrExportUnavailable{}
	}
	out, err := renderPDF(lesson)
	if err != nil {
		return nil, &ErrExportUnavailable{Err: err}
	}
	return out, nil
}

// SavedFile records one written export payload.
type SavedFile struct {
	Name      string
	Path      string
	MediaType string
}

// Result reports the outcome of SaveAll. DocErr is set when the
// document-format export failed or was skipped; the other formats are
// listed in Files regardless.
type Result struct {
	Files  []SavedFile
	DocErr error
}

// SaveAll writes all available export formats into dir. The returned
// error covers markdown/text I/O failures only; a document-format
// failure is reported through Result.DocErr and does not affect the
// other files.
func (a *Adapter) SaveAll(dir, lesson string) (Result, error) {
	var res Result

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create export dir: %w", err)
	}

	flat := []struct {
		name      string
		mediaType string
		data      []byte
	}{
		{MarkdownFileName, MarkdownMediaType, a.Markdown(lesson)},
		{TextFileName, TextMediaType, a.Text(lesson)},
	}
	for _, f := range flat {
		p := filepath.Join(dir, f.name)
		if err := os.WriteFile(p, f.data, 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", f.name, err)
		}
		res.Files = append(res.Files, SavedFile{Name: f.name, Path: p, MediaType: f.mediaType})
	}

	if !a.pdfAvailable {
		res.DocErr = &ErrExportUnavailable{}
		return res, nil
	}

	data, err := a.PDF(lesson)
	if err != nil {
		res.DocErr = err
		return res, nil
	}
	p := filepath.Join(dir, PDFFileName)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		res.DocErr = &ErrExportUnavailable{Err: err}
		return res, nil
	}
	res.Files = append(res.Files, SavedFile{Name: PDFFileName, Path: p, MediaType: PDFMediaType})

	return res, nil
}

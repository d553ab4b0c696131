package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleLesson = "# The Solar System\n\nAn overview of the planets.\n\n- Mercury\n- Venus\n\nExit ticket: name two planets."

func TestMarkdownAndTextAreIdentity(t *testing.T) {
	a := NewAdapter()

	md := a.Markdown(sampleLesson)
	txt := a.Text(sampleLesson)

	require.Equal(t, []byte(sampleLesson), md)
	require.Equal(t, md, txt)
}

func TestPDFProducesDocument(t *testing.T) {
	a := NewAdapter()
	require.True(t, a.SupportsDocumentExport())

	data, err := a.PDF(sampleLesson)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected a PDF header")
}

func TestSplitParagraphs(t *testing.T) {
	paras := splitParagraphs("one\n\ntwo\nstill two\n\n\nthree\r\n\r\nfour")
	require.Equal(t, []string{"one", "two\nstill two", "three", "four"}, paras)

	require.Equal(t, []string{""}, splitParagraphs(""))
}

func TestSaveAllWritesFixedFilenames(t *testing.T) {
	a := NewAdapter()
	dir := t.TempDir()

	res, err := a.SaveAll(dir, sampleLesson)
	require.NoError(t, err)
	require.NoError(t, res.DocErr)
	require.Len(t, res.Files, 3)

	for _, name := range []string{MarkdownFileName, TextFileName, PDFFileName} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
	}

	got, err := os.ReadFile(filepath.Join(dir, MarkdownFileName))
	require.NoError(t, err)
	require.Equal(t, sampleLesson, string(got))
}

func TestSaveAllDegradesWithoutDocumentEngine(t *testing.T) {
	a := &Adapter{pdfAvailable: false}
	dir := t.TempDir()

	res, err := a.SaveAll(dir, sampleLesson)
	require.NoError(t, err, "md/txt export must not be affected")
	require.Len(t, res.Files, 2)

	var unavailable *ErrExportUnavailable
	require.ErrorAs(t, res.DocErr, &unavailable)

	_, statErr := os.Stat(filepath.Join(dir, PDFFileName))
	require.True(t, os.IsNotExist(statErr))
}

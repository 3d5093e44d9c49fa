package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// PDFWriter renders documents with fpdf into Dir. Files are written under a
// temporary name and renamed into place once complete. Font, when set, is a
// UTF-8 TrueType file used instead of the built-in Helvetica.
type PDFWriter struct {
	Dir  string
	Font string
}

var fontStyles = map[Font]struct {
	style string
	size  float64
}{
	FontBanner:  {"B", 16},
	FontHeading: {"B", 11},
	FontBody:    {"", 10},
}

// Write implements Writer.
func (w PDFWriter) Write(name string, doc Document) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(w.Dir, name)

	tmp, err := os.CreateTemp(w.Dir, ".journal-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	discard := func(cause error) (string, error) {
		_ = tmp.Close()
		return "", errors.Join(cause, os.Remove(tmp.Name()))
	}

	if err := RenderWithFont(tmp, doc, w.Font); err != nil {
		return discard(err)
	}
	if err := tmp.Sync(); err != nil {
		return discard(fmt.Errorf("sync %s: %w", tmp.Name(), err))
	}
	if err := tmp.Close(); err != nil {
		return discard(fmt.Errorf("close %s: %w", tmp.Name(), err))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return discard(fmt.Errorf("publish %s: %w", path, err))
	}
	return path, nil
}

// Render draws doc as PDF onto out with the built-in Helvetica. Text is
// encoded as cp1252, so characters outside it (CJK, emoji) are dropped; use
// RenderWithFont for those.
func Render(out io.Writer, doc Document) error {
	return RenderWithFont(out, doc, "")
}

// RenderWithFont draws doc using the UTF-8 TrueType font at fontPath, or
// Helvetica when fontPath is empty.
func RenderWithFont(out io.Writer, doc Document, fontPath string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("journal", true)

	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if fontPath != "" {
		family = "journal"
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
		tr = func(s string) string { return s }
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("load font %s: %w", fontPath, err)
		}
	}

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			fs := fontStyles[op.Font]
			pdf.SetFont(family, fs.style, fs.size)
			pdf.Text(op.X, op.Y, tr(op.Text))
		}
	}
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"strategix-backend/internal/shared/storage/object"
	"strategix-backend/internal/shared/telemetry"
)

// FromStore pulls a stored object and extracts its text. An empty string means
// the document could not be read or is in an unsupported format; callers must
// treat it as "nothing to analyze", never as an error.
func FromStore(ctx context.Context, store object.ObjectStore, storageKey string, fileName string) string {
	if ctx.Err() != nil {
		return ""
	}
	body, err := store.Open(ctx, storageKey)
	if err != nil {
		telemetry.Warn("extract.open_failed", map[string]any{"storage_key": storageKey, "error": err.Error()})
		return ""
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		telemetry.Warn("extract.read_failed", map[string]any{"storage_key": storageKey, "error": err.Error()})
		return ""
	}
	return FromBytes(raw, fileName)
}

// FromFile extracts text from a file on disk.
func FromFile(path string) string {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return ""
	}
	return FromBytes(raw, path)
}

// FromBytes extracts text from an in-memory payload, dispatching on the file
// extension. Unsupported extensions yield an empty string.
func FromBytes(data []byte, fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return Clean(extractPDF(data))
	case ".docx", ".doc":
		return Clean(extractDOCX(data))
	case ".txt":
		return Clean(string(data))
	default:
		return ""
	}
}

// extractPDF tries a layout-preserving row extraction first and falls back to
// the reader's plain-text stream when that fails.
func extractPDF(data []byte) (text string) {
	// The pdf reader panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Warn("extract.pdf_panic", map[string]any{"error": rec})
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	if rows := extractPDFByRows(reader); rows != "" {
		return rows
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return buf.String()
}

func extractPDFByRows(reader *pdf.Reader) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
		}
	}()

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return ""
		}
		for _, row := range rows {
			for _, word := range row.Content {
				out.WriteString(word.S)
				out.WriteByte(' ')
			}
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// extractDOCX walks word/document.xml, emitting paragraphs in order and table
// rows as pipe-joined cell text at their position.
func extractDOCX(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return ""
	}

	rc, err := docFile.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return ""
	}
	return stripDocxXML(string(raw))
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var out strings.Builder
	var cell strings.Builder
	var row []string
	tableDepth := 0
	inCell := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				if tableDepth > 0 {
					row = row[:0]
				}
			case "tc":
				if tableDepth > 0 {
					inCell = true
					cell.Reset()
				}
			}
		case xml.CharData:
			if inCell {
				cell.Write(t)
			} else {
				out.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p", "br":
				if !inCell && out.Len() > 0 {
					out.WriteString("\n")
				}
			case "tc":
				if inCell {
					row = append(row, strings.TrimSpace(cell.String()))
					inCell = false
				}
			case "tr":
				if tableDepth > 0 && len(row) > 0 {
					out.WriteString(strings.Join(row, " | "))
					out.WriteString("\n")
					row = row[:0]
				}
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			}
		}
	}
	return strings.TrimSpace(out.String())
}

// Clean normalizes extracted text: zero-width and no-break characters are
// stripped, everything outside printable basic Latin folds to a space, and
// whitespace runs collapse to single spaces.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == '\u200b' || r == '\u200c' || r == '\u200d' || r == '\ufeff':
			// zero-width characters disappear entirely
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

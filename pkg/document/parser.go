// Package document extracts plain text from uploaded resume files.
package document

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/artem13815/hr/screening/pkg/apperrors"
)

// Kind is a supported document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindTXT  Kind = "txt"
)

var (
	reTags       = regexp.MustCompile(`<[^>]+>`)
	reInlineWS   = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	reBlankLines = regexp.MustCompile(`\n\s*\n+`)
)

// KindFromFilename picks the kind by file extension.
func KindFromFilename(filename string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt":
		return KindTXT, nil
	default:
		return "", fmt.Errorf("%q: only pdf, docx and txt are allowed: %w", filename, apperrors.ErrUnsupportedFormat)
	}
}

// KindFromMIME picks the kind by MIME type, ignoring parameters.
func KindFromMIME(mimeType string) (Kind, error) {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mimeType))
	}
	switch mt {
	case "application/pdf":
		return KindPDF, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindDOCX, nil
	case "text/plain":
		return KindTXT, nil
	default:
		return "", fmt.Errorf("mime type %q: %w", mimeType, apperrors.ErrUnsupportedFormat)
	}
}

// DetectKind prefers the file extension and falls back to the MIME type.
func DetectKind(filename, mimeType string) (Kind, error) {
	kind, err := KindFromFilename(filename)
	if err == nil {
		return kind, nil
	}
	if mimeType != "" {
		if k, mErr := KindFromMIME(mimeType); mErr == nil {
			return k, nil
		}
	}
	return "", err
}

// ExtractText returns the plain text of a document. Unknown kinds fail with
// apperrors.ErrUnsupportedFormat; unreadable or textless documents fail with
// apperrors.ErrExtraction.
func ExtractText(kind Kind, data []byte) (text string, err error) {
	defer func() {
		// the pdf reader panics on some malformed inputs
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%s parser: %v: %w", kind, r, apperrors.ErrExtraction)
		}
	}()

	switch kind {
	case KindPDF:
		text, err = extractTextFromPDF(data)
	case KindDOCX:
		text, err = extractTextFromDocx(data)
	case KindTXT:
		text, err = extractTextFromPlain(data)
	default:
		return "", fmt.Errorf("kind %q: %w", kind, apperrors.ErrUnsupportedFormat)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %v: %w", kind, err, apperrors.ErrExtraction)
	}
	text = normalizeWhitespace(text)
	if text == "" {
		return "", fmt.Errorf("%s has no text: %w", kind, apperrors.ErrExtraction)
	}
	return text, nil
}

// ParseResumeText resolves the kind from filename and MIME type and extracts text.
func ParseResumeText(filename, mimeType string, data []byte) (string, error) {
	kind, err := DetectKind(filename, mimeType)
	if err != nil {
		return "", err
	}
	return ExtractText(kind, data)
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	xml := doc.Editable().GetContent()
	// paragraph boundaries become line breaks, the rest of the markup goes
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	txt := reTags.ReplaceAllString(xml, "")
	return html.UnescapeString(txt), nil
}

func extractTextFromPlain(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text is not valid UTF-8")
	}
	return string(data), nil
}

// normalizeWhitespace collapses blanks inside lines and runs of empty lines.
// Line breaks are kept: the name heuristic reads the first lines.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = reInlineWS.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = reBlankLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

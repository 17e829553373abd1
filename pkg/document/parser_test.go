package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr/screening/pkg/apperrors"
)

func TestKindFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
		wantErr  error
	}{
		{filename: "cv.pdf", want: KindPDF},
		{filename: "CV.PDF", want: KindPDF},
		{filename: "resume.final.docx", want: KindDOCX},
		{filename: "notes.txt", want: KindTXT},
		{filename: "resume.doc", wantErr: apperrors.ErrUnsupportedFormat},
		{filename: "resume", wantErr: apperrors.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := KindFromFilename(tt.filename)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectKind(t *testing.T) {
	k, err := DetectKind("upload", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, KindPDF, k)

	k, err = DetectKind("blob.bin", "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, KindTXT, k)

	k, err = DetectKind("cv.docx", "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, KindDOCX, k)

	_, err = DetectKind("image.png", "image/png")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestExtractTextPlain(t *testing.T) {
	data := []byte("\xef\xbb\xbfJane   Doe\r\n\r\n\r\n  jane@example.com \t\nGo, SQL\n")
	got, err := ExtractText(KindTXT, data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\nGo, SQL", got)
}

func TestExtractTextFailures(t *testing.T) {
	_, err := ExtractText(KindTXT, []byte("  \n\t "))
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	_, err = ExtractText(KindTXT, []byte{0xff, 0xfe, 0x00})
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	_, err = ExtractText(KindPDF, []byte("not a pdf at all"))
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	_, err = ExtractText(KindDOCX, []byte("not a zip"))
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	_, err = ExtractText(Kind("rtf"), []byte("{\\rtf1}"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestParseResumeText(t *testing.T) {
	got, err := ParseResumeText("cv.txt", "", []byte("Python developer"))
	require.NoError(t, err)
	assert.Equal(t, "Python developer", got)

	_, err = ParseResumeText("cv.odt", "application/vnd.oasis.opendocument.text", []byte("x"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace(" a \t b \n\n \n c "))
}

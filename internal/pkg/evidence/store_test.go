package evidence

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart header the way an HTTP request would.
func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file_upload"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file_upload"][0]
}

func newTestStore(t *testing.T, max int64) *Store {
	s := NewStore(t.TempDir(), max)
	s.now = func() time.Time { return time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestValidate(t *testing.T) {
	s := newTestStore(t, 16)

	tests := []struct {
		name        string
		file        string
		contentType string
		size        int
		want        error
	}{
		{"pdf", "statement.pdf", "application/pdf", 10, nil},
		{"docx upper case", "STATEMENT.DOCX", "application/octet-stream", 10, nil},
		{"jpeg", "photo.jpg", "image/jpeg", 10, nil},
		{"other image type", "scan.tiff", "image/tiff", 10, nil},
		{"executable", "run.exe", "application/octet-stream", 10, ErrUnsupportedType},
		{"html sent as image", "page.html", "image/png", 10, ErrUnsupportedType},
		{"no extension sent as image", "photo", "image/jpeg", 10, ErrUnsupportedType},
		{"too large", "photo.png", "image/png", 17, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := fileHeader(t, tt.file, tt.contentType, bytes.Repeat([]byte("x"), tt.size))
			assert.Equal(t, tt.want, s.Validate(fh))
		})
	}
}

func TestSaveUsesDatedDirectoryAndRandomName(t *testing.T) {
	s := newTestStore(t, 1024)

	rel, err := s.Save(fileHeader(t, "my name.pdf", "application/pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "reports/2026/02/14/"), rel)
	assert.True(t, strings.HasSuffix(rel, ".pdf"), rel)
	assert.NotContains(t, rel, "my name")

	full, err := s.Path(rel)
	require.NoError(t, err)
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestPathRejectsTraversal(t *testing.T) {
	s := newTestStore(t, 1024)
	outside := filepath.Join(filepath.Dir(s.root), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	_, err := s.Path("../secret.txt")
	assert.Error(t, err)

	_, err = s.Path("reports/missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemove(t *testing.T) {
	s := newTestStore(t, 1024)
	rel, err := s.Save(fileHeader(t, "a.png", "image/png", []byte("png")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(rel))
	_, err = s.Path(rel)
	assert.ErrorIs(t, err, ErrNotFound)
}

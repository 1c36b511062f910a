package evidence

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("File too large (max 10MB)")
	ErrUnsupportedType = errors.New("Unsupported file type. Allowed: images, PDF, DOC, DOCX")
	ErrNotFound        = errors.New("evidence file not found")
	ErrOutsideRoot     = errors.New("evidence path escapes upload root")
)

var documentExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".heic": true,
	".heif": true,
	".tif":  true,
	".tiff": true,
}

// Store keeps evidence files on local disk under root/reports/YYYY/MM/DD.
type Store struct {
	root     string
	maxBytes int64
	now      func() time.Time
}

func NewStore(root string, maxBytes int64) *Store {
	return &Store{root: root, maxBytes: maxBytes, now: time.Now}
}

// Validate checks size and type without touching the disk.
func (s *Store) Validate(fh *multipart.FileHeader) error {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	// the client's Content-Type is not trusted; only the extension counts
	if documentExts[ext] || imageExts[ext] {
		return nil
	}
	return ErrUnsupportedType
}

// Save writes the upload and returns its path relative to root, always
// with forward slashes. The client file name is not kept.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if err := s.Validate(fh); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	rel := path.Join("reports", s.now().Format("2006/01/02"), uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	dst := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", err
	}

	// the header size is client supplied, so the copy is capped as well
	limit := s.maxBytes
	if limit <= 0 {
		limit = fh.Size
	}
	n, err := io.Copy(out, io.LimitReader(src, limit+1))
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > limit {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return rel, nil
}

// Path resolves a stored relative path to a file on disk.
func (s *Store) Path(rel string) (string, error) {
	clean := path.Clean("/" + rel)
	full := filepath.Join(s.root, filepath.FromSlash(clean))

	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", ErrNotFound
	}
	return abs, nil
}

func (s *Store) Remove(rel string) error {
	p, err := s.Path(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		return fmt.Errorf("remove evidence: %w", err)
	}
	return nil
}

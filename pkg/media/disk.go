package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	imagesBucket = "images"
	thumbsBucket = "thumbs"

	// ThumbnailSize bounds the longest edge of generated thumbnails.
	ThumbnailSize = 256
)

// ErrEmpty is returned for zero length uploads.
var ErrEmpty = errors.New("media: empty upload")

// DiskStore keeps blobs under a local directory and serves file:// URLs.
type DiskStore struct {
	d     *diskv.Diskv
	base  string
	newID func() string
	log   *zap.Logger
}

// NewDiskStore returns a DiskStore rooted at base.
func NewDiskStore(base string, log *zap.Logger) *DiskStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DiskStore{
		d: diskv.New(diskv.Options{
			BasePath:          base,
			TempDir:           filepath.Join(base, ".tmp"),
			AdvancedTransform: blobPath,
			InverseTransform:  blobKey,
		}),
		base:  base,
		newID: uuid.NewString,
		log:   log,
	}
}

// UploadImage writes data, then a scaled PNG thumbnail when data decodes as an
// image. Undecodable data is stored without a thumbnail.
func (s *DiskStore) UploadImage(ctx context.Context, data []byte) (Upload, error) {
	if len(data) == 0 {
		return Upload{}, &Error{Phase: PhaseUpload, Err: ErrEmpty}
	}
	if err := ctx.Err(); err != nil {
		return Upload{}, &Error{Phase: PhaseUpload, Err: err}
	}

	id := s.newID()
	mt := mimetype.Detect(data)
	key := imagesBucket + "/" + id + mt.Extension()
	if err := s.d.Write(key, data); err != nil {
		return Upload{}, &Error{Phase: PhaseUpload, Err: err}
	}
	up := Upload{URL: s.url(key)}
	s.log.Debug("image stored", zap.String("key", key), zap.String("mime", mt.String()))

	if err := ctx.Err(); err != nil {
		return up, nil
	}
	thumb, err := Thumbnail(data, ThumbnailSize)
	if err != nil {
		s.log.Debug("no thumbnail", zap.String("key", key), zap.Error(err))
		return up, nil
	}
	thumbKey := thumbsBucket + "/" + id + ".png"
	if err := s.d.Write(thumbKey, thumb); err != nil {
		if eraseErr := s.d.Erase(key); eraseErr != nil {
			s.log.Warn("erase orphaned image", zap.String("key", key), zap.Error(eraseErr))
		}
		return Upload{}, &Error{Phase: PhaseThumbnail, Err: err}
	}
	thumbURL := s.url(thumbKey)
	up.ThumbnailURL = &thumbURL
	return up, nil
}

// Path resolves a URL returned by UploadImage to a file on disk.
func (s *DiskStore) Path(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("media: not a local url %q", rawURL)
	}
	return u.Path, nil
}

func (s *DiskStore) url(key string) string {
	pk := blobPath(key)
	path := filepath.Join(append([]string{s.base}, append(pk.Path, pk.FileName)...)...)
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

// Thumbnail decodes data and scales it so neither edge exceeds size, encoded as PNG.
func Thumbnail(data []byte, size int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("media: empty image")
	}
	if w > size || h > size {
		if w >= h {
			h = max(1, h*size/w)
			w = size
		} else {
			w = max(1, w*size/h)
			h = size
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blobPath(key string) *diskv.PathKey {
	bucket, name, ok := strings.Cut(key, "/")
	if !ok {
		return &diskv.PathKey{FileName: key}
	}
	return &diskv.PathKey{Path: []string{bucket}, FileName: name}
}

func blobKey(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, "/") + "/" + pk.FileName
}

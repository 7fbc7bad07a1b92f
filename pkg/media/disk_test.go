package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadImageWritesBlobAndThumbnail(t *testing.T) {
	s := NewDiskStore(t.TempDir(), nil)
	up, err := s.UploadImage(context.Background(), pngBytes(t, 1024, 512))
	require.NoError(t, err)
	require.NotNil(t, up.ThumbnailURL)
	assert.Contains(t, up.URL, "/images/")
	assert.Contains(t, up.URL, ".png")

	path, err := s.Path(*up.ThumbnailURL)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, ThumbnailSize, cfg.Width)
	assert.Equal(t, ThumbnailSize/2, cfg.Height)
}

func TestUploadImageWithoutThumbnail(t *testing.T) {
	s := NewDiskStore(t.TempDir(), nil)
	up, err := s.UploadImage(context.Background(), []byte("%PDF-1.4 not an image"))
	require.NoError(t, err)
	assert.Nil(t, up.ThumbnailURL)

	path, err := s.Path(up.URL)
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestUploadImageEmpty(t *testing.T) {
	s := NewDiskStore(t.TempDir(), nil)
	_, err := s.UploadImage(context.Background(), nil)

	var me *Error
	require.True(t, errors.As(err, &me))
	assert.Equal(t, PhaseUpload, me.Phase)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	out, err := Thumbnail(pngBytes(t, 40, 20), ThumbnailSize)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
}

package uploads

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestEncodeThumbnail(t *testing.T) {
	t.Run("TestLargeImageIsCapped", func(t *testing.T) {
		out, err := EncodeThumbnail(pngBytes(t, 400, 200))
		require.NoError(t, err)

		img := decodeDataURL(t, out)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Equal(t, 50, img.Bounds().Dy()) // สัดส่วนเดิม 2:1
	})

	t.Run("TestTallImageIsCapped", func(t *testing.T) {
		out, err := EncodeThumbnail(pngBytes(t, 50, 500))
		require.NoError(t, err)

		img := decodeDataURL(t, out)
		assert.Equal(t, 10, img.Bounds().Dx())
		assert.Equal(t, 100, img.Bounds().Dy())
	})

	t.Run("TestSmallImageKeepsSize", func(t *testing.T) {
		out, err := EncodeThumbnail(pngBytes(t, 40, 60))
		require.NoError(t, err)

		img := decodeDataURL(t, out)
		assert.Equal(t, 40, img.Bounds().Dx())
		assert.Equal(t, 60, img.Bounds().Dy())
	})

	t.Run("TestGarbageInputFails", func(t *testing.T) {
		_, err := EncodeThumbnail([]byte("not an image"))
		assert.Error(t, err)
	})
}

func TestEncodeThumbnailOrPlaceholder(t *testing.T) {
	t.Run("TestUploadedFileWins", func(t *testing.T) {
		out, err := EncodeThumbnailOrPlaceholder(pngBytes(t, 20, 20))
		require.NoError(t, err)

		img := decodeDataURL(t, out)
		assert.Equal(t, 20, img.Bounds().Dx())
	})

	t.Run("TestMissingFileFallsBackToFlat", func(t *testing.T) {
		t.Setenv("PLACEHOLDER_PATH", "/nonexistent/placeholder.png")

		out, err := EncodeThumbnailOrPlaceholder(nil)
		require.NoError(t, err)

		img := decodeDataURL(t, out)
		assert.Equal(t, MaxThumbWidth, img.Bounds().Dx())
		assert.Equal(t, MaxThumbHeight, img.Bounds().Dy())
	})
}

package sequence

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
		img.SetNRGBA(1, 1, color.NRGBA{uint8(40 * i), 128, 255, 255})
		frames[i] = Frame{Index: i, TimeMS: float64(i) * 100, Angle: float64(i) / 10, Image: img}
	}
	return frames
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"webp", "tga", "webp-anim"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "frame_0007.webp", FileName(7, FormatWebP))
	assert.Equal(t, "frame_0123.tga", FileName(123, FormatTGA))
}

func TestRunWritesWebPFrames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	frames := testFrames(5)
	results := Run(Config{OutputDir: dir, Format: FormatWebP, Workers: 3}, frames)
	require.Len(t, results, 5)

	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Index)

		f, err := os.Open(r.Path)
		require.NoError(t, err)
		img, err := nativewebp.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, frames[i].Image.Bounds(), img.Bounds())
		gotR, _, _, _ := img.At(1, 1).RGBA()
		assert.Equal(t, uint32(40*i), gotR>>8)
	}
}

func TestRunWritesTGAFrames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	results := Run(Config{OutputDir: dir, Format: FormatTGA, Workers: 2}, testFrames(2))
	for _, r := range results {
		require.True(t, r.Success, r.Error)
		data, err := os.ReadFile(r.Path)
		require.NoError(t, err)
		img, err := tga.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 8, img.Bounds().Dx())
	}
}

func TestRunReportsMissingImage(t *testing.T) {
	t.Parallel()

	results := Run(Config{OutputDir: t.TempDir(), Format: FormatWebP}, []Frame{{Index: 0}})
	assert.False(t, results[0].Success)
	assert.Equal(t, "no image", results[0].Error)
}

func TestWriteAnimation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := WriteAnimation(Config{OutputDir: dir, FrameMS: 33.3}, testFrames(3))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, AnimationName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data[:4])
	assert.Equal(t, []byte("WEBP"), data[8:12])

	_, err = WriteAnimation(Config{OutputDir: dir}, nil)
	assert.Error(t, err)
}

func TestManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	m := NewManifest(FormatWebP, testFrames(2))
	require.NoError(t, WriteManifest(path, m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 8, got.Width)
	assert.Equal(t, 6, got.Height)
	assert.Empty(t, got.Animation)
	require.Len(t, got.Frames, 2)
	assert.Equal(t, "frame_0001.webp", got.Frames[1].Image)
	assert.Equal(t, 100.0, got.Frames[1].TimeMS)

	anim := NewManifest(FormatAnimatedWebP, testFrames(1))
	assert.Equal(t, AnimationName, anim.Animation)
	assert.Empty(t, anim.Frames[0].Image)
}

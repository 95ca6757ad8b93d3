package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/blurview"
)

func TestLoadScene(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Frames)
	assert.Equal(t, "root", s.Root.Name)
	assert.Equal(t, [4]int{0, 0, 480, 320}, s.Root.Rect)
	require.Len(t, s.Root.Children, 4)

	glass := s.Root.Children[1]
	require.NotNil(t, glass.Blur)
	assert.Equal(t, "gaussian", glass.Blur.Primitive)
	assert.Equal(t, 8.0, glass.Blur.ScaleFactor)
	assert.Equal(t, 16, glass.Blur.Alignment)

	badge := s.Root.Children[2]
	require.NotNil(t, badge.Blur)
	assert.Equal(t, 16*time.Millisecond, badge.Blur.MinInterval)
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := ParseScene([]byte("root:\n  name: r\n  rect: [0, 0, 10, 10]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Frames)
	assert.Equal(t, "#000", s.Background)
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no root", "frames: 2\n"},
		{"malformed", "root: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	b, err := s.Build()
	require.NoError(t, err)
	defer b.destroy()

	require.Len(t, b.blurs, 3)
	assert.Equal(t, 3, b.loop.Listeners())
	assert.Equal(t, blurview.Size{Width: 32, Height: 20, ScaleFactor: 8}, b.blurs[0].BufferSize())

	for i := 0; i < s.Frames; i++ {
		_, err := b.loop.Frame()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, b.loop.Frames())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unknown primitive",
			yaml: "root:\n  name: r\n  rect: [0, 0, 64, 64]\n  children:\n    - name: g\n      rect: [0, 0, 32, 32]\n      blur:\n        primitive: lens\n",
			want: errUnknownPrimitive,
		},
		{
			name: "buffer budget",
			yaml: "root:\n  name: r\n  rect: [0, 0, 64, 64]\n  children:\n    - name: g\n      rect: [0, 0, 64, 64]\n      blur:\n        scale: 1\n        max_pixels: 16\n",
			want: blurview.ErrAllocation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScene([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = s.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildBadColor(t *testing.T) {
	s, err := ParseScene([]byte("root:\n  name: r\n  rect: [0, 0, 8, 8]\n  fill: \"#zz\"\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, run(s, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 320, img.Bounds().Dy())
}

func TestBuildMaterial(t *testing.T) {
	s, err := LoadScene(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)

	b, err := s.Build()
	require.NoError(t, err)
	defer b.destroy()

	require.Len(t, b.blurs, 3)
	bar := b.blurs[2]
	m := blurview.Material{Thickness: blurview.ThicknessChrome, Variant: blurview.VariantDynamic}
	assert.Equal(t, 15.0, bar.Params().ScaleFactor)
	assert.Equal(t, m.OverlayColor(true), bar.Params().OverlayColor)
}

func TestBuildUnknownMaterial(t *testing.T) {
	s, err := ParseScene([]byte("root:\n  name: r\n  rect: [0, 0, 64, 64]\n  children:\n    - name: g\n      rect: [0, 0, 32, 32]\n      blur:\n        material: frosted\n"))
	require.NoError(t, err)
	_, err = s.Build()
	assert.ErrorIs(t, err, blurview.ErrUnknownMaterial)
}

package cmd

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/coreman2200/funtimes-sevenseg/config"
	"github.com/coreman2200/funtimes-sevenseg/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frames struct {
	got [][segment.Count]bool
}

func (f *frames) String() string          { return "frames" }
func (f *frames) Halt() error             { return nil }
func (f *frames) ColorModel() color.Model { return color.NRGBAModel }
func (f *frames) Bounds() image.Rectangle { return image.Rect(0, 0, segment.Count, 1) }

func (f *frames) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var lit [segment.Count]bool
	for x := 0; x < segment.Count; x++ {
		c := color.NRGBAModel.Convert(src.At(x, 0)).(color.NRGBA)
		lit[x] = c.R == 255
	}
	f.got = append(f.got, lit)
	return nil
}

// pattern folds the last frame back into a figure byte.
func (f *frames) pattern(t *testing.T) byte {
	require.NotEmpty(t, f.got)
	var p byte
	for i, on := range f.got[len(f.got)-1] {
		if on {
			p |= 1 << i
		}
	}
	return p
}

func execute(t *testing.T, args ...string) (*frames, error) {
	t.Helper()
	f := &frames{}
	drawer = f
	t.Cleanup(func() { drawer = nil })

	cfg := filepath.Join(t.TempDir(), "sevenseg.yaml")
	c := config.Default()
	c.IntervalMs = 1
	require.NoError(t, config.Save(cfg, c))

	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs(append([]string{"--config", cfg, "--driver", "sim"}, args...))
	return f, Root.Execute()
}

func TestDigitCommand(t *testing.T) {
	f, err := execute(t, "digit", "5", "--dp")
	require.NoError(t, err)
	assert.Equal(t, byte(0b11101101), f.pattern(t))
}

func TestByteCommand(t *testing.T) {
	for _, in := range []string{"0b01110111", "0x77", "119"} {
		f, err := execute(t, "byte", in)
		require.NoError(t, err, in)
		assert.Equal(t, byte(0b01110111), f.pattern(t), in)
	}
}

func TestClearCommand(t *testing.T) {
	f, err := execute(t, "clear")
	require.NoError(t, err)
	assert.Zero(t, f.pattern(t))
}

func TestCountCommand(t *testing.T) {
	f, err := execute(t, "count", "--steps", "12")
	require.NoError(t, err)
	require.Len(t, f.got, 12)

	var first [segment.Count]bool
	for i := range first {
		first[i] = segment.DigitPattern(0)&(1<<i) != 0
	}
	assert.Equal(t, first, f.got[0])
	assert.Equal(t, f.got[0], f.got[10], "wraps after 9")
}

func TestSegmentsCommand(t *testing.T) {
	f, err := execute(t, "segments", "--steps", "8")
	require.NoError(t, err)
	require.Len(t, f.got, segment.Count)
	for i, frame := range f.got {
		for j, on := range frame {
			assert.Equal(t, i == j, on, "step %d segment %d", i, j)
		}
	}
}

func TestBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{"digit", "10"},
		{"digit", "x"},
		{"byte", "256"},
		{"byte", "0xZZ"},
		{"digit"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestMissingConfigUsesDefaults(t *testing.T) {
	drawer = &frames{}
	defer func() { drawer = nil }()

	Root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--driver", "sim", "clear"})
	assert.NoError(t, Root.Execute())
}

func TestBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("driver: [sim"), 0644))
	Root.SetArgs([]string{"--config", path, "clear"})
	assert.Error(t, Root.Execute())
}

func TestParseDigit(t *testing.T) {
	for i := 0; i <= 9; i++ {
		d, err := ParseDigit(string(rune('0' + i)))
		require.NoError(t, err)
		assert.Equal(t, uint8(i), d)
	}
}

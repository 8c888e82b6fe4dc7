// Package glyph turns rendered text into the pixel coordinates that particles assemble into
package glyph

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/vmath"
)

// ErrFont is returned when the embedded face cannot be parsed
var ErrFont = errors.New("glyph: font unavailable")

var embedded struct {
	once sync.Once
	font *opentype.Font
	err  error
}

func loadFont() (*opentype.Font, error) {
	embedded.once.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			embedded.err = fmt.Errorf("%w: %v", ErrFont, err)
			return
		}
		embedded.font = f
	})
	return embedded.font, embedded.err
}

// Sampler rasterizes text on an offscreen alpha bitmap the size of the surface
// Not safe for concurrent use; faces are cached per integer pixel size
type Sampler struct {
	width, height int
	font          *opentype.Font
	faces         map[int]font.Face
}

// NewSampler creates a sampler for a surface of the given size
func NewSampler(width, height int) (*Sampler, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}
	return &Sampler{
		width:  max(width, 0),
		height: max(height, 0),
		font:   f,
		faces:  make(map[int]font.Face),
	}, nil
}

// Resize changes the bitmap dimensions used by subsequent samples
func (s *Sampler) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
}

// Size returns the bitmap dimensions
func (s *Sampler) Size() (int, int) {
	return s.width, s.height
}

// face returns the cached face for floor(fontSize) pixels
func (s *Sampler) face(fontSize float64) (font.Face, error) {
	px := max(int(math.Floor(fontSize)), 1)
	if f, ok := s.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: face %dpx: %w", px, err)
	}
	s.faces[px] = f
	return f, nil
}

// Measure returns the rendered advance width of text in pixels
func (s *Sampler) Measure(text string, fontSize float64) float64 {
	f, err := s.face(fontSize)
	if err != nil {
		return 0
	}
	return toFloat(font.MeasureString(f, text))
}

// Lines wraps text to maxWidthFraction of the surface width
func (s *Sampler) Lines(text string, fontSize, maxWidthFraction float64) []string {
	budget := float64(s.width) * maxWidthFraction
	return Wrap(text, budget, func(line string) float64 {
		return s.Measure(line, fontSize)
	})
}

// Sample renders text centered on the surface width with the line block centered on anchorY
// and returns every stride-aligned pixel whose alpha exceeds the threshold
func (s *Sampler) Sample(text string, anchorY, fontSize, maxWidthFraction float64, stride int) []vmath.Point {
	if stride < 1 {
		stride = 1
	}
	lines := s.Lines(text, fontSize, maxWidthFraction)
	if len(lines) == 0 || s.width == 0 || s.height == 0 {
		return nil
	}
	f, err := s.face(fontSize)
	if err != nil {
		return nil
	}

	img := image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: f}

	// Baseline "middle": the vertical center of ascent+descent sits on the line center
	m := f.Metrics()
	middle := (toFloat(m.Ascent) - toFloat(m.Descent)) / 2

	lineHeight := fontSize * parameter.LineHeightFactor
	blockHeight := float64(len(lines)) * lineHeight
	y := anchorY - blockHeight/2 + lineHeight/2
	centerX := float64(s.width) / 2

	for _, line := range lines {
		adv := toFloat(d.MeasureString(line))
		d.Dot = fixed.Point26_6{
			X: toFixed(centerX - adv/2),
			Y: toFixed(y + middle),
		}
		d.DrawString(line)
		y += lineHeight
	}

	// Rows outside the block (plus one em of slack) are empty, skip them on the stride grid
	top := anchorY - blockHeight/2 - fontSize
	bottom := anchorY + blockHeight/2 + fontSize
	y0 := 0
	if top > 0 {
		y0 = int(top) / stride * stride
	}
	y1 := s.height
	if bottom < float64(s.height) {
		y1 = int(bottom) + 1
	}

	points := make([]vmath.Point, 0, 256)
	for py := y0; py < y1; py += stride {
		row := img.Pix[py*img.Stride:]
		for px := 0; px < s.width; px += stride {
			if row[px] > parameter.AlphaThreshold {
				points = append(points, vmath.Point{X: float64(px), Y: float64(py)})
			}
		}
	}
	return points
}

// Close releases cached faces
func (s *Sampler) Close() error {
	var errs []error
	for px, f := range s.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.faces, px)
	}
	return errors.Join(errs...)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

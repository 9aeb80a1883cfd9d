package photo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	// DefaultSynthSeed keeps generated placeholders stable across runs.
	DefaultSynthSeed = 20260210
	// DefaultQuality is the JPEG quality of generated placeholders.
	DefaultQuality = 88
)

// Synthesizer renders placeholder photos locally. The output is a pure
// function of the seed.
type Synthesizer struct {
	Quality int
	Logger  *zap.Logger
}

// NewSynthesizer creates a Synthesizer with the default JPEG quality.
func NewSynthesizer(logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Synthesizer{Quality: DefaultQuality, Logger: logger}
}

// Generate renders every planned photo into outDir and returns the
// written paths in plan order. A master generator seeded with seed draws
// one seed per image.
func (s *Synthesizer) Generate(ctx context.Context, outDir string, seed int64, plan Plan) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	master := newRand(seed)

	var written []string

	for _, it := range plan.Items() {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		dest := filepath.Join(outDir, it.FileName())
		img := Render(it.Width, it.Height, master.Int64N(math.MaxInt32))

		if err := s.writeJPEG(dest, img); err != nil {
			return written, err
		}

		written = append(written, dest)
		s.Logger.Debug("photo generated", zap.String("dest", dest), zap.Int("width", it.Width), zap.Int("height", it.Height))
	}

	return written, nil
}

func (s *Synthesizer) writeJPEG(dest string, img image.Image) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	quality := s.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", dest, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dest, err)
	}

	return nil
}

// Render draws one placeholder: a two-colour vertical gradient, a handful
// of translucent circles and rectangles, light noise, then a mild
// contrast and saturation boost.
func Render(w, h int, seed int64) *image.RGBA {
	rnd := newRand(seed)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	drawGradient(img, randColor(rnd, 30, 225), randColor(rnd, 30, 225))
	drawShapes(img, rnd)
	addNoise(img, rnd, 6+rnd.Float64()*8)
	adjust(img, 1.05+rnd.Float64()*0.17, 1.05+rnd.Float64()*0.20)

	return img
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func randInt(rnd *rand.Rand, lo, hi int) int {
	return lo + rnd.IntN(hi-lo+1)
}

func randColor(rnd *rand.Rand, lo, hi int) color.RGBA {
	return color.RGBA{
		R: uint8(randInt(rnd, lo, hi)),
		G: uint8(randInt(rnd, lo, hi)),
		B: uint8(randInt(rnd, lo, hi)),
		A: 0xff,
	}
}

func drawGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	span := float64(max(b.Dy()-1, 1))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / span
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xff,
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawShapes(img *image.RGBA, rnd *rand.Rand) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	for range randInt(rnd, 6, 14) {
		circle := rnd.IntN(2) == 0
		x1 := randInt(rnd, -w/6, w)
		y1 := randInt(rnd, -h/6, h)
		x2 := x1 + randInt(rnd, w/8, w/2)
		y2 := y1 + randInt(rnd, h/8, h/2)
		fill := randColor(rnd, 0, 255)
		alpha := float64(randInt(rnd, 30, 90)) / 255

		r := image.Rect(x1, y1, x2, y2).Intersect(img.Bounds())
		cx, cy := float64(x1+x2)/2, float64(y1+y2)/2
		rx, ry := math.Max(float64(x2-x1)/2, 1), math.Max(float64(y2-y1)/2, 1)

		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if circle {
					dx, dy := (float64(x)+0.5-cx)/rx, (float64(y)+0.5-cy)/ry
					if dx*dx+dy*dy > 1 {
						continue
					}
				}

				blend(img, x, y, fill, alpha)
			}
		}
	}
}

func addNoise(img *image.RGBA, rnd *rand.Rand, sigma float64) {
	b := img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := clamp(128 + rnd.NormFloat64()*sigma)
			blend(img, x, y, color.RGBA{R: v, G: v, B: v, A: 0xff}, float64(v)*0.08/255)
		}
	}
}

// adjust applies contrast around the mean luminance followed by a
// saturation change around each pixel's own luminance.
func adjust(img *image.RGBA, contrast, saturation float64) {
	b := img.Bounds()

	var sum float64

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += luma(img.RGBAAt(x, y))
		}
	}

	mean := sum / float64(max(b.Dx()*b.Dy(), 1))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r := mean + (float64(c.R)-mean)*contrast
			g := mean + (float64(c.G)-mean)*contrast
			bl := mean + (float64(c.B)-mean)*contrast

			l := 0.299*r + 0.587*g + 0.114*bl
			img.SetRGBA(x, y, color.RGBA{
				R: clamp(l + (r-l)*saturation),
				G: clamp(l + (g-l)*saturation),
				B: clamp(l + (bl-l)*saturation),
				A: 0xff,
			})
		}
	}
}

func blend(img *image.RGBA, x, y int, c color.RGBA, alpha float64) {
	dst := img.RGBAAt(x, y)
	img.SetRGBA(x, y, color.RGBA{
		R: clamp(float64(dst.R)*(1-alpha) + float64(c.R)*alpha),
		G: clamp(float64(dst.G)*(1-alpha) + float64(c.G)*alpha),
		B: clamp(float64(dst.B)*(1-alpha) + float64(c.B)*alpha),
		A: 0xff,
	})
}

func luma(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func lerp(a, b uint8, t float64) uint8 {
	return clamp(float64(a) + (float64(b)-float64(a))*t)
}

func clamp(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

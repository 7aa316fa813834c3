package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/SeamusWaldron/cubevision"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func meanLuma(img *image.RGBA) float64 {
	bounds := img.Bounds()
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy())
}

func TestNormalizeProducesContractSize(t *testing.T) {
	inputs := []*image.RGBA{
		uniformImage(1024, 768, color.RGBA{120, 120, 120, 255}),
		uniformImage(300, 300, color.RGBA{120, 120, 120, 255}),
		uniformImage(cubevision.FaceImageSize, cubevision.FaceImageSize, color.RGBA{120, 120, 120, 255}),
	}
	for i, in := range inputs {
		out := Normalize(in)
		if out.Bounds().Dx() != cubevision.FaceImageSize || out.Bounds().Dy() != cubevision.FaceImageSize {
			t.Errorf("input %d: normalized to %v, want %dx%d square",
				i, out.Bounds(), cubevision.FaceImageSize, cubevision.FaceImageSize)
		}
	}
}

func TestResizeScalesDown(t *testing.T) {
	out := Resize(uniformImage(1200, 900, color.RGBA{50, 100, 150, 255}), 600)
	if got := out.Bounds(); got.Dx() != 600 || got.Dy() != 600 {
		t.Fatalf("resized bounds %v, want 600x600", got)
	}
	r, g, b, _ := out.At(300, 300).RGBA()
	if r>>8 != 50 || g>>8 != 100 || b>>8 != 150 {
		t.Errorf("uniform image changed color during resize: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestWhiteBalanceNeutralizesColorCast(t *testing.T) {
	// A warm cast: red channel pushed well above the others.
	in := uniformImage(100, 100, color.RGBA{180, 120, 90, 255})

	out := WhiteBalance(in)

	r, g, b, _ := out.At(50, 50).RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)
	if r8-b8 > 2 || r8-g8 > 2 || g8-b8 > 2 {
		t.Errorf("channels still diverge after white balance: %d %d %d", r8, g8, b8)
	}
}

func TestWhiteBalanceKeepsGrayImage(t *testing.T) {
	in := uniformImage(100, 100, color.RGBA{128, 128, 128, 255})
	out := WhiteBalance(in)
	r, g, b, _ := out.At(10, 10).RGBA()
	if r>>8 != 128 || g>>8 != 128 || b>>8 != 128 {
		t.Errorf("gray image changed: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestBrightenLiftsDarkImages(t *testing.T) {
	dark := uniformImage(100, 100, color.RGBA{30, 30, 30, 255})
	bright := uniformImage(100, 100, color.RGBA{200, 200, 200, 255})

	darkBoost := meanLuma(Brighten(dark, 40)) - meanLuma(dark)
	brightBoost := meanLuma(Brighten(bright, 40)) - meanLuma(bright)

	if darkBoost <= brightBoost {
		t.Errorf("dark boost %.1f should exceed bright boost %.1f", darkBoost, brightBoost)
	}
	if darkBoost < 40 {
		t.Errorf("dark image boosted by only %.1f", darkBoost)
	}
}

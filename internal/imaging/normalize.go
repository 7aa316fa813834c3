// Package imaging prepares raw face photographs for the sampler:
// normalization to the contract size, gray-world white balance, and
// adaptive brightening. The sampler itself never touches raw images.
package imaging

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/SeamusWaldron/cubevision"
)

// Normalize produces a face image satisfying the sampler's contract:
// resized to FaceImageSize square, white-balanced, and brightened.
func Normalize(img image.Image) *image.RGBA {
	return Brighten(WhiteBalance(Resize(img, cubevision.FaceImageSize)), 40)
}

// Resize scales an image to size x size with bilinear interpolation.
func Resize(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WhiteBalance applies a gray-world correction: scale each channel so
// the channel means converge on their common gray level. Cube photos
// taken under warm indoor light otherwise push white stickers toward
// yellow and break range classification.
func WhiteBalance(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	var sumR, sumG, sumB float64
	n := float64(bounds.Dx() * bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}
	meanR, meanG, meanB := sumR/n, sumG/n, sumB/n
	gray := (meanR + meanG + meanB) / 3
	if meanR == 0 || meanG == 0 || meanB == 0 {
		copyInto(dst, img)
		return dst
	}
	scaleR, scaleG, scaleB := gray/meanR, gray/meanG, gray/meanB

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			i := dst.PixOffset(x-bounds.Min.X, y-bounds.Min.Y)
			dst.Pix[i+0] = clampByte(float64(r>>8) * scaleR)
			dst.Pix[i+1] = clampByte(float64(g>>8) * scaleG)
			dst.Pix[i+2] = clampByte(float64(b>>8) * scaleB)
			dst.Pix[i+3] = uint8(a >> 8)
		}
	}
	return dst
}

// Brighten lifts dark images adaptively: the darker the average value,
// the larger the boost, so dim captures still clear the classifier's
// low-light threshold without blowing out well-lit ones.
func Brighten(img image.Image, base float64) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	var sum float64
	n := float64(bounds.Dx() * bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	avg := sum / n

	adjustment := base * 0.5
	if avg < 100 {
		adjustment = base + (100-avg)*0.5
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			i := dst.PixOffset(x-bounds.Min.X, y-bounds.Min.Y)
			dst.Pix[i+0] = clampByte(float64(r>>8) + adjustment)
			dst.Pix[i+1] = clampByte(float64(g>>8) + adjustment)
			dst.Pix[i+2] = clampByte(float64(b>>8) + adjustment)
			dst.Pix[i+3] = uint8(a >> 8)
		}
	}
	return dst
}

func copyInto(dst *image.RGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

package cubevision

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// Face image contract: an upstream collaborator delivers each face as a
// normalized (cropped, white-balanced, brightness-adjusted) square image
// of exactly FaceImageSize pixels per side. The sampler reads a small
// patch at the center of each cell of the 3x3 sticker grid.
const (
	FaceImageSize = 600
	gridCells     = 3
	cellSize      = FaceImageSize / gridCells
	patchSize     = 40
)

// uniformSpread is the per-channel standard deviation (in [0,1] channel
// units) under which a patch is considered uniform enough to skip
// clustering. Cube stickers photographed head-on are usually this flat.
const uniformSpread = 0.04

// SampleFace extracts nine ColorSamples from one normalized face image,
// row-major. A buffer that violates the size contract is a programming
// error at the boundary and returns ErrBadFaceImage; it is never a
// validation report entry.
func SampleFace(img image.Image) ([9]ColorSample, error) {
	var samples [9]ColorSample
	bounds := img.Bounds()
	if bounds.Dx() != FaceImageSize || bounds.Dy() != FaceImageSize {
		return samples, ErrBadFaceImage
	}

	for row := 0; row < gridCells; row++ {
		for col := 0; col < gridCells; col++ {
			cx := bounds.Min.X + col*cellSize + cellSize/2
			cy := bounds.Min.Y + row*cellSize + cellSize/2
			samples[row*gridCells+col] = samplePatch(img, cx, cy)
		}
	}
	return samples, nil
}

// samplePatch reads the patchSize x patchSize block centered at (cx, cy)
// and reduces it to one ColorSample.
func samplePatch(img image.Image, cx, cy int) ColorSample {
	half := patchSize / 2
	pixels := make([][3]float64, 0, patchSize*patchSize)
	for y := cy - half; y < cy+half; y++ {
		for x := cx - half; x < cx+half; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, [3]float64{
				float64(r>>8) / 255,
				float64(g>>8) / 255,
				float64(b>>8) / 255,
			})
		}
	}

	dominant := dominantColor(pixels)
	mean := colorful.Color{R: dominant[0], G: dominant[1], B: dominant[2]}
	h, s, v := mean.Hsv()

	return ColorSample{
		Hue:        h,
		Saturation: s,
		Value:      v,
		Mean:       mean,
		Uniformity: patchUniformity(pixels),
	}
}

// dominantColor reduces a pixel block to its dominant color. Uniform
// patches use the plain mean; noisy patches (sticker edge, glare spot)
// are split with 2-means clustering and the heavier cluster wins.
func dominantColor(pixels [][3]float64) [3]float64 {
	mean := channelMeans(pixels)

	var spread float64
	for ch := 0; ch < 3; ch++ {
		spread += stat.StdDev(channel(pixels, ch), nil)
	}
	if spread/3 < uniformSpread {
		return mean
	}
	return twoMeansDominant(pixels)
}

// twoMeansDominant runs a small deterministic 2-means over the patch
// pixels, seeded with the darkest and brightest pixels, and returns the
// center of the larger cluster.
func twoMeansDominant(pixels [][3]float64) [3]float64 {
	darkest, brightest := 0, 0
	for i, p := range pixels {
		if luma(p) < luma(pixels[darkest]) {
			darkest = i
		}
		if luma(p) > luma(pixels[brightest]) {
			brightest = i
		}
	}
	centroids := [2][3]float64{pixels[darkest], pixels[brightest]}

	assign := make([]int, len(pixels))
	for iter := 0; iter < 50; iter++ {
		changed := false
		for i, p := range pixels {
			k := 0
			if sqDist(p, centroids[1]) < sqDist(p, centroids[0]) {
				k = 1
			}
			if assign[i] != k {
				assign[i] = k
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		var sums [2][3]float64
		var counts [2]int
		for i, p := range pixels {
			k := assign[i]
			counts[k]++
			for ch := 0; ch < 3; ch++ {
				sums[k][ch] += p[ch]
			}
		}
		for k := 0; k < 2; k++ {
			if counts[k] == 0 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				centroids[k][ch] = sums[k][ch] / float64(counts[k])
			}
		}
	}

	var counts [2]int
	for _, k := range assign {
		counts[k]++
	}
	if counts[1] > counts[0] {
		return centroids[1]
	}
	return centroids[0]
}

// patchUniformity scores pixel consistency from the HSV channel standard
// deviations, weighting hue heaviest since hue drives classification.
func patchUniformity(pixels [][3]float64) float64 {
	hs := make([]float64, len(pixels))
	ss := make([]float64, len(pixels))
	vs := make([]float64, len(pixels))
	for i, p := range pixels {
		h, s, v := (colorful.Color{R: p[0], G: p[1], B: p[2]}).Hsv()
		hs[i], ss[i], vs[i] = h, s, v
	}

	hConf := math.Max(0, 1-stat.StdDev(hs, nil)/60)
	sConf := math.Max(0, 1-stat.StdDev(ss, nil)/0.2)
	vConf := math.Max(0, 1-stat.StdDev(vs, nil)/0.2)
	return hConf*0.5 + sConf*0.25 + vConf*0.25
}

func channelMeans(pixels [][3]float64) [3]float64 {
	var out [3]float64
	for ch := 0; ch < 3; ch++ {
		out[ch] = stat.Mean(channel(pixels, ch), nil)
	}
	return out
}

func channel(pixels [][3]float64, ch int) []float64 {
	out := make([]float64, len(pixels))
	for i, p := range pixels {
		out[i] = p[ch]
	}
	return out
}

func luma(p [3]float64) float64 {
	return 0.299*p[0] + 0.587*p[1] + 0.114*p[2]
}

func sqDist(a, b [3]float64) float64 {
	var d float64
	for ch := 0; ch < 3; ch++ {
		diff := a[ch] - b[ch]
		d += diff * diff
	}
	return d
}

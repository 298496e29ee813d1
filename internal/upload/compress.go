package upload

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Compress decodes an image, downscales it so the longest edge fits maxEdge,
// and re-encodes as JPEG, stepping the quality down until the result fits
// maxBytes.
func Compress(data []byte, maxEdge, maxBytes int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = scaleDown(img, maxEdge)

	const minQuality = 30
	for quality := 85; ; quality -= 15 {
		if quality < minQuality {
			quality = minQuality
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		// best effort: the lowest-quality encoding is returned even over budget
		if buf.Len() <= maxBytes || quality == minQuality {
			return buf.Bytes(), nil
		}
	}
}

func scaleDown(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

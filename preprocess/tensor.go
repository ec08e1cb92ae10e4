package preprocess

import (
	"image"

	"github.com/nfnt/resize"
)

// ImageToTensor resizes the image directly to the model input dimensions
// and returns the NHWC float32 input tensor with RGB values normalised to
// [0,1].  This is the pure Go path for callers not using GoCV Mats, the
// direct resize matches the geometry assumed by ScaleMapper.
func ImageToTensor(img image.Image, inputWidth, inputHeight int) []float32 {

	resized := resize.Resize(uint(inputWidth), uint(inputHeight), img,
		resize.Bilinear)

	buf := make([]float32, inputWidth*inputHeight*3)
	idx := 0

	for y := 0; y < inputHeight; y++ {
		for x := 0; x < inputWidth; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()

			// channel values are 16 bit, take the high byte
			buf[idx] = float32(r>>8) / 255.0
			buf[idx+1] = float32(g>>8) / 255.0
			buf[idx+2] = float32(b>>8) / 255.0
			idx += 3
		}
	}

	return buf
}

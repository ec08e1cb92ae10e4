package preprocess

import (
	"github.com/edgevision/go-detpost/postprocess"
)

// Mapper rescales a rect from model input space into source image space
type Mapper interface {
	MapRect(r postprocess.Rect) postprocess.Rect
}

// MapDetections rewrites the bounding box of each detection into source
// image space using the given mapper.  Confidence ordering is unaffected.
func MapDetections(m Mapper, dets []postprocess.DetectResult) {
	for i := range dets {
		dets[i].Box = m.MapRect(dets[i].Box)
	}
}

// ScaleMapper maps rects from model input space (eg: 416x416) into source
// image space by independent axis scaling with no translation.  This
// assumes preprocessing resized the image directly to the model input
// dimensions.  If preprocessing instead cropped before resizing, the
// mapping is geometrically incorrect for the cropped region and a
// LetterboxMapper or crop aware transform is needed.
//
// Boxes are not clipped to the image bounds, a mapped rect may exceed the
// image extents when the network produced one that does.
type ScaleMapper struct {
	scaleX float32
	scaleY float32
}

// NewScaleMapper returns a mapper from the model input dimensions to the
// source image dimensions
func NewScaleMapper(inputWidth, inputHeight, imageWidth, imageHeight int) *ScaleMapper {
	return &ScaleMapper{
		scaleX: float32(imageWidth) / float32(inputWidth),
		scaleY: float32(imageHeight) / float32(inputHeight),
	}
}

// MapRect scales the rect into source image space
func (m *ScaleMapper) MapRect(r postprocess.Rect) postprocess.Rect {
	return r.ScaledBy(m.scaleX, m.scaleY)
}

// LetterboxMapper inverts a letterbox resize, removing the padding offset
// before dividing out the uniform scale.  Use Resizer.Mapper to obtain one
// matching a performed resize.
type LetterboxMapper struct {
	scale float32
	xPad  float32
	yPad  float32
}

// NewLetterboxMapper returns a mapper inverting a letterbox resize that
// used the given uniform scale factor and x/y padding
func NewLetterboxMapper(scale float32, xPad, yPad int) *LetterboxMapper {
	return &LetterboxMapper{
		scale: scale,
		xPad:  float32(xPad),
		yPad:  float32(yPad),
	}
}

// MapRect removes the letterbox padding and scale from the rect
func (m *LetterboxMapper) MapRect(r postprocess.Rect) postprocess.Rect {
	return postprocess.Rect{
		X: (r.X - m.xPad) / m.scale,
		Y: (r.Y - m.yPad) / m.scale,
		W: r.W / m.scale,
		H: r.H / m.scale,
	}
}

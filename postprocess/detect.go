package postprocess

import "errors"

var (
	// ErrShapeMismatch is returned when a raw output buffer's length does
	// not agree with the declared anchor count, class count, or element
	// size.  Processing fails fast with no partial results.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidClassIndex is returned when a caller supplied label store
	// is shorter than the number of classes the model was trained with
	ErrInvalidClassIndex = errors.New("invalid class index")
)

// Rect is an axis aligned bounding box.  X and Y are the box center
// coordinates with W and H the full width and height.  The coordinate space
// is whichever the rect was produced in, model input space from the decoder
// or source image space after mapping.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Left returns the left edge x coordinate of the rect
func (r Rect) Left() float32 {
	return r.X - r.W/2
}

// Right returns the right edge x coordinate of the rect
func (r Rect) Right() float32 {
	return r.X + r.W/2
}

// Top returns the top edge y coordinate of the rect
func (r Rect) Top() float32 {
	return r.Y - r.H/2
}

// Bottom returns the bottom edge y coordinate of the rect
func (r Rect) Bottom() float32 {
	return r.Y + r.H/2
}

// Area returns the area covered by the rect
func (r Rect) Area() float32 {
	return r.W * r.H
}

// ScaledBy returns the rect scaled independently on each axis with no
// translation applied
func (r Rect) ScaledBy(scaleX, scaleY float32) Rect {
	return Rect{
		X: r.X * scaleX,
		Y: r.Y * scaleY,
		W: r.W * scaleX,
		H: r.H * scaleY,
	}
}

// DetectResult defines the attributes of a single object detected
type DetectResult struct {
	// Class is the line number in the labels file the Model was trained on
	// defining the Class of the detected object
	Class int
	// Box are the bounding box dimensions of the object location
	Box Rect
	// Confidence is the winning class score of the detected object
	Confidence float32
	// ID is a unique ID assigned to the detection result
	ID int64
}

// Detector is implemented by model specific post processors that turn a
// flat output buffer into detection results
type Detector interface {
	DetectObjects(buf []float32) ([]DetectResult, error)
}

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/edgevision/go-detpost/postprocess"
	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	TopPad    int
	BottomPad int
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		TopPad:    2,
		BottomPad: 4,
	}
}

// boxLabel records the label rendering details of one detection box
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// DetectionBoxes renders the bounding boxes around the objects detected.
// Box coordinates are clamped to the image bounds at draw time only, the
// detection results themselves are left unclipped.
func DetectionBoxes(img *gocv.Mat, detectResults []postprocess.DetectResult,
	classNames []string, font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(detectResults))

	for _, det := range detectResults {

		useClr := ClassColor(det.Class)

		rect := clampRect(det.Box, img.Cols(), img.Rows())
		gocv.Rectangle(img, rect, useClr, lineThickness)

		// create text for label
		text := fmt.Sprintf("%s %.2f", classNames[det.Class], det.Confidence)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		labelPos := image.Pt(rect.Min.X+font.LeftPad, rect.Min.Y-font.BottomPad)

		// box the text gets written on
		bRect := image.Rect(rect.Min.X,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			rect.Min.X+textSize.X+2*font.LeftPad, rect.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPos,
		})
	}

	// draw all precalculated box labels last so they are the top most
	// layer on the image
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// clampRect converts a center based float rect to an integer rectangle
// clipped to the image dimensions
func clampRect(r postprocess.Rect, width, height int) image.Rectangle {
	return image.Rect(
		clampInt(int(r.Left()), 0, width),
		clampInt(int(r.Top()), 0, height),
		clampInt(int(r.Right()), 0, width),
		clampInt(int(r.Bottom()), 0, height),
	)
}

// clampInt restricts v to the range min to max
func clampInt(v, min, max int) int {

	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}

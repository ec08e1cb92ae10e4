package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/edgevision/go-detpost/postprocess"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label draws text onto the image with its baseline at pt, using the
// fixed size basicfont face
func Label(img draw.Image, text string, pt image.Point, clr color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pt.X, pt.Y),
	}
	d.DrawString(text)
}

// DetectionBoxesImage renders the bounding boxes around the objects
// detected onto a standard library image.  This is the pure Go path for
// callers not rendering through GoCV Mats.
func DetectionBoxesImage(img *image.RGBA, detectResults []postprocess.DetectResult,
	classNames []string) {

	bounds := img.Bounds()

	for _, det := range detectResults {

		useClr := ClassColor(det.Class)
		rect := clampRect(det.Box, bounds.Dx(), bounds.Dy()).Add(bounds.Min)

		outlineRect(img, rect, useClr)

		text := fmt.Sprintf("%s %.2f", classNames[det.Class], det.Confidence)
		Label(img, text, image.Pt(rect.Min.X+2, rect.Min.Y-3), useClr)
	}
}

// outlineRect draws a 1 pixel rectangle outline
func outlineRect(img *image.RGBA, rect image.Rectangle, clr color.RGBA) {

	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, rect.Min.Y, clr)
		img.SetRGBA(x, rect.Max.Y-1, clr)
	}

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetRGBA(rect.Min.X, y, clr)
		img.SetRGBA(rect.Max.X-1, y, clr)
	}
}

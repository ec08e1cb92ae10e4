package preprocess

import (
	"testing"

	"github.com/edgevision/go-detpost/postprocess"
)

// TestScaleMapper checks independent axis scaling with no translation
func TestScaleMapper(t *testing.T) {

	m := NewScaleMapper(416, 416, 832, 832)

	got := m.MapRect(postprocess.Rect{X: 100, Y: 100, W: 50, H: 50})
	want := postprocess.Rect{X: 200, Y: 200, W: 100, H: 100}

	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	// non uniform axes
	m = NewScaleMapper(416, 416, 1920, 1080)

	got = m.MapRect(postprocess.Rect{X: 208, Y: 208, W: 416, H: 416})

	if got.X != 960 || got.W != 1920 {
		t.Errorf("expected x axis scaled to 1920 space, got %+v", got)
	}

	if got.Y != 540 || got.H != 1080 {
		t.Errorf("expected y axis scaled to 1080 space, got %+v", got)
	}
}

// TestScaleMapperNoClipping verifies boxes exceeding the image extents are
// passed through unclipped
func TestScaleMapperNoClipping(t *testing.T) {

	m := NewScaleMapper(416, 416, 832, 832)

	got := m.MapRect(postprocess.Rect{X: 400, Y: 400, W: 100, H: 100})

	if got.Right() <= 832 {
		t.Fatalf("expected rect to exceed image extents, got %+v", got)
	}
}

// TestLetterboxMapper inverts a letterbox transform: a 1920x1080 image
// scaled by 416/1920 into a 416x416 input leaves 91 pixels of padding top
// and bottom
func TestLetterboxMapper(t *testing.T) {

	scale := float32(416.0 / 1920.0)
	m := NewLetterboxMapper(scale, 0, 91)

	// box covering the full letterboxed image area
	got := m.MapRect(postprocess.Rect{X: 208, Y: 208, W: 416, H: 234})

	if !nearF(got.X, 960, 0.5) || !nearF(got.W, 1920, 0.5) {
		t.Errorf("expected x axis mapped to 1920 space, got %+v", got)
	}

	if !nearF(got.Y, 540, 3) || !nearF(got.H, 1080, 3) {
		t.Errorf("expected y axis mapped to 1080 space, got %+v", got)
	}
}

// TestMapDetections rewrites boxes in place without touching order or
// confidence
func TestMapDetections(t *testing.T) {

	dets := []postprocess.DetectResult{
		{Class: 1, Confidence: 0.9, Box: postprocess.Rect{X: 100, Y: 100, W: 50, H: 50}},
		{Class: 2, Confidence: 0.8, Box: postprocess.Rect{X: 10, Y: 10, W: 5, H: 5}},
	}

	MapDetections(NewScaleMapper(416, 416, 832, 832), dets)

	if dets[0].Box.X != 200 || dets[1].Box.X != 20 {
		t.Errorf("expected boxes scaled in place, got %+v", dets)
	}

	if dets[0].Class != 1 || dets[0].Confidence != 0.9 {
		t.Errorf("expected class and confidence untouched, got %+v", dets[0])
	}
}

// nearF compares two float32 values within epsilon
func nearF(a, b, epsilon float32) bool {
	diff := a - b
	return diff < epsilon && diff > -epsilon
}

package postprocess

import (
	"testing"
)

// near compares two float32 values within epsilon
func near(a, b, epsilon float32) bool {
	diff := a - b
	return diff < epsilon && diff > -epsilon
}

// TestIoU checks the overlap calculation against hand computed values
func TestIoU(t *testing.T) {

	tests := []struct {
		name string
		a    Rect
		b    Rect
		want float32
	}{
		{
			name: "identical boxes",
			a:    Rect{X: 50, Y: 50, W: 20, H: 20},
			b:    Rect{X: 50, Y: 50, W: 20, H: 20},
			want: 1.0,
		},
		{
			name: "disjoint boxes",
			a:    Rect{X: 10, Y: 10, W: 10, H: 10},
			b:    Rect{X: 100, Y: 100, W: 10, H: 10},
			want: 0.0,
		},
		{
			name: "half horizontal overlap",
			// intersection 50, union 150
			a:    Rect{X: 5, Y: 5, W: 10, H: 10},
			b:    Rect{X: 10, Y: 5, W: 10, H: 10},
			want: 50.0 / 150.0,
		},
		{
			name: "zero area union",
			a:    Rect{X: 5, Y: 5, W: 0, H: 0},
			b:    Rect{X: 5, Y: 5, W: 0, H: 0},
			want: 0.0,
		},
		{
			name: "contained box",
			// intersection 25, union 100
			a:    Rect{X: 5, Y: 5, W: 10, H: 10},
			b:    Rect{X: 5, Y: 5, W: 5, H: 5},
			want: 25.0 / 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IoU(tt.a, tt.b)

			if !near(got, tt.want, 1e-6) {
				t.Errorf("IoU = %f, expected %f", got, tt.want)
			}
		})
	}
}

// TestNonMaxSuppressTies verifies equal confidence candidates keep their
// original decode order and that the higher confidence box wins a cluster
func TestNonMaxSuppressTies(t *testing.T) {

	box := Rect{X: 50, Y: 50, W: 20, H: 20}
	far := Rect{X: 200, Y: 200, W: 20, H: 20}

	cands := []candidate{
		{class: 1, conf: 0.7, box: far},
		{class: 1, conf: 0.7, box: box},
		{class: 1, conf: 0.9, box: box},
	}

	kept := nonMaxSuppress(cands, 0.4)

	if len(kept) != 2 {
		t.Fatalf("expected 2 kept candidates, got %d", len(kept))
	}

	// highest confidence first, then the tied candidate in decode order
	if kept[0].conf != 0.9 || kept[0].box != box {
		t.Errorf("expected 0.9 candidate first, got %+v", kept[0])
	}

	if kept[1].conf != 0.7 || kept[1].box != far {
		t.Errorf("expected far 0.7 candidate kept, got %+v", kept[1])
	}
}

// TestNonMaxSuppressInputUnmodified checks the input slice is not mutated
func TestNonMaxSuppressInputUnmodified(t *testing.T) {

	cands := []candidate{
		{class: 0, conf: 0.5, box: Rect{X: 10, Y: 10, W: 10, H: 10}},
		{class: 0, conf: 0.9, box: Rect{X: 10, Y: 10, W: 10, H: 10}},
	}

	orig := make([]candidate, len(cands))
	copy(orig, cands)

	nonMaxSuppress(cands, 0.4)

	for i := range cands {
		if cands[i] != orig[i] {
			t.Errorf("input candidate %d mutated: %+v != %+v", i, cands[i], orig[i])
		}
	}
}

// TestFilterDetections verifies the threshold is inclusive
func TestFilterDetections(t *testing.T) {

	dets := []DetectResult{
		{Class: 0, Confidence: 0.9},
		{Class: 1, Confidence: 0.5},
		{Class: 2, Confidence: 0.49},
	}

	out := FilterDetections(dets, 0.5)

	if len(out) != 2 {
		t.Fatalf("expected 2 detections, got %d", len(out))
	}

	for _, d := range out {
		if d.Confidence < 0.5 {
			t.Errorf("detection with confidence %f should have been filtered",
				d.Confidence)
		}
	}
}

// TestRankDetections verifies descending confidence order with stable ties
func TestRankDetections(t *testing.T) {

	dets := []DetectResult{
		{Class: 0, Confidence: 0.5},
		{Class: 1, Confidence: 0.9},
		{Class: 2, Confidence: 0.5},
	}

	RankDetections(dets)

	if dets[0].Confidence != 0.9 {
		t.Errorf("expected highest confidence first, got %f", dets[0].Confidence)
	}

	// tied detections keep relative order
	if dets[1].Class != 0 || dets[2].Class != 2 {
		t.Errorf("tied detections reordered: %+v", dets)
	}
}

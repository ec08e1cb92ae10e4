package postprocess

import (
	"sort"

	"github.com/chewxy/math32"
)

// IoU returns the Intersection over Union of two rects, the standard
// measure of spatial overlap used during Non-Maximum Suppression.  Returns
// 0 when the union area is zero.
func IoU(a, b Rect) float32 {

	w := math32.Max(0, math32.Min(a.Right(), b.Right())-math32.Max(a.Left(), b.Left()))
	h := math32.Max(0, math32.Min(a.Bottom(), b.Bottom())-math32.Max(a.Top(), b.Top()))
	intersection := w * h

	union := a.Area() + b.Area() - intersection

	if union <= 0 {
		return 0.0
	}

	return intersection / union
}

// nonMaxSuppress runs greedy per class Non-Maximum Suppression over the
// candidates.  Candidates are walked in order of descending confidence, ties
// keeping their original decode order, and a candidate is kept when its IoU
// against every already kept candidate of the same class stays below the
// threshold.  The input slice is left unmodified and the kept candidates
// are returned in descending confidence order.
func nonMaxSuppress(cands []candidate, threshold float32) []candidate {

	order := make([]int, len(cands))

	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return cands[order[i]].conf > cands[order[j]].conf
	})

	suppressed := make([]bool, len(cands))
	kept := make([]candidate, 0, len(cands))

	for i, n := range order {

		if suppressed[n] {
			continue
		}

		kept = append(kept, cands[n])

		// discard any lower confidence candidate of the same class that
		// overlaps the one just kept
		for _, m := range order[i+1:] {

			if suppressed[m] || cands[m].class != cands[n].class {
				continue
			}

			// a zero overlap pair is never suppressed, so a threshold of
			// 0 collapses overlapping boxes only and a threshold of 1
			// still removes exact duplicates
			if ov := IoU(cands[n].box, cands[m].box); ov > 0 && ov >= threshold {
				suppressed[m] = true
			}
		}
	}

	return kept
}

// filterByConfidence retains only candidates whose class confidence is at
// or above the threshold.  This is the second filtering stage, the first
// being the objectness gate applied during decode, and the two inspect
// different quantities even when configured with the same threshold value.
func filterByConfidence(cands []candidate, threshold float32) []candidate {

	out := make([]candidate, 0, len(cands))

	for _, c := range cands {
		if c.conf >= threshold {
			out = append(out, c)
		}
	}

	return out
}

// FilterDetections retains only detections whose confidence is at or above
// the threshold
func FilterDetections(dets []DetectResult, threshold float32) []DetectResult {

	out := make([]DetectResult, 0, len(dets))

	for _, d := range dets {
		if d.Confidence >= threshold {
			out = append(out, d)
		}
	}

	return out
}

// RankDetections sorts the detections by descending confidence.  The sort
// is stable so equal confidence detections keep their relative order.
func RankDetections(dets []DetectResult) {
	sort.SliceStable(dets, func(i, j int) bool {
		return dets[i].Confidence > dets[j].Confidence
	})
}

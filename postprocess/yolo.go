package postprocess

import (
	"fmt"
)

// YOLO defines the struct for post processing the output of an anchor based
// single shot YOLO style detection model
type YOLO struct {
	// Params are the Model configuration parameters
	Params YOLOParams
	// scratch recycles candidate buffers between calls
	scratch *scratchPool
}

// YOLOParams defines the struct containing the YOLO parameters to use for
// post processing operations
type YOLOParams struct {
	// NumAnchors is the number of anchor records in the Model's flat
	// output buffer
	NumAnchors int
	// ObjectClassNum is the number of different object classes the Model
	// has been trained with
	ObjectClassNum int
	// ProbBoxSize is the length of array elements representing each
	// bounding box's attributes, being the 4 box coordinates plus the
	// objectness score plus ObjectClassNum class scores
	ProbBoxSize int
	// ObjectnessThreshold is the minimum objectness score required for an
	// anchor to be considered during decode
	ObjectnessThreshold float32
	// ConfidenceThreshold is the minimum class confidence required for a
	// detection to survive the final filtering stage.  It is configured
	// separately from ObjectnessThreshold since the two stages inspect
	// different quantities, even though the default values are equal
	ConfidenceThreshold float32
	// NMSThreshold is the Non-Maximum Suppression threshold used for
	// defining the maximum allowed Intersection Over Union (IoU) between
	// two bounding boxes for both to be kept
	NMSThreshold float32
	// MaxObjectNumber is the maximum number of objects detected that can
	// be returned
	MaxObjectNumber int
}

// YOLOCOCOParams returns an instance of YOLOParams configured with default
// values for a Model trained on the COCO dataset featuring:
// - Object Classes: 80
// - Anchors: 2535 (416x416 input across strides 16 and 32)
// - Objectness Threshold: 0.3
// - Confidence Threshold: 0.3
// - NMS Threshold: 0.4
// - Prob Box Size: 85
//   - This is 80 Object Classes plus the 5 attributes used to define a
//     bounding box being:
//   - x & y coordinates for the center of the bounding box
//   - width and height of the box
//   - objectness score
//
// - Maximum Object Number: 64
func YOLOCOCOParams() YOLOParams {
	return YOLOParams{
		NumAnchors:          2535,
		ObjectClassNum:      80,
		ProbBoxSize:         85,
		ObjectnessThreshold: 0.3,
		ConfidenceThreshold: 0.3,
		NMSThreshold:        0.4,
		MaxObjectNumber:     64,
	}
}

// NewYOLO returns an instance of the YOLO post processor
func NewYOLO(p YOLOParams) *YOLO {
	return &YOLO{
		Params:  p,
		scratch: newScratchPool(),
	}
}

// candidate is a single anchor that passed the objectness gate during
// decode.  conf is the winning class score alone, objectness is used only
// as the gating condition and is not multiplied in.
type candidate struct {
	class int
	conf  float32
	box   Rect
}

// DetectObjects takes the Model's flat output buffer and runs the object
// detection post processing, returning the surviving detections in
// descending confidence order.  An empty buffer outcome, where no anchor
// clears the objectness threshold or all candidates are mutually
// suppressed, returns an empty result and no error.
func (y *YOLO) DetectObjects(buf []float32) ([]DetectResult, error) {

	cands, err := y.decode(buf, y.scratch.get())

	if err != nil {
		return nil, err
	}

	defer y.scratch.put(cands)

	if len(cands) == 0 {
		// no object detected
		return nil, nil
	}

	kept := nonMaxSuppress(cands, y.Params.NMSThreshold)
	kept = filterByConfidence(kept, y.Params.ConfidenceThreshold)

	group := make([]DetectResult, 0, len(kept))

	for _, c := range kept {

		if len(group) >= y.Params.MaxObjectNumber {
			break
		}

		group = append(group, DetectResult{
			Class:      c.class,
			Box:        c.box,
			Confidence: c.conf,
		})
	}

	return group, nil
}

// decode interprets the flat buffer as a sequence of anchor records of
// stride ProbBoxSize and appends a candidate to dst for each anchor that
// passes the objectness gate and has a strictly positive winning class
// score.  Box coordinates are read as raw floats in model input space with
// no validation or clamping of the network's output values.
func (y *YOLO) decode(buf []float32, dst []candidate) ([]candidate, error) {

	stride := y.Params.ProbBoxSize

	if stride != 5+y.Params.ObjectClassNum {
		return nil, fmt.Errorf("%w: prob box size %d does not equal 5 plus %d object classes",
			ErrShapeMismatch, stride, y.Params.ObjectClassNum)
	}

	if len(buf)%stride != 0 {
		return nil, fmt.Errorf("%w: buffer length %d is not a multiple of anchor stride %d",
			ErrShapeMismatch, len(buf), stride)
	}

	if len(buf)/stride != y.Params.NumAnchors {
		return nil, fmt.Errorf("%w: buffer holds %d anchors but %d were declared",
			ErrShapeMismatch, len(buf)/stride, y.Params.NumAnchors)
	}

	for a := 0; a < y.Params.NumAnchors; a++ {

		rec := buf[a*stride : (a+1)*stride]

		objectness := rec[4]

		if objectness <= y.Params.ObjectnessThreshold {
			continue
		}

		class, score, ok := maxClassScore(rec[5:])

		if !ok {
			continue
		}

		dst = append(dst, candidate{
			class: class,
			conf:  score,
			box: Rect{
				X: rec[0],
				Y: rec[1],
				W: rec[2],
				H: rec[3],
			},
		})
	}

	return dst, nil
}

// maxClassScore returns the index and value of the highest class score.
// ok is false when no score is strictly positive, meaning the anchor
// carries no usable class prediction.
func maxClassScore(scores []float32) (class int, score float32, ok bool) {

	for k, s := range scores {
		if s > score {
			class = k
			score = s
			ok = true
		}
	}

	return class, score, ok
}

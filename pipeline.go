package detpost

import (
	"fmt"
	"sync"

	"github.com/edgevision/go-detpost/postprocess"
	"github.com/edgevision/go-detpost/postprocess/result"
	"github.com/edgevision/go-detpost/preprocess"
)

// Engine is the inference engine that produces the raw output tensors from
// a preprocessed input tensor.  Engine instances are not assumed to be
// safely reentrant, Pipeline serializes all calls made against one.
type Engine interface {
	// Infer runs the model over the input tensor and returns its decoded
	// output tensors.  The detection output is expected at index 0, any
	// further tensors are passed through uninterpreted.
	Infer(input []float32) (*Outputs, error)
}

// Frame is one source image's preprocessed input tensor along with the
// original image dimensions its detections should be mapped back into
type Frame struct {
	Input       []float32
	ImageWidth  int
	ImageHeight int
}

// Pipeline binds an inference engine to a post processor and runs the full
// per frame detection cycle: inference, decode, suppression, confidence
// filtering, coordinate mapping and ranking.  At most one cycle is in
// flight at a time since the engine is not reentrant, the post processing
// itself is pure and holds no state between frames.
type Pipeline struct {
	mu       sync.Mutex
	engine   Engine
	detector postprocess.Detector
	labels   []string
	idGen    *result.IDGenerator
}

// NewPipeline returns a pipeline running the detector over the engine's
// output.  The label store must cover every class index the detector can
// produce.
func NewPipeline(engine Engine, detector postprocess.Detector,
	labels []string, numClasses int) (*Pipeline, error) {

	if err := CheckLabels(labels, numClasses); err != nil {
		return nil, err
	}

	return &Pipeline{
		engine:   engine,
		detector: detector,
		labels:   labels,
		idGen:    result.NewIDGenerator(),
	}, nil
}

// Labels returns the label store indexed by detection class
func (p *Pipeline) Labels() []string {
	return p.labels
}

// Process runs one frame through the pipeline and returns its detections
// with bounding boxes in the source image's coordinate space, ordered by
// descending confidence.  Once started a cycle runs to completion, callers
// with a deadline should drop stale frames before invocation, see
// FrameGate.
func (p *Pipeline) Process(frame Frame) ([]postprocess.DetectResult, error) {

	p.mu.Lock()
	defer p.mu.Unlock()

	outputs, err := p.engine.Infer(frame.Input)

	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	if outputs == nil || len(outputs.Output) == 0 {
		return nil, fmt.Errorf("engine returned no output tensors")
	}

	dets, err := p.detector.DetectObjects(outputs.Output[0].BufF32)

	if err != nil {
		return nil, err
	}

	// rescale boxes from model input space into the source image space
	in := outputs.InputAttributes()
	mapper := preprocess.NewScaleMapper(int(in.Width), int(in.Height),
		frame.ImageWidth, frame.ImageHeight)
	preprocess.MapDetections(mapper, dets)

	postprocess.RankDetections(dets)

	for i := range dets {
		dets[i].ID = p.idGen.GetNext()
	}

	return dets, nil
}

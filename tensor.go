package detpost

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/edgevision/go-detpost/postprocess"
)

// TensorType is the element type of a raw output buffer
type TensorType int

const (
	TensorFloat32 TensorType = iota
	TensorFloat16
)

// ByteSize returns the width in bytes of a single element of this type
func (t TensorType) ByteSize() int {

	switch t {
	case TensorFloat16:
		return 2
	default:
		return 4
	}
}

// InputAttr holds the attributes of the model input tensor the outputs
// were inferred from
type InputAttr struct {
	Width  uint32
	Height uint32
}

// Output holds a single flat output tensor decoded to float32.  The buffer
// is owned by the Output and is not shared with the engine's memory.
type Output struct {
	BufF32 []float32
}

// Outputs holds all output tensors produced for one frame.  Auxiliary
// tensors an engine may emit alongside the detection output (eg: a depth
// map) are carried here opaquely and not interpreted.
type Outputs struct {
	Output []Output

	inputAttr InputAttr
}

// NewOutputs returns an Outputs set for a model with the given input
// attributes
func NewOutputs(attr InputAttr) *Outputs {
	return &Outputs{
		inputAttr: attr,
	}
}

// InputAttributes returns the model input tensor attributes
func (o *Outputs) InputAttributes() InputAttr {
	return o.inputAttr
}

// Add appends an output tensor
func (o *Outputs) Add(out Output) {
	o.Output = append(o.Output, out)
}

// DecodeFloats interprets raw as a sequence of fixed width floating point
// values in the given byte order and returns an Output owning the decoded
// float32 buffer.  It replaces in place reinterpretation of engine memory
// with an explicit bounds checked read, a buffer whose byte length is not
// a multiple of the element size fails with a shape mismatch error.
func DecodeFloats(raw []byte, typ TensorType, order binary.ByteOrder) (Output, error) {

	esz := typ.ByteSize()

	if len(raw)%esz != 0 {
		return Output{}, fmt.Errorf(
			"%w: buffer of %d bytes is not a multiple of element size %d",
			postprocess.ErrShapeMismatch, len(raw), esz)
	}

	buf := make([]float32, len(raw)/esz)

	switch typ {
	case TensorFloat16:
		for i := range buf {
			buf[i] = f16LookupTable[order.Uint16(raw[i*2:])]
		}

	case TensorFloat32:
		for i := range buf {
			buf[i] = math.Float32frombits(order.Uint32(raw[i*4:]))
		}

	default:
		return Output{}, fmt.Errorf("unsupported tensor type %d", typ)
	}

	return Output{BufF32: buf}, nil
}

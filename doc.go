/*
go-detpost implements the post processing pipeline for anchor based single
shot object detection models.  It decodes a model's flat output tensor into
candidate bounding boxes, filters them by confidence, removes overlapping
duplicates using per class Non-Maximum Suppression (NMS), and rescales the
surviving boxes into the source image's coordinate space.

The inference engine producing the output tensors is treated as a black box
behind the Engine interface, so the library works with any runtime (TFLite,
ONNX Runtime, RKNN, etc) that can hand over its raw output buffers.
*/
package detpost

// Package facemesh extracts 3D facial landmarks from still images.
//
// Detection runs in two stages on OpenCV's DNN module: YuNet finds face
// boxes, then a face landmark regressor produces a dense mesh for each face
// from a rotated crop around it.
package facemesh

// Landmark is a single mesh point.
// X and Y are normalized to [0,1] by image width and height.
// Z is a relative depth on roughly the same scale as X.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Face is the ordered landmark list for one face.
// Index i always refers to the same anatomical point.
type Face []Landmark

// Result is the output of a single extraction.
type Result struct {
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
	Faces       []Face `json:"faces"`
}

// Detection is a face found by the detection stage, in pixel coordinates.
type Detection struct {
	X, Y       float64  // Top-left corner
	W, H       float64  // Box size
	Keypoints  [5]Point // Right eye, left eye, nose tip, right mouth corner, left mouth corner
	Confidence float64  // Detection score (0-1)
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Center returns the center point of the detection
func (d Detection) Center() (x, y float64) {
	return d.X + d.W/2, d.Y + d.H/2
}

// Area returns the area of the bounding box
func (d Detection) Area() float64 {
	return d.W * d.H
}

// ErrorOutput is the failure document written by WriteError.
type ErrorOutput struct {
	Error string `json:"error"`
}

package facemesh

import "math"

// ROI is a rotated square region of the source image, in pixels.
type ROI struct {
	CenterX, CenterY float64
	Size             float64 // Side length
	Angle            float64 // Rotation in radians, counter-clockwise crop-to-image
}

// Eye keypoints used to level the crop.
const (
	rightEyeKeypoint = 0
	leftEyeKeypoint  = 1
)

// ROIFromDetection builds the landmark crop for a detection: a square on the
// longer box side, scaled by scale, rotated so the eyes are horizontal.
func ROIFromDetection(d Detection, scale float64) ROI {
	cx, cy := d.Center()
	side := math.Max(d.W, d.H) * scale

	re := d.Keypoints[rightEyeKeypoint]
	le := d.Keypoints[leftEyeKeypoint]
	angle := normalizeRadians(-math.Atan2(-(le.Y - re.Y), le.X-re.X))

	return ROI{CenterX: cx, CenterY: cy, Size: side, Angle: angle}
}

// normalizeRadians maps a to [-pi, pi).
func normalizeRadians(a float64) float64 {
	return a - 2*math.Pi*math.Floor((a+math.Pi)/(2*math.Pi))
}

// ToImage maps a point in crop pixels (crop side s) to source image pixels.
func (r ROI) ToImage(u, v, s float64) (x, y float64) {
	nx := u/s - 0.5
	ny := v/s - 0.5
	sin, cos := math.Sincos(r.Angle)
	x = r.CenterX + r.Size*(cos*nx-sin*ny)
	y = r.CenterY + r.Size*(sin*nx+cos*ny)
	return x, y
}

// Corners returns the image positions of the crop's top-left, top-right and
// bottom-left corners, for a crop of side s.
func (r ROI) Corners(s float64) [3]Point {
	var c [3]Point
	c[0].X, c[0].Y = r.ToImage(0, 0, s)
	c[1].X, c[1].Y = r.ToImage(s, 0, s)
	c[2].X, c[2].Y = r.ToImage(0, s, s)
	return c
}

// Project converts a raw landmark in crop pixels to a normalized image
// landmark. X and Y are clamped to [0,1]; Z is scaled by crop size relative
// to image width.
func (r ROI) Project(u, v, z, s float64, imgW, imgH int) Landmark {
	px, py := r.ToImage(u, v, s)
	return Landmark{
		X: clamp01(px / float64(imgW)),
		Y: clamp01(py / float64(imgH)),
		Z: z / s * r.Size / float64(imgW),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package facemesh

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNormalizeRadians(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}

	for _, tc := range tests {
		got := normalizeRadians(tc.in)
		if !near(got, tc.want) {
			t.Errorf("normalizeRadians(%.4f) = %.4f, want %.4f", tc.in, got, tc.want)
		}
		if got < -math.Pi-eps || got >= math.Pi {
			t.Errorf("normalizeRadians(%.4f) = %.4f out of [-pi, pi)", tc.in, got)
		}
	}
}

func TestROIFromDetection(t *testing.T) {
	tests := []struct {
		name      string
		det       Detection
		wantCX    float64
		wantCY    float64
		wantSize  float64
		wantAngle float64
	}{
		{
			name: "level eyes",
			det: Detection{
				X: 100, Y: 50, W: 80, H: 100,
				Keypoints: [5]Point{{X: 120, Y: 90}, {X: 160, Y: 90}},
			},
			wantCX: 140, wantCY: 100, wantSize: 150, wantAngle: 0,
		},
		{
			name: "head tilted toward left shoulder",
			det: Detection{
				X: 0, Y: 0, W: 100, H: 100,
				Keypoints: [5]Point{{X: 30, Y: 30}, {X: 70, Y: 70}},
			},
			wantCX: 50, wantCY: 50, wantSize: 150, wantAngle: math.Pi / 4,
		},
		{
			name: "head tilted toward right shoulder",
			det: Detection{
				X: 0, Y: 0, W: 100, H: 60,
				Keypoints: [5]Point{{X: 30, Y: 70}, {X: 70, Y: 30}},
			},
			wantCX: 50, wantCY: 30, wantSize: 150, wantAngle: -math.Pi / 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roi := ROIFromDetection(tc.det, 1.5)
			if !near(roi.CenterX, tc.wantCX) || !near(roi.CenterY, tc.wantCY) {
				t.Errorf("center: got (%.2f, %.2f), want (%.2f, %.2f)",
					roi.CenterX, roi.CenterY, tc.wantCX, tc.wantCY)
			}
			if !near(roi.Size, tc.wantSize) {
				t.Errorf("size: got %.2f, want %.2f", roi.Size, tc.wantSize)
			}
			if !near(roi.Angle, tc.wantAngle) {
				t.Errorf("angle: got %.4f, want %.4f", roi.Angle, tc.wantAngle)
			}
		})
	}
}

func TestROIToImage_EyeLineIsHorizontalInCrop(t *testing.T) {
	det := Detection{
		X: 0, Y: 0, W: 100, H: 100,
		Keypoints: [5]Point{{X: 30, Y: 30}, {X: 70, Y: 70}},
	}
	roi := ROIFromDetection(det, 1.0)

	// Moving right along the crop's middle row must follow the eye line
	x0, y0 := roi.ToImage(0, 50, 100)
	x1, y1 := roi.ToImage(100, 50, 100)
	dx, dy := x1-x0, y1-y0
	if !near(dx, dy) || dx <= 0 {
		t.Errorf("crop x-axis maps to (%.3f, %.3f), want a positive 45 degree direction", dx, dy)
	}
}

func TestROICorners(t *testing.T) {
	roi := ROI{CenterX: 100, CenterY: 80, Size: 40}
	c := roi.Corners(192)

	want := [3]Point{{X: 80, Y: 60}, {X: 120, Y: 60}, {X: 80, Y: 100}}
	for i := range want {
		if !near(c[i].X, want[i].X) || !near(c[i].Y, want[i].Y) {
			t.Errorf("corner %d: got %+v, want %+v", i, c[i], want[i])
		}
	}
}

func TestROICorners_RotationPreservesDistance(t *testing.T) {
	roi := ROI{CenterX: 200, CenterY: 150, Size: 60, Angle: 0.7}
	half := math.Sqrt2 * roi.Size / 2

	for i, p := range roi.Corners(192) {
		d := math.Hypot(p.X-roi.CenterX, p.Y-roi.CenterY)
		if !near(d, half) {
			t.Errorf("corner %d distance from center: got %.4f, want %.4f", i, d, half)
		}
	}

	cx, cy := roi.ToImage(96, 96, 192)
	if !near(cx, roi.CenterX) || !near(cy, roi.CenterY) {
		t.Errorf("crop center maps to (%.4f, %.4f), want ROI center", cx, cy)
	}
}

func TestROIProject(t *testing.T) {
	roi := ROI{CenterX: 50, CenterY: 50, Size: 40}

	tests := []struct {
		name    string
		u, v, z float64
		want    Landmark
	}{
		{
			name: "crop center",
			u:    96,
			v:    96,
			z:    0,
			want: Landmark{X: 0.5, Y: 0.25},
		},
		{
			name: "z scaled by crop size over image width",
			u:    96,
			v:    96,
			z:    19.2,
			want: Landmark{X: 0.5, Y: 0.25, Z: 0.04},
		},
		{
			name: "negative z kept",
			u:    0,
			v:    0,
			z:    -9.6,
			want: Landmark{X: 0.3, Y: 0.15, Z: -0.02},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := roi.Project(tc.u, tc.v, tc.z, 192, 100, 200)
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) || !near(got.Z, tc.want.Z) {
				t.Errorf("Project: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestROIProject_Clamps(t *testing.T) {
	// Crop hangs over the top-left corner of the image
	roi := ROI{CenterX: 0, CenterY: 0, Size: 100}

	got := roi.Project(0, 0, 0, 192, 100, 100)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("expected clamp to 0, got %+v", got)
	}

	roi = ROI{CenterX: 100, CenterY: 100, Size: 100}
	got = roi.Project(192, 192, 0, 192, 100, 100)
	if got.X != 1 || got.Y != 1 {
		t.Errorf("expected clamp to 1, got %+v", got)
	}
}

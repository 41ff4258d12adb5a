package facemesh

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"

	"gocv.io/x/gocv"
)

// landmarker regresses the dense mesh for one face crop.
// The model takes an NCHW 1x3xSxS RGB blob in [0,1] and emits 3 floats per
// point in crop pixel units.
type landmarker struct {
	net    gocv.Net
	size   int
	logger *slog.Logger
}

func newLandmarker(cfg Config) (*landmarker, error) {
	if _, err := os.Stat(cfg.LandmarkModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.LandmarkModelPath)
	}

	var net gocv.Net
	if err := cvErr(func() { net = gocv.ReadNetFromONNX(cfg.LandmarkModelPath) }); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelLoad, cfg.LandmarkModelPath, err)
	}
	if net.Empty() {
		net.Close()
		return nil, fmt.Errorf("%w: %s", ErrModelLoad, cfg.LandmarkModelPath)
	}

	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set target: %w", err)
	}

	return &landmarker{
		net:    net,
		size:   cfg.LandmarkInputSize,
		logger: cfg.logger(),
	}, nil
}

// landmarks runs the model on the roi of rgb and projects the points back
// into normalized image coordinates.
func (l *landmarker) landmarks(rgb gocv.Mat, roi ROI) (Face, error) {
	crop, err := l.crop(rgb, roi)
	if err != nil {
		return nil, err
	}
	defer crop.Close()

	sz := image.Pt(l.size, l.size)
	blob := gocv.BlobFromImage(crop, 1.0/255.0, sz, gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	var output gocv.Mat
	err = cvErr(func() {
		l.net.SetInput(blob, "")
		output = l.net.Forward("")
	})
	defer output.Close()
	if err != nil {
		return nil, fmt.Errorf("landmark inference: %w", err)
	}

	data, err := output.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	return l.decode(data, roi, rgb.Cols(), rgb.Rows())
}

// crop warps roi into an SxS image. Pixels outside the source are black.
func (l *landmarker) crop(rgb gocv.Mat, roi ROI) (gocv.Mat, error) {
	s := float64(l.size)
	corners := roi.Corners(s)

	src := gocv.NewPoint2fVectorFromPoints([]gocv.Point2f{
		{X: float32(corners[0].X), Y: float32(corners[0].Y)},
		{X: float32(corners[1].X), Y: float32(corners[1].Y)},
		{X: float32(corners[2].X), Y: float32(corners[2].Y)},
	})
	defer src.Close()

	dst := gocv.NewPoint2fVectorFromPoints([]gocv.Point2f{
		{X: 0, Y: 0},
		{X: float32(s), Y: 0},
		{X: 0, Y: float32(s)},
	})
	defer dst.Close()

	m := gocv.GetAffineTransform2f(src, dst)
	defer m.Close()

	crop := gocv.NewMat()
	if err := gocv.WarpAffineWithParams(rgb, &crop, m, image.Pt(l.size, l.size),
		gocv.InterpolationLinear, gocv.BorderConstant, color.RGBA{}); err != nil {
		crop.Close()
		return gocv.Mat{}, fmt.Errorf("warp face crop: %w", err)
	}
	return crop, nil
}

// decode turns the raw x,y,z triplets into a Face.
func (l *landmarker) decode(data []float32, roi ROI, imgW, imgH int) (Face, error) {
	if len(data) == 0 || len(data)%3 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrInvalidOutput, len(data))
	}

	n := len(data) / 3
	if n != NumLandmarks {
		l.logger.Warn("unexpected landmark count", "got", n, "want", NumLandmarks)
	}

	s := float64(l.size)
	face := make(Face, n)
	for i := range face {
		u := float64(data[3*i])
		v := float64(data[3*i+1])
		z := float64(data[3*i+2])
		if !finite(u) || !finite(v) || !finite(z) {
			return nil, fmt.Errorf("%w: non-finite value at landmark %d", ErrInvalidOutput, i)
		}
		face[i] = roi.Project(u, v, z, s, imgW, imgH)
	}
	return face, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (l *landmarker) close() {
	l.net.Close()
}

package facemesh

import (
	"fmt"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"
)

// Mesh maps an RGB image to per-face landmark lists.
type Mesh interface {
	// Process detects faces in rgb and returns one Face per detection
	Process(rgb gocv.Mat) ([]Face, error)

	// Close releases resources
	Close() error
}

// FaceMesh is the model-backed Mesh: YuNet detection followed by landmark
// regression on each face crop.
type FaceMesh struct {
	cfg        Config
	detector   *yuNetDetector
	landmarker *landmarker
	logger     *slog.Logger
	mu         sync.Mutex // Protects inference
	closed     bool
}

// New loads both models described by cfg.
func New(cfg Config) (*FaceMesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	detector, err := newYuNet(cfg)
	if err != nil {
		return nil, err
	}

	lm, err := newLandmarker(cfg)
	if err != nil {
		detector.close()
		return nil, err
	}

	return &FaceMesh{
		cfg:        cfg,
		detector:   detector,
		landmarker: lm,
		logger:     cfg.logger(),
	}, nil
}

// Process finds up to MaxFaces faces in rgb and regresses a mesh for each.
// An image without faces yields an empty, non-nil slice.
func (m *FaceMesh) Process(rgb gocv.Mat) ([]Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if rgb.Empty() {
		return nil, ErrEmptyImage
	}

	// YuNet was trained on BGR input
	bgr := gocv.NewMat()
	defer bgr.Close()
	if err := gocv.CvtColor(rgb, &bgr, gocv.ColorRGBToBGR); err != nil {
		return nil, fmt.Errorf("convert to BGR: %w", err)
	}

	detections, err := m.detector.detect(bgr)
	if err != nil {
		return nil, fmt.Errorf("detect faces: %w", err)
	}

	m.logger.Debug("faces detected", "count", len(detections),
		"width", rgb.Cols(), "height", rgb.Rows())

	faces := make([]Face, 0, len(detections))
	for i, det := range detections {
		roi := ROIFromDetection(det, m.cfg.ROIScale)
		face, err := m.landmarker.landmarks(rgb, roi)
		if err != nil {
			return nil, fmt.Errorf("face %d landmarks: %w", i, err)
		}
		faces = append(faces, face)
	}

	return faces, nil
}

// Close releases both model handles. Calling it more than once is safe.
func (m *FaceMesh) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.landmarker.close()
	m.detector.close()
	return nil
}

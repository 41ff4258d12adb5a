package facemesh

import (
	"fmt"
	"image"
	"os"
	"sort"

	"gocv.io/x/gocv"
)

// yuNetColumns is the row width of FaceDetectorYN output:
// 0-3 box, 4-13 five keypoints as x,y pairs, 14 score.
const yuNetColumns = 15

// yuNetDetector finds face boxes with OpenCV's FaceDetectorYN
type yuNetDetector struct {
	detector gocv.FaceDetectorYN
	maxFaces int
}

func newYuNet(cfg Config) (*yuNetDetector, error) {
	if _, err := os.Stat(cfg.DetectorModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, cfg.DetectorModelPath)
	}

	// Input size is replaced per image before detection
	var detector gocv.FaceDetectorYN
	err := cvErr(func() {
		detector = gocv.NewFaceDetectorYNWithParams(
			cfg.DetectorModelPath,
			"",
			image.Pt(320, 320),
			float32(cfg.MinDetectionConfidence),
			float32(cfg.NMSThreshold),
			cfg.TopK,
			int(gocv.NetBackendDefault),
			int(gocv.NetTargetCPU),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModelLoad, cfg.DetectorModelPath, err)
	}

	return &yuNetDetector{
		detector: detector,
		maxFaces: cfg.MaxFaces,
	}, nil
}

// detect returns at most maxFaces detections in bgr, highest score first.
func (d *yuNetDetector) detect(bgr gocv.Mat) ([]Detection, error) {
	faces := gocv.NewMat()
	defer faces.Close()

	err := cvErr(func() {
		d.detector.SetInputSize(image.Pt(bgr.Cols(), bgr.Rows()))
		d.detector.Detect(bgr, &faces)
	})
	if err != nil {
		return nil, err
	}

	if faces.Empty() {
		return nil, nil
	}
	if faces.Cols() < yuNetColumns {
		return nil, fmt.Errorf("%w: detector returned %d columns", ErrInvalidOutput, faces.Cols())
	}

	detections := make([]Detection, 0, faces.Rows())
	for r := 0; r < faces.Rows(); r++ {
		det := Detection{
			X:          float64(faces.GetFloatAt(r, 0)),
			Y:          float64(faces.GetFloatAt(r, 1)),
			W:          float64(faces.GetFloatAt(r, 2)),
			H:          float64(faces.GetFloatAt(r, 3)),
			Confidence: float64(faces.GetFloatAt(r, 14)),
		}
		for k := range det.Keypoints {
			det.Keypoints[k] = Point{
				X: float64(faces.GetFloatAt(r, 4+2*k)),
				Y: float64(faces.GetFloatAt(r, 5+2*k)),
			}
		}
		detections = append(detections, det)
	}

	return limitDetections(detections, d.maxFaces), nil
}

// limitDetections orders detections by confidence, larger box first on
// ties, and keeps the first n.
func limitDetections(dets []Detection, n int) []Detection {
	sort.SliceStable(dets, func(i, j int) bool {
		if dets[i].Confidence != dets[j].Confidence {
			return dets[i].Confidence > dets[j].Confidence
		}
		return dets[i].Area() > dets[j].Area()
	})
	if len(dets) > n {
		dets = dets[:n]
	}
	return dets
}

func (d *yuNetDetector) close() {
	d.detector.Close()
}

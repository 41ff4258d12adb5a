package facemesh

import (
	"log/slog"
)

// Model file names looked up under the models directory.
const (
	DetectorModelFile = "face_detection_yunet.onnx"
	LandmarkModelFile = "face_landmark.onnx"
)

// NumLandmarks is the mesh size produced by the landmark model.
const NumLandmarks = 468

// Config holds face mesh configuration
type Config struct {
	DetectorModelPath string // YuNet ONNX model
	LandmarkModelPath string // Face landmark ONNX model

	MaxFaces               int     // Maximum faces returned per image
	MinDetectionConfidence float64 // Minimum detector score (0-1)
	StaticImageMode        bool    // Treat every image independently

	NMSThreshold      float64 // Detector non-maximum suppression threshold
	TopK              int     // Detector candidates kept before NMS
	LandmarkInputSize int     // Square input side of the landmark model
	ROIScale          float64 // Crop side relative to the longer box side

	Logger *slog.Logger
}

// DefaultConfig returns the fixed detector settings used by the CLI
func DefaultConfig() Config {
	return Config{
		DetectorModelPath:      "models/" + DetectorModelFile,
		LandmarkModelPath:      "models/" + LandmarkModelFile,
		MaxFaces:               5,
		MinDetectionConfidence: 0.5,
		StaticImageMode:        true,
		NMSThreshold:           0.3,
		TopK:                   5000,
		LandmarkInputSize:      192,
		ROIScale:               1.5,
		Logger:                 slog.Default(),
	}
}

// Validate checks that the config can be used to build a FaceMesh.
func (c Config) Validate() error {
	if !c.StaticImageMode {
		return ErrVideoModeUnsupported
	}
	if c.DetectorModelPath == "" {
		return &ConfigError{Field: "DetectorModelPath", Reason: "required"}
	}
	if c.LandmarkModelPath == "" {
		return &ConfigError{Field: "LandmarkModelPath", Reason: "required"}
	}
	if c.MaxFaces <= 0 {
		return &ConfigError{Field: "MaxFaces", Reason: "must be positive"}
	}
	if c.MinDetectionConfidence < 0 || c.MinDetectionConfidence > 1 {
		return &ConfigError{Field: "MinDetectionConfidence", Reason: "must be within [0,1]"}
	}
	if c.NMSThreshold < 0 || c.NMSThreshold > 1 {
		return &ConfigError{Field: "NMSThreshold", Reason: "must be within [0,1]"}
	}
	if c.TopK <= 0 {
		return &ConfigError{Field: "TopK", Reason: "must be positive"}
	}
	if c.LandmarkInputSize <= 0 {
		return &ConfigError{Field: "LandmarkInputSize", Reason: "must be positive"}
	}
	if c.ROIScale <= 0 {
		return &ConfigError{Field: "ROIScale", Reason: "must be positive"}
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

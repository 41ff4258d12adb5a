package facemesh

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/teslashibe/go-facemesh/internal/config"
)

// testConfig returns DefaultConfig with models resolved from the repository,
// or skips the test when they are not present.
func testConfig(t *testing.T) Config {
	t.Helper()

	dirs := config.ModelSearchDirs()
	det, err := config.FindModel(DetectorModelFile, dirs)
	if err != nil {
		t.Skip("YuNet model not found, skipping test")
	}
	lm, err := config.FindModel(LandmarkModelFile, dirs)
	if err != nil {
		t.Skip("Face landmark model not found, skipping test")
	}

	cfg := DefaultConfig()
	cfg.DetectorModelPath = det
	cfg.LandmarkModelPath = lm
	return cfg
}

// writeSolidPNG writes a width x height image filled with c and returns its path.
func writeSolidPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "solid.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	return path
}

// sampleImageFile is an optional frontal portrait kept next to the models.
const sampleImageFile = "sample_face.jpg"

func findSamplePortrait() string {
	p, err := config.FindModel(sampleImageFile, config.ModelSearchDirs())
	if err != nil {
		return ""
	}
	return p
}

// writeGarbage writes bytes that no model loader accepts to dir/name.
func writeGarbage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("this is not an onnx model"), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}

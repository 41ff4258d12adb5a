package facemesh

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadImage decodes the image at path as 8-bit BGR.
// Missing and undecodable files both return ErrImageUnreadable.
func LoadImage(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, ErrImageUnreadable
	}
	return img, nil
}

// ToRGB returns a new Mat with bgr's channels reordered to RGB.
func ToRGB(bgr gocv.Mat) (gocv.Mat, error) {
	rgb := gocv.NewMat()
	if err := gocv.CvtColor(bgr, &rgb, gocv.ColorBGRToRGB); err != nil {
		rgb.Close()
		return gocv.Mat{}, fmt.Errorf("convert to RGB: %w", err)
	}
	return rgb, nil
}

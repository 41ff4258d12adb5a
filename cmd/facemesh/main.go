// facemesh prints the facial landmarks found in an image as JSON.
//
// Usage:
//
//	facemesh <image_path>
//
// On success the result is written to stdout and the exit code is 0, even
// when no face is found. Any failure writes {"error": "..."} to stderr and
// exits with code 1.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/teslashibe/go-facemesh/internal/config"
	"github.com/teslashibe/go-facemesh/internal/log"
	"github.com/teslashibe/go-facemesh/pkg/facemesh"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// logLevel keeps warnings off stderr, which carries only the error document.
const logLevel = "error"

var errUsage = errors.New("usage: facemesh <image_path>")

// openMesh builds the mesh for a run.
var openMesh = facemesh.Open

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		facemesh.WriteError(stderr, errUsage)
		return exitFailure
	}

	cfg := facemesh.DefaultConfig()
	cfg.DetectorModelPath = config.ModelPath(facemesh.DetectorModelFile)
	cfg.LandmarkModelPath = config.ModelPath(facemesh.LandmarkModelFile)
	cfg.Logger = log.New(logLevel, stderr)

	cfg.Logger.Debug("models resolved",
		"detector", cfg.DetectorModelPath,
		"landmark", cfg.LandmarkModelPath)

	result, err := facemesh.Extract(args[0], openMesh(cfg))
	if err != nil {
		facemesh.WriteError(stderr, err)
		return exitFailure
	}

	if err := facemesh.WriteResult(stdout, result); err != nil {
		facemesh.WriteError(stderr, err)
		return exitFailure
	}
	return exitOK
}

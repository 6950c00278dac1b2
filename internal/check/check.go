// Package check provides system diagnostics (--check mode): codec
// round-trip, logical core count, and target-directory write access.
package check

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"

	"github.com/deepteams/webp"

	"github.com/backmassage/webpify/internal/config"
	"github.com/backmassage/webpify/internal/convert"
	"github.com/backmassage/webpify/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: reports parallelism, verifies the WebP
// codec with an in-memory round-trip, and probes write access to the target
// directory. Returns false when any check fails.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := true
	checkParallelism(log)
	if !checkCodec(log) {
		ok = false
	}
	if !checkWritable(cfg.InputDir, log) {
		ok = false
	}
	return ok
}

// checkParallelism reports the detected core count and the resulting pool
// sizing for a large batch.
func checkParallelism(log Logger) {
	cores := runtime.NumCPU()
	log.Success("Logical cores: %d", cores)
	log.Info("  Worker pool for a large batch: %d", pipeline.PoolSize(cores, 1<<20))
}

// checkCodec encodes a small test image with the fixed conversion options
// and decodes it back, verifying dimensions survive the round-trip.
func checkCodec(log Logger) bool {
	const side = 16
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, convert.Options()); err != nil {
		log.Error("WebP encode failed: %v", err)
		return false
	}
	decoded, err := webp.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		log.Error("WebP decode failed: %v", err)
		return false
	}
	if decoded.Width != side || decoded.Height != side {
		log.Error("WebP round-trip dimensions %dx%d, want %dx%d",
			decoded.Width, decoded.Height, side, side)
		return false
	}

	log.Success("WebP codec works (lossy, quality %d, effort %d)", convert.Quality, convert.Method)
	return true
}

// checkWritable verifies outputs can be created next to the inputs.
func checkWritable(dir string, log Logger) bool {
	f, err := os.CreateTemp(dir, ".webpify-check-*")
	if err != nil {
		log.Error("Cannot write to %s: %v", dir, err)
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	log.Success("Write access: %s", abs)
	return true
}

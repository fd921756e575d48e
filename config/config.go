// Package config describes the options the detector service recognizes and
// the rules that derive the model input size from them.
package config

import (
	"strings"

	"github.com/pkg/errors"
)

// Defaults for every recognized option.
const (
	DefaultAddress        = "localhost:8080"
	DefaultWidth          = 224
	DefaultHeight         = 224
	DefaultConfidence     = 0.50
	DefaultScoreThreshold = 0.10
	DefaultNMSThreshold   = 0.45
	DefaultPadValue       = 114
)

// YoloInputSize is the input edge forced when the model path names a YOLO
// export.
const YoloInputSize = 640

// Config is the validated service configuration.
type Config struct {
	// Address is the transport listen address, host:port.
	Address string
	// Model is the path to the serialized network weights.
	Model string
	// Width and Height are the model input dimensions when the model path
	// rule does not override them.
	Width  int
	Height int
	// Confidence is the request-level minimum confidence; detections below
	// it are dropped before zone filtering.
	Confidence float64
	// ScoreThreshold gates anchors in the output parser and candidates in NMS.
	ScoreThreshold float64
	// NMSThreshold is the IoU above which same-class boxes are duplicates.
	NMSThreshold float64
	// SwapRB selects RGB channel order for the input tensor.
	SwapRB bool
	// PadValue is the letterbox padding intensity.
	PadValue int
	// Verbose switches the process logger to debug level.
	Verbose bool
}

// Default returns a Config with every option at its default.
func Default() Config {
	return Config{
		Address:        DefaultAddress,
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Confidence:     DefaultConfidence,
		ScoreThreshold: DefaultScoreThreshold,
		NMSThreshold:   DefaultNMSThreshold,
		SwapRB:         true,
		PadValue:       DefaultPadValue,
	}
}

// Validate reports the first invalid option.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.Model == "" {
		return errors.New("model path must not be empty")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("model input size %dx%d must be positive", c.Width, c.Height)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return errors.Errorf("confidence %f must be in [0, 1]", c.Confidence)
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return errors.Errorf("score threshold %f must be in [0, 1]", c.ScoreThreshold)
	}
	if c.NMSThreshold < 0 || c.NMSThreshold > 1 {
		return errors.Errorf("nms threshold %f must be in [0, 1]", c.NMSThreshold)
	}
	if c.PadValue < 0 || c.PadValue > 255 {
		return errors.Errorf("pad value %d must be in [0, 255]", c.PadValue)
	}
	return nil
}

// InputSize returns the model input (width, height). YOLO exports are always
// fed 640x640 regardless of the configured size; the rule matches the
// substrings "yolo" and "YOLO" in the model path, case-sensitively, exactly
// as the model packaging names its files.
func (c *Config) InputSize() (int, int) {
	if strings.Contains(c.Model, "yolo") || strings.Contains(c.Model, "YOLO") {
		return YoloInputSize, YoloInputSize
	}
	return c.Width, c.Height
}

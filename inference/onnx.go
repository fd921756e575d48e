package inference

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
	"gorgonia.org/tensor"
)

// Network input and output names of the exported detection models.
const (
	inputName  = "images"
	outputName = "output"
)

var (
	ortInitOnce sync.Once
	ortInitErr  error
)

// initRuntime brings the process-wide ONNX Runtime environment up exactly once.
func initRuntime() error {
	ortInitOnce.Do(func() {
		if ort.IsInitialized() {
			return
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	if ortInitErr != nil {
		return errors.Wrap(ortInitErr, "failed to initialize onnxruntime environment")
	}
	return nil
}

// onnxDetector runs an ONNX detection model on the CPU. The session reuses
// one preallocated input tensor, so calls are serialized with a mutex.
type onnxDetector struct {
	mu      sync.Mutex
	session *ort.DynamicAdvancedSession
	input   *ort.Tensor[float32]
	width   int
	height  int
	swapRB  bool
	logger  golog.Logger
}

// NewONNXDetector loads the model at modelPath and prepares a session with a
// (width, height) input. swapRB selects RGB channel order for the input
// tensor; the models are trained on RGB while frames arrive as BGR.
func NewONNXDetector(modelPath string, width, height int, swapRB bool, logger golog.Logger) (Detector, error) {
	if err := initRuntime(); err != nil {
		return nil, err
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session options")
	}
	defer func() {
		if err := options.Destroy(); err != nil {
			logger.Warnw("failed to destroy session options", "error", err)
		}
	}()
	if err := options.SetIntraOpNumThreads(runtime.NumCPU()); err != nil {
		return nil, errors.Wrap(err, "failed to set session threads")
	}

	input, err := ort.NewTensor(ort.NewShape(1, 3, int64(height), int64(width)), make([]float32, 3*width*height))
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate input tensor")
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{inputName}, []string{outputName}, options)
	if err != nil {
		if derr := input.Destroy(); derr != nil {
			logger.Warnw("failed to destroy input tensor", "error", derr)
		}
		return nil, errors.Wrapf(err, "failed to load model %q", modelPath)
	}

	logger.Infow("model loaded", "path", modelPath, "input", inputName, "width", width, "height", height)
	return &onnxDetector{
		session: session,
		input:   input,
		width:   width,
		height:  height,
		swapRB:  swapRB,
		logger:  logger,
	}, nil
}

func (d *onnxDetector) InputSize() (int, int) {
	return d.width, d.height
}

// Infer runs the forward pass and copies the raw output into a dense tensor.
func (d *onnxDetector) Infer(ctx context.Context, img image.Image) (*tensor.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	copy(d.input.GetData(), imageToTensorData(img, d.width, d.height, d.swapRB))

	outputs := []ort.ArbitraryTensor{nil}
	if err := d.session.Run([]ort.ArbitraryTensor{d.input}, outputs); err != nil {
		return nil, errors.Wrap(err, "inference failed")
	}
	raw, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, errors.Errorf("unexpected output value type %T", outputs[0])
	}
	defer func() {
		if err := raw.Destroy(); err != nil {
			d.logger.Warnw("failed to destroy output tensor", "error", err)
		}
	}()

	shape := raw.GetShape()
	dims := make([]int, len(shape))
	for i, s := range shape {
		dims[i] = int(s)
	}
	backing := append([]float32(nil), raw.GetData()...)
	return tensor.New(tensor.WithShape(dims...), tensor.WithBacking(backing)), nil
}

func (d *onnxDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return nil
	}
	err := d.session.Destroy()
	if derr := d.input.Destroy(); derr != nil && err == nil {
		err = derr
	}
	d.session = nil
	return err
}

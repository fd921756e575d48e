package server

import (
	"context"
	"net"
	"time"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/stolyarchuk/aa-video/config"
	"github.com/stolyarchuk/aa-video/inference"
	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

// drainTimeout bounds how long shutdown waits for in-flight requests.
const drainTimeout = 100 * time.Millisecond

// Arguments for the command.
type Arguments struct {
	Address    string  `flag:"address,default=localhost:8080,usage=transport listen address"`
	Model      string  `flag:"model,required,usage=path to the serialized network weights"`
	Width      int     `flag:"width,default=224,usage=model input width"`
	Height     int     `flag:"height,default=224,usage=model input height"`
	Confidence float64 `flag:"confidence,default=0.5,usage=request-level minimum confidence"`
	Thr        float64 `flag:"thr,default=0.1,usage=parser score threshold"`
	NMS        float64 `flag:"nms,default=0.45,usage=NMS IoU threshold"`
	RGB        bool    `flag:"rgb,default=true,usage=swap channels to RGB before tensor construction"`
	PadValue   int     `flag:"padvalue,default=114,usage=letterbox padding intensity"`
	Verbose    bool    `flag:"verbose,usage=enable debug logging"`
}

// RunServer is an entry point to starting the detector server that can be
// called by main or a test harness.
func RunServer(ctx context.Context, args []string, logger golog.Logger) (err error) {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	cfg := config.Config{
		Address:        argsParsed.Address,
		Model:          argsParsed.Model,
		Width:          argsParsed.Width,
		Height:         argsParsed.Height,
		Confidence:     argsParsed.Confidence,
		ScoreThreshold: argsParsed.Thr,
		NMSThreshold:   argsParsed.NMS,
		SwapRB:         argsParsed.RGB,
		PadValue:       argsParsed.PadValue,
		Verbose:        argsParsed.Verbose,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		logger = golog.NewDebugLogger("aa_video_server")
	}

	modelW, modelH := cfg.InputSize()
	detector, err := inference.NewONNXDetector(cfg.Model, modelW, modelH, cfg.SwapRB, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, detector.Close())
	}()

	return Serve(ctx, detector, cfg, logger)
}

// Serve listens on the configured address and serves until ctx is done, then
// drains in-flight requests within drainTimeout before hard-stopping.
func Serve(ctx context.Context, detector inference.Detector, cfg config.Config, logger golog.Logger) error {
	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	pb.RegisterDetectorServiceServer(grpcServer, New(detector, cfg, logger))
	reflection.Register(grpcServer)

	utils.PanicCapturingGo(func() {
		<-ctx.Done()
		stopped := make(chan struct{})
		utils.PanicCapturingGo(func() {
			grpcServer.GracefulStop()
			close(stopped)
		})
		select {
		case <-stopped:
		case <-time.After(drainTimeout):
			logger.Warnw("drain deadline exceeded, stopping hard", "timeout", drainTimeout)
			grpcServer.Stop()
		}
	})

	logger.Infow("serving", "address", cfg.Address, "model", cfg.Model)
	return grpcServer.Serve(listener)
}

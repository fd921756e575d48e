// Package server implements the detector gRPC service: per-request pipelines
// that letterbox the frame, run inference, adjudicate detections against the
// caller's zones and return the annotated frame.
package server

import (
	"context"
	"image"
	"sort"

	"github.com/edaniels/golog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stolyarchuk/aa-video/config"
	"github.com/stolyarchuk/aa-video/frame"
	"github.com/stolyarchuk/aa-video/inference"
	"github.com/stolyarchuk/aa-video/ml"
	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
	"github.com/stolyarchuk/aa-video/vision"
	"github.com/stolyarchuk/aa-video/zone"
)

// Service implements the contract from detector.proto. The inference
// operator is the only process-wide state; everything else lives per request.
type Service struct {
	pb.UnimplementedDetectorServiceServer
	detector inference.Detector
	cfg      config.Config
	logger   golog.Logger
}

// New constructs the gRPC service around an inference operator.
func New(detector inference.Detector, cfg config.Config, logger golog.Logger) *Service {
	return &Service{detector: detector, cfg: cfg, logger: logger}
}

// CheckHealth returns success while the server is serving.
func (s *Service) CheckHealth(ctx context.Context, req *pb.CheckHealthRequest) (*pb.CheckHealthResponse, error) {
	s.logger.Debug("health check passed")
	return &pb.CheckHealthResponse{}, nil
}

// ProcessFrame runs the detection-zone adjudication pipeline over one frame.
func (s *Service) ProcessFrame(ctx context.Context, req *pb.ProcessFrameRequest) (*pb.ProcessFrameResponse, error) {
	if s.detector == nil {
		return nil, status.Error(codes.FailedPrecondition, "inference operator is not initialized")
	}

	zones, err := decodeZones(req.GetPolygons(), s.logger)
	if err != nil {
		return nil, err
	}

	f, err := frame.FromProto(req.GetFrame())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad frame: %v", err)
	}
	img, err := f.ToImage()
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad frame: %v", err)
	}

	annotated, count, err := s.runPipeline(ctx, img, zones)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("processed frame", "detections", count, "zones", len(zones))
	return &pb.ProcessFrameResponse{
		Result:  frame.FromImage(annotated).ToProto(),
		Success: true,
	}, nil
}

// runPipeline executes the stage chain over a decoded frame. Stage order is
// strict: letterbox, inference, parse, NMS, un-letterbox, confidence filter,
// zone filter, render. Cancellation is polled between stages.
func (s *Service) runPipeline(
	ctx context.Context,
	img *image.NRGBA,
	zones []zone.Polygon,
) (image.Image, int, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	modelW, modelH := s.cfg.InputSize()

	// Model-space view of the zones, kept alongside the original-frame list.
	// The filter runs on original-frame coordinates after inverse
	// letterboxing; the scaled view mirrors what the network sees.
	scaled := scaleZones(zones, float64(modelW)/float64(w), float64(modelH)/float64(h))
	s.logger.Debugw("scaled zones to model space",
		"zones", len(scaled), "modelWidth", modelW, "modelHeight", modelH)

	lb := frame.NewLetterbox(w, h, modelW, modelH)
	canvas := lb.Apply(img, uint8(s.cfg.PadValue))

	if err := ctx.Err(); err != nil {
		return nil, 0, status.Error(codes.Canceled, "request cancelled")
	}

	out, err := s.detector.Infer(ctx, canvas)
	if err != nil {
		if ctx.Err() != nil {
			return nil, 0, status.Error(codes.Canceled, "request cancelled")
		}
		return nil, 0, status.Errorf(codes.Internal, "inference failed: %v", err)
	}

	detections, err := ml.ParseDetections(out, modelW, modelH, s.cfg.ScoreThreshold, s.logger)
	if err != nil {
		// Malformed output degrades to an empty detection list; the request
		// still succeeds with a zones-only annotated frame.
		s.logger.Warnw("could not parse network output", "error", err)
		detections = nil
	}

	detections = ml.NonMaxSuppression(detections, s.cfg.ScoreThreshold, s.cfg.NMSThreshold)

	for i := range detections {
		detections[i].BBox = lb.BoxToOriginal(detections[i].BBox)
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, status.Error(codes.Canceled, "request cancelled")
	}

	detections = vision.NewScoreFilter(s.cfg.Confidence)(detections)
	detections = newZoneFilter(zones).Filter(detections)

	return renderAnnotations(img, zones, detections), len(detections), nil
}

// decodeZones validates and orders the request's zones: Unspecified types
// are dropped with a warning, short vertex loops reject the request, and the
// survivors are sorted by descending priority, ties in input order.
func decodeZones(polygons []*pb.Polygon, logger golog.Logger) ([]zone.Polygon, error) {
	if len(polygons) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no polygons provided in request")
	}

	zones := make([]zone.Polygon, 0, len(polygons))
	for i, p := range polygons {
		z := zone.FromProto(p)
		if z.Type == zone.TypeUnspecified {
			logger.Warnw("skipping polygon with unspecified type", "index", i)
			continue
		}
		if len(z.Vertices) < 3 {
			return nil, status.Errorf(codes.InvalidArgument,
				"polygon at index %d has %d vertices, need at least 3", i, len(z.Vertices))
		}
		zones = append(zones, z)
	}
	if len(zones) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no valid polygons found")
	}

	sort.SliceStable(zones, func(a, b int) bool {
		return zones[a].Priority > zones[b].Priority
	})
	return zones, nil
}

// scaleZones returns a deep copy of zones with every vertex scaled.
func scaleZones(zones []zone.Polygon, sx, sy float64) []zone.Polygon {
	scaled := make([]zone.Polygon, 0, len(zones))
	for i := range zones {
		z := zones[i].Clone()
		z.Scale(sx, sy)
		scaled = append(scaled, z)
	}
	return scaled
}

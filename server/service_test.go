package server

import (
	"context"
	"image"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorgonia.org/tensor"

	"github.com/stolyarchuk/aa-video/config"
	"github.com/stolyarchuk/aa-video/frame"
	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

const anchorStride = 85

// fakeDetector returns a canned output tensor.
type fakeDetector struct {
	out *tensor.Dense
}

func (d *fakeDetector) Infer(ctx context.Context, img image.Image) (*tensor.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.out, nil
}

func (d *fakeDetector) InputSize() (int, int) { return 640, 640 }
func (d *fakeDetector) Close() error          { return nil }

// modelAnchor encodes one detection for a 640x480 frame letterboxed into a
// 640x640 canvas (scale 1, dy 80): the box is given in original-frame pixels.
func modelAnchor(x, y, w, h int, classID int, conf float32) []float32 {
	row := make([]float32, anchorStride)
	row[0] = (float32(x) + float32(w)/2) / 640.0
	row[1] = (float32(y)+float32(h)/2 + 80) / 640.0
	row[2] = float32(w) / 640.0
	row[3] = float32(h) / 640.0
	row[4] = conf
	row[5+classID] = 1.0
	return row
}

func anchorTensor(rows ...[]float32) *tensor.Dense {
	backing := []float32{}
	for _, r := range rows {
		backing = append(backing, r...)
	}
	return tensor.New(tensor.WithShape(1, len(rows), anchorStride), tensor.WithBacking(backing))
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Address = "localhost:0"
	cfg.Model = "yolov7-tiny.onnx"
	return cfg
}

func testFrame(t *testing.T) *pb.Frame {
	t.Helper()
	return frame.FromImage(image.NewNRGBA(image.Rect(0, 0, 640, 480))).ToProto()
}

func fullFramePolygon(typ pb.PolygonType, priority int32, classes ...int32) *pb.Polygon {
	return &pb.Polygon{
		Vertices: []*pb.Point{
			{X: 0, Y: 0}, {X: 640, Y: 0}, {X: 640, Y: 480}, {X: 0, Y: 480},
		},
		Type:          typ,
		Priority:      priority,
		TargetClasses: classes,
	}
}

func TestCheckHealth(t *testing.T) {
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	resp, err := svc.CheckHealth(context.Background(), &pb.CheckHealthRequest{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp, test.ShouldNotBeNil)
}

func TestProcessFrameKeepsDetectionInInclusionZone(t *testing.T) {
	det := &fakeDetector{out: anchorTensor(modelAnchor(100, 100, 50, 50, 0, 0.9))}
	svc := New(det, testConfig(), golog.NewTestLogger(t))

	resp, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1)},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetSuccess(), test.ShouldBeTrue)
	test.That(t, resp.GetResult().GetRows(), test.ShouldEqual, 480)
	test.That(t, resp.GetResult().GetCols(), test.ShouldEqual, 640)

	// The same request without any detections renders differently: the kept
	// detection leaves a box on the frame.
	empty := &fakeDetector{}
	svcEmpty := New(empty, testConfig(), golog.NewTestLogger(t))
	respEmpty, err := svcEmpty.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1)},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetResult().GetData(), test.ShouldNotResemble, respEmpty.GetResult().GetData())
}

func TestProcessFrameDropsDetectionInExclusionZone(t *testing.T) {
	det := &fakeDetector{out: anchorTensor(modelAnchor(300, 200, 40, 40, 5, 0.9))}
	svc := New(det, testConfig(), golog.NewTestLogger(t))

	resp, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_EXCLUSION, 1)},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetSuccess(), test.ShouldBeTrue)

	// Identical to a request that detected nothing: the box was dropped.
	respEmpty, err := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t)).
		ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
			Frame:    testFrame(t),
			Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_EXCLUSION, 1)},
		})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetResult().GetData(), test.ShouldResemble, respEmpty.GetResult().GetData())
}

func TestProcessFrameRejectsEmptyZoneList(t *testing.T) {
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{Frame: testFrame(t)})
	test.That(t, status.Code(err), test.ShouldEqual, codes.InvalidArgument)
}

func TestProcessFrameRejectsUnspecifiedOnlyZones(t *testing.T) {
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_UNSPECIFIED, 1)},
	})
	test.That(t, status.Code(err), test.ShouldEqual, codes.InvalidArgument)
}

func TestProcessFrameRejectsShortVertexLoop(t *testing.T) {
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame: testFrame(t),
		Polygons: []*pb.Polygon{{
			Vertices: []*pb.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
			Type:     pb.PolygonType_POLYGON_TYPE_INCLUSION,
		}},
	})
	test.That(t, status.Code(err), test.ShouldEqual, codes.InvalidArgument)
}

func TestProcessFrameRejectsBadFrame(t *testing.T) {
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    &pb.Frame{Rows: 10, Cols: 10, ElmSize: 3, Data: []byte{1, 2, 3}},
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1)},
	})
	test.That(t, status.Code(err), test.ShouldEqual, codes.InvalidArgument)
}

func TestProcessFrameWithoutDetectorFailsPrecondition(t *testing.T) {
	svc := New(nil, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{Frame: testFrame(t)})
	test.That(t, status.Code(err), test.ShouldEqual, codes.FailedPrecondition)
}

func TestProcessFrameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t))
	_, err := svc.ProcessFrame(ctx, &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1)},
	})
	test.That(t, status.Code(err), test.ShouldEqual, codes.Canceled)
}

func TestProcessFrameDegradesOnMalformedOutput(t *testing.T) {
	// A stride below 5 is unparseable; the request still succeeds with a
	// zones-only annotated frame.
	bad := tensor.New(tensor.WithShape(1, 4), tensor.WithBacking([]float32{1, 2, 3, 4}))
	svc := New(&fakeDetector{out: bad}, testConfig(), golog.NewTestLogger(t))
	resp, err := svc.ProcessFrame(context.Background(), &pb.ProcessFrameRequest{
		Frame:    testFrame(t),
		Polygons: []*pb.Polygon{fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1)},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetSuccess(), test.ShouldBeTrue)
	test.That(t, resp.GetResult(), test.ShouldNotBeNil)
}

func TestProcessFramePriorityAdjudicationEndToEnd(t *testing.T) {
	// Class-1 detection under a class-0 inclusion that outranks a class-1
	// inclusion: dropped, frame matches a no-detection render.
	det := &fakeDetector{out: anchorTensor(modelAnchor(100, 100, 50, 50, 1, 0.9))}
	svc := New(det, testConfig(), golog.NewTestLogger(t))
	req := func() *pb.ProcessFrameRequest {
		return &pb.ProcessFrameRequest{
			Frame: testFrame(t),
			Polygons: []*pb.Polygon{
				fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 10, 0),
				fullFramePolygon(pb.PolygonType_POLYGON_TYPE_INCLUSION, 1, 1),
			},
		}
	}
	resp, err := svc.ProcessFrame(context.Background(), req())
	test.That(t, err, test.ShouldBeNil)

	respEmpty, err := New(&fakeDetector{}, testConfig(), golog.NewTestLogger(t)).
		ProcessFrame(context.Background(), req())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, resp.GetResult().GetData(), test.ShouldResemble, respEmpty.GetResult().GetData())
}

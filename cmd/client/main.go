// Package main is a small detector client: it sends one image through
// ProcessFrame with a full-frame inclusion zone and saves the annotated
// result.
package main

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/stolyarchuk/aa-video/frame"
	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

var logger = golog.NewDevelopmentLogger("aa_video_client")

// Arguments for the command.
type Arguments struct {
	Address  string `flag:"address,default=localhost:8080,usage=server address"`
	Image    string `flag:"image,required,usage=path to the input image"`
	Output   string `flag:"out,default=result.png,usage=path for the annotated image"`
	Priority int    `flag:"priority,default=1,usage=priority of the full-frame inclusion zone"`
}

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) (err error) {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	file, err := os.Open(argsParsed.Image)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(file)
	if cerr := file.Close(); cerr != nil {
		return cerr
	}
	if err != nil {
		return errors.Wrapf(err, "could not decode %q", argsParsed.Image)
	}

	conn, err := grpc.NewClient(argsParsed.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, conn.Close())
	}()
	client := pb.NewDetectorServiceClient(conn)

	if _, err := client.CheckHealth(ctx, &pb.CheckHealthRequest{}); err != nil {
		return errors.Wrap(err, "server is not healthy")
	}

	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())
	req := &pb.ProcessFrameRequest{
		Frame: frame.FromImage(img).ToProto(),
		Polygons: []*pb.Polygon{{
			Vertices: []*pb.Point{
				{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
			},
			Type:     pb.PolygonType_POLYGON_TYPE_INCLUSION,
			Priority: int32(argsParsed.Priority),
		}},
	}

	resp, err := client.ProcessFrame(ctx, req)
	if err != nil {
		return err
	}
	result, err := frame.FromProto(resp.GetResult())
	if err != nil {
		return errors.Wrap(err, "bad result frame")
	}
	annotated, err := result.ToImage()
	if err != nil {
		return err
	}
	if err := imaging.Save(annotated, argsParsed.Output); err != nil {
		return err
	}

	logger.Infow("saved annotated frame", "path", argsParsed.Output, "success", resp.GetSuccess())
	return nil
}

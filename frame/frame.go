// Package frame converts wire frames to images and back, letterboxes images
// into the model input canvas, and provides the drawing primitives used to
// annotate results.
//
// Pixel data follows the OpenCV convention of the upstream producers: row
// major, three interleaved channels in BGR order, one byte per channel.
package frame

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	pb "github.com/stolyarchuk/aa-video/proto/api/detector/v1"
)

// ElmTypeBGR8 is the element type tag for 8-bit three-channel BGR pixels
// (CV_8UC3 in the producer's encoding).
const ElmTypeBGR8 = 16

// bgrElmSize is the byte width of one BGR8 pixel.
const bgrElmSize = 3

// Frame is a decoded wire frame. The pipeline owns its copy of Data for the
// duration of a request and draws annotations into that copy.
type Frame struct {
	Rows    int
	Cols    int
	ElmType int
	ElmSize int
	Data    []byte
}

// FromProto decodes a wire frame, validating that the payload length matches
// the declared geometry.
func FromProto(p *pb.Frame) (*Frame, error) {
	rows, cols := int(p.GetRows()), int(p.GetCols())
	elmSize := int(p.GetElmSize())
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("invalid frame size %dx%d", cols, rows)
	}
	if elmSize <= 0 {
		return nil, errors.Errorf("invalid frame element size %d", elmSize)
	}
	if len(p.GetData()) != rows*cols*elmSize {
		return nil, errors.Errorf("frame data length %d does not match %d rows x %d cols x %d bytes",
			len(p.GetData()), rows, cols, elmSize)
	}
	return &Frame{
		Rows:    rows,
		Cols:    cols,
		ElmType: int(p.GetElmType()),
		ElmSize: elmSize,
		Data:    append([]byte(nil), p.GetData()...),
	}, nil
}

// ToProto converts the frame to its wire form.
func (f *Frame) ToProto() *pb.Frame {
	return &pb.Frame{
		Rows:    int32(f.Rows),
		Cols:    int32(f.Cols),
		ElmType: int32(f.ElmType),
		ElmSize: int32(f.ElmSize),
		Data:    f.Data,
	}
}

// ToImage converts the BGR pixel buffer to an NRGBA image.
func (f *Frame) ToImage() (*image.NRGBA, error) {
	if f.ElmSize != bgrElmSize {
		return nil, errors.Errorf("unsupported element size %d, want %d (BGR8)", f.ElmSize, bgrElmSize)
	}
	img := image.NewNRGBA(image.Rect(0, 0, f.Cols, f.Rows))
	for y := 0; y < f.Rows; y++ {
		src := y * f.Cols * bgrElmSize
		dst := y * img.Stride
		for x := 0; x < f.Cols; x++ {
			img.Pix[dst+0] = f.Data[src+2]
			img.Pix[dst+1] = f.Data[src+1]
			img.Pix[dst+2] = f.Data[src+0]
			img.Pix[dst+3] = 0xff
			src += bgrElmSize
			dst += 4
		}
	}
	return img, nil
}

// FromImage encodes an image into a BGR8 frame.
func FromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]byte, w*h*bgrElmSize)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data[i+0] = c.B
			data[i+1] = c.G
			data[i+2] = c.R
			i += bgrElmSize
		}
	}
	return &Frame{
		Rows:    h,
		Cols:    w,
		ElmType: ElmTypeBGR8,
		ElmSize: bgrElmSize,
		Data:    data,
	}
}

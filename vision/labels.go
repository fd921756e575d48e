package vision

import (
	"fmt"
	"image/color"
)

// cocoClasses is the 80-entry COCO label table indexed by class id.
var cocoClasses = []string{
	"person", "bicycle", "car", "motorcycle", "airplane", "bus",
	"train", "truck", "boat", "traffic light", "fire hydrant", "stop sign",
	"parking meter", "bench", "bird", "cat", "dog", "horse",
	"sheep", "cow", "elephant", "bear", "zebra", "giraffe",
	"backpack", "umbrella", "handbag", "tie", "suitcase", "frisbee",
	"skis", "snowboard", "sports ball", "kite", "baseball bat", "baseball glove",
	"skateboard", "surfboard", "tennis racket", "bottle", "wine glass", "cup",
	"fork", "knife", "spoon", "bowl", "banana", "apple",
	"sandwich", "orange", "broccoli", "carrot", "hot dog", "pizza",
	"donut", "cake", "chair", "couch", "potted plant", "bed",
	"dining table", "toilet", "tv", "laptop", "mouse", "remote",
	"keyboard", "cell phone", "microwave", "oven", "toaster", "sink",
	"refrigerator", "book", "clock", "vase", "scissors", "teddy bear",
	"hair drier", "toothbrush",
}

// palette cycles per class when drawing boxes.
var palette = []color.NRGBA{
	{255, 0, 0, 255},     // red
	{0, 255, 0, 255},     // green
	{0, 0, 255, 255},     // blue
	{0, 255, 255, 255},   // cyan
	{255, 0, 255, 255},   // magenta
	{255, 255, 0, 255},   // yellow
	{128, 0, 128, 255},   // purple
	{255, 165, 0, 255},   // orange
	{255, 192, 203, 255}, // pink
	{0, 128, 0, 255},     // dark green
}

// NumClasses is the class count of the COCO label table.
const NumClasses = 80

// ClassName maps a class id to its COCO label, falling back to "class_{id}"
// when the id is out of range.
func ClassName(classID int) string {
	if classID >= 0 && classID < len(cocoClasses) {
		return cocoClasses[classID]
	}
	return fmt.Sprintf("class_%d", classID)
}

// ClassColor returns the palette color for a class id.
func ClassColor(classID int) color.NRGBA {
	if classID < 0 {
		classID = -classID
	}
	return palette[classID%len(palette)]
}

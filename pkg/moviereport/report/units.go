package report

import "math"

// PixelsPerPoint converts points to pixels at 96 DPI.
// 1 inch = 72 points, 1 inch = 96 pixels at 96 DPI.
const PixelsPerPoint = 96.0 / 72.0

// DefaultRowHeight is the default Excel row height in points.
const DefaultRowHeight = 15.0

// PointsToPixels converts a length in points to pixels at 96 DPI.
// Excel reports row heights in points.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt * PixelsPerPoint))
}

// fitScale returns the scale that makes an image of heightPx fit within
// limitPx. Images that already fit are not enlarged.
func fitScale(heightPx, limitPx int) float64 {
	if heightPx <= 0 || heightPx <= limitPx {
		return 1
	}
	return float64(limitPx) / float64(heightPx)
}

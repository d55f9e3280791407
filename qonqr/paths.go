package qonqr

import (
	"fmt"
	"strconv"
	"time"
)

// sinceFormat is the timestamp layout the GridReferenceStatus endpoint
// expects: YYYYMMDDHHMMSS.
const sinceFormat = "20060102150405"

// formatCoord renders a coordinate for a path segment. The service matches
// on the exact text, so this is the shortest representation that round-trips
// the float, never scientific notation and never rounded.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func statusPath(zoneID uint32) string {
	return fmt.Sprintf("Status/%d", zoneID)
}

func boundingBoxStatusPath(topLat, leftLon, bottomLat, rightLon float64) string {
	return fmt.Sprintf("BoundingBoxStatus/%s/%s/%s/%s",
		formatCoord(topLat), formatCoord(leftLon),
		formatCoord(bottomLat), formatCoord(rightLon))
}

func gridReferenceStatusPath(gridRef string, since time.Time) string {
	return fmt.Sprintf("GridReferenceStatus/%s/%s", gridRef, since.UTC().Format(sinceFormat))
}

func gridReferencePath(lat, lon float64) string {
	return fmt.Sprintf("GridReference/%s/%s", formatCoord(lat), formatCoord(lon))
}

func gridBreakdownPath(topLevel string) string {
	return "GridBreakdown/" + topLevel
}

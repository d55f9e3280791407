package qonqr

import (
	"context"
	"time"
)

// API defines the interface for zones API operations
type API interface {
	// ZoneStatus retrieves the current status of a single zone
	ZoneStatus(ctx context.Context, zoneID uint32) (*Zone, error)

	// ZonesByBoundingBox retrieves zones inside a bounding box
	ZonesByBoundingBox(ctx context.Context, topLat, leftLon, bottomLat, rightLon float64) (*ZoneList, error)

	// ZonesByGridReference retrieves zones in a grid cell changed since an instant
	ZonesByGridReference(ctx context.Context, gridRef string, since time.Time) (*ZoneList, error)

	// LocateGridReference resolves a coordinate to its grid reference
	LocateGridReference(ctx context.Context, lat, lon float64) (*GridLocation, error)

	// GridBreakdown lists the sub-quadrants of a top-level grid cell
	GridBreakdown(ctx context.Context, topLevel string) ([]GridArea, error)
}

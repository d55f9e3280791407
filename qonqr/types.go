package qonqr

import "time"

// Faction represents the controlling faction of a zone
type Faction int

const (
	// FactionUncontrolled indicates no faction holds the zone
	FactionUncontrolled Faction = iota
	// FactionLegion indicates the Legion holds the zone
	FactionLegion
	// FactionSwarm indicates the Swarm holds the zone
	FactionSwarm
	// FactionFaceless indicates the Faceless hold the zone
	FactionFaceless
)

// String returns the string representation of a Faction
func (f Faction) String() string {
	switch f {
	case FactionLegion:
		return "Legion"
	case FactionSwarm:
		return "Swarm"
	case FactionFaceless:
		return "Faceless"
	default:
		return "Uncontrolled"
	}
}

// Zone represents the status of a single zone as reported by the API.
// Zones are snapshots: the service does not push updates, so every field
// reflects the moment the response was produced.
type Zone struct {
	ID            uint32    `json:"ZoneId"`
	Name          string    `json:"ZoneName"`
	RegionID      int       `json:"RegionId"`
	RegionName    string    `json:"RegionName"`
	CountryID     int       `json:"CountryId"`
	CountryName   string    `json:"CountryName"`
	CountryCode   string    `json:"CountryCode"`
	Latitude      float64   `json:"Latitude"`
	Longitude     float64   `json:"Longitude"`
	ControlState  Faction   `json:"ControlState"`
	DateCaptured  time.Time `json:"DateCapturedUtc"`
	LeaderSince   time.Time `json:"LeaderSinceDateUtc"`
	LegionCount   int       `json:"LegionCount"`
	SwarmCount    int       `json:"SwarmCount"`
	FacelessCount int       `json:"FacelessCount"`
	LastUpdate    time.Time `json:"LastUpdateDateUtc"`
}

// CountFor returns the bot count the given faction has deployed in the zone
func (z *Zone) CountFor(f Faction) int {
	switch f {
	case FactionLegion:
		return z.LegionCount
	case FactionSwarm:
		return z.SwarmCount
	case FactionFaceless:
		return z.FacelessCount
	default:
		return 0
	}
}

// IsContested reports whether more than one faction has bots in the zone
func (z *Zone) IsContested() bool {
	present := 0
	for _, n := range []int{z.LegionCount, z.SwarmCount, z.FacelessCount} {
		if n > 0 {
			present++
		}
	}
	return present > 1
}

// Point is a geographic coordinate in decimal degrees
type Point struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// BoundingBox describes a rectangular geographic span. Top must not be
// below Bottom; Left/Right may wrap the antimeridian.
type BoundingBox struct {
	TopLatitude    float64 `json:"TopLatitude"`
	LeftLongitude  float64 `json:"LeftLongitude"`
	BottomLatitude float64 `json:"BottomLatitude"`
	RightLongitude float64 `json:"RightLongitude"`
}

// GridLocation is a grid reference together with the coordinate it was
// derived from
type GridLocation struct {
	GridReference string  `json:"GridReference"`
	Latitude      float64 `json:"Latitude"`
	Longitude     float64 `json:"Longitude"`
}

// Origin returns the coordinate the grid reference was derived from
func (g *GridLocation) Origin() Point {
	return Point{Latitude: g.Latitude, Longitude: g.Longitude}
}

// GridArea is one cell of a grid breakdown: a reference string plus the
// bounding box it covers
type GridArea struct {
	GridReference string `json:"GridReference"`
	BoundingBox
}

// GridBreakdownResponse is the envelope returned by the GridBreakdown
// endpoint
type GridBreakdownResponse struct {
	GridDetails []GridArea `json:"gridDetails"`
}

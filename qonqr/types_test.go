package qonqr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactionString(t *testing.T) {
	tests := []struct {
		faction  Faction
		expected string
	}{
		{FactionUncontrolled, "Uncontrolled"},
		{FactionLegion, "Legion"},
		{FactionSwarm, "Swarm"},
		{FactionFaceless, "Faceless"},
		{Faction(99), "Uncontrolled"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.faction.String())
		})
	}
}

func TestZoneCountFor(t *testing.T) {
	zone := Zone{LegionCount: 10, SwarmCount: 20, FacelessCount: 30}

	assert.Equal(t, 10, zone.CountFor(FactionLegion))
	assert.Equal(t, 20, zone.CountFor(FactionSwarm))
	assert.Equal(t, 30, zone.CountFor(FactionFaceless))
	assert.Equal(t, 0, zone.CountFor(FactionUncontrolled))
}

func TestZoneIsContested(t *testing.T) {
	assert.False(t, (&Zone{}).IsContested())
	assert.False(t, (&Zone{SwarmCount: 500}).IsContested())
	assert.True(t, (&Zone{LegionCount: 1, FacelessCount: 1}).IsContested())
}

func TestGridAreaUnmarshal(t *testing.T) {
	body := `{
		"GridReference": "16S1H",
		"TopLatitude": 36.5,
		"BottomLatitude": 35.0,
		"LeftLongitude": -85.0,
		"RightLongitude": -83.0
	}`

	var area GridArea
	require.NoError(t, json.Unmarshal([]byte(body), &area))

	assert.Equal(t, "16S1H", area.GridReference)
	assert.Equal(t, 36.5, area.TopLatitude)
	assert.Equal(t, -83.0, area.RightLongitude)
	assert.GreaterOrEqual(t, area.TopLatitude, area.BottomLatitude)
}

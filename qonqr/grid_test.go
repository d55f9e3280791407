package qonqr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidGridReference(t *testing.T) {
	tests := []struct {
		ref   string
		valid bool
	}{
		{"16S", true},
		{"7A", true},
		{"15T1H5S3Q", true},
		{"16S1H6S4Q", true},
		{"16S1H", true},
		{"", false},
		{"16", false},
		{"123A", false},
		{"S16", false},
		{"16S1", false},
		{"16S11", false},
		{"16 S", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidGridReference(tt.ref))
		})
	}
}

func TestValidTopLevelGrid(t *testing.T) {
	tests := []struct {
		ref   string
		valid bool
	}{
		{"16S", true},
		{"7A", true},
		{"7a", true},
		{"bad!", false},
		{"123A", false},
		{"16", false},
		{"16S1H", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidTopLevelGrid(tt.ref))
		})
	}
}

func TestPathBuilders(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		assert.Equal(t, "Status/2386", statusPath(2386))
	})

	t.Run("bounding box keeps full precision", func(t *testing.T) {
		got := boundingBoxStatusPath(36.096077, -84.127366, 36.009494, -84.001024)
		assert.Equal(t, "BoundingBoxStatus/36.096077/-84.127366/36.009494/-84.001024", got)
	})

	t.Run("bounding box whole numbers stay plain", func(t *testing.T) {
		got := boundingBoxStatusPath(36, -84, 35, -83.5)
		assert.Equal(t, "BoundingBoxStatus/36/-84/35/-83.5", got)
	})

	t.Run("grid reference status formats since in UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		since := time.Date(2013, 1, 5, 7, 34, 56, 0, est)
		got := gridReferenceStatusPath("16S", since)
		assert.Equal(t, "GridReferenceStatus/16S/20130105123456", got)
	})

	t.Run("grid reference lookup", func(t *testing.T) {
		assert.Equal(t, "GridReference/35.5/-83.25", gridReferencePath(35.5, -83.25))
	})

	t.Run("grid breakdown", func(t *testing.T) {
		assert.Equal(t, "GridBreakdown/16S", gridBreakdownPath("16S"))
	})
}

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{36.096077, "36.096077"},
		{-84.001024, "-84.001024"},
		{0, "0"},
		{-0.5, "-0.5"},
		{0.000001, "0.000001"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCoord(tt.in))
	}
}

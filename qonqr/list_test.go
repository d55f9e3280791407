package qonqr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeZones() *ZoneList {
	return NewZoneList([]Zone{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Bravo"},
		{ID: 3, Name: "Charlie"},
	})
}

func TestZoneListIteration(t *testing.T) {
	list := threeZones()
	it := list.Iter()

	for want := uint32(1); want <= 3; want++ {
		require.True(t, it.Next())
		assert.Equal(t, want, it.Zone().ID)
	}

	assert.False(t, it.Next())
	// Exhausted iterators stay exhausted
	assert.False(t, it.Next())
}

func TestZoneListReset(t *testing.T) {
	list := threeZones()
	it := list.Iter()

	for it.Next() {
	}

	it.Reset()
	require.True(t, it.Next())
	assert.Equal(t, "Alpha", it.Zone().Name)
}

func TestZoneListIndexIndependentOfCursor(t *testing.T) {
	list := threeZones()
	it := list.Iter()

	require.True(t, it.Next())
	assert.Equal(t, "Bravo", list.At(1).Name)
	// Indexing did not move the cursor
	require.True(t, it.Next())
	assert.Equal(t, "Bravo", it.Zone().Name)
}

func TestZoneListIndependentIterators(t *testing.T) {
	list := threeZones()

	a := list.Iter()
	b := list.Iter()

	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())

	assert.Equal(t, "Bravo", a.Zone().Name)
	assert.Equal(t, "Alpha", b.Zone().Name)
}

func TestZoneIteratorOutOfRange(t *testing.T) {
	list := threeZones()

	t.Run("before first Next", func(t *testing.T) {
		it := list.Iter()
		assert.Panics(t, func() { it.Zone() })
	})

	t.Run("after exhaustion", func(t *testing.T) {
		it := list.Iter()
		for it.Next() {
		}
		assert.Panics(t, func() { it.Zone() })
	})
}

func TestZoneListEmpty(t *testing.T) {
	list := NewZoneList(nil)

	assert.Equal(t, 0, list.Len())
	assert.False(t, list.Iter().Next())
	assert.Panics(t, func() { list.At(0) })
}

func TestZoneListUnmarshal(t *testing.T) {
	body := `{"ZoneCount": 2, "Zones": [{"ZoneId": 7, "ZoneName": "Seven"}, {"ZoneId": 8, "ZoneName": "Eight"}]}`

	var list ZoneList
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	assert.Equal(t, 2, list.Count)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "Seven", list.At(0).Name)
	assert.Equal(t, "Eight", list.At(1).Name)
	assert.Len(t, list.Zones(), 2)
}

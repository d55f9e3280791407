package qonqr

import "encoding/json"

// MaxZonesPerResponse is the service-imposed cap on zones in a single
// response
const MaxZonesPerResponse = 500

// ZoneList is an ordered, read-only sequence of zones as returned by the
// collection endpoints. Order is the service's order (most recently updated
// first). The list itself carries no cursor; call Iter for one.
type ZoneList struct {
	// Count is the zone count reported by the service alongside the array
	Count int

	zones []Zone
}

// zoneListJSON mirrors the wire envelope
type zoneListJSON struct {
	Count int    `json:"ZoneCount"`
	Zones []Zone `json:"Zones"`
}

// NewZoneList builds a list from already-decoded zones. The slice is not
// copied; callers hand over ownership.
func NewZoneList(zones []Zone) *ZoneList {
	return &ZoneList{Count: len(zones), zones: zones}
}

// UnmarshalJSON decodes the ZoneCount/Zones envelope
func (l *ZoneList) UnmarshalJSON(data []byte) error {
	var raw zoneListJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.Count = raw.Count
	l.zones = raw.Zones
	return nil
}

// Len returns the number of zones in the list
func (l *ZoneList) Len() int {
	return len(l.zones)
}

// At returns a copy of the zone at position i. It panics if i is out of
// range, the same as indexing a slice.
func (l *ZoneList) At(i int) Zone {
	return l.zones[i]
}

// Zones returns the backing slice. Mutating it mutates the list; most
// callers should treat the result as read-only.
func (l *ZoneList) Zones() []Zone {
	return l.zones
}

// Iter returns a new iterator positioned before the first zone. Each call
// returns an independent iterator, so concurrent iterations over the same
// list do not interfere.
func (l *ZoneList) Iter() *ZoneIterator {
	return &ZoneIterator{list: l, pos: -1}
}

// ZoneIterator is a forward-only cursor over a ZoneList
type ZoneIterator struct {
	list *ZoneList
	pos  int
}

// Next advances the cursor and reports whether a current zone exists
func (it *ZoneIterator) Next() bool {
	if it.pos >= it.list.Len() {
		return false
	}
	it.pos++
	return it.pos < it.list.Len()
}

// Zone returns the zone under the cursor. It panics unless the previous
// Next call returned true.
func (it *ZoneIterator) Zone() Zone {
	if it.pos < 0 || it.pos >= it.list.Len() {
		panic("qonqr: ZoneIterator.Zone called out of range")
	}
	return it.list.zones[it.pos]
}

// Reset moves the cursor back before the first zone
func (it *ZoneIterator) Reset() {
	it.pos = -1
}

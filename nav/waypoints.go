// nav/waypoints.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/util"
)

// WaypointID is a durable waypoint identity. IDs are assigned at creation
// and never reused, even after the waypoint is removed, so a stale ID held
// by a map marker can never silently alias a newer waypoint. External
// collaborators must reference waypoints by ID, never by list position.
type WaypointID int32

type Waypoint struct {
	ID       WaypointID
	Name     string
	Location math.Point2LL
}

// WaypointStore owns the ordered waypoint sequence of a flight plan. It
// is arena-style: waypoint data lives in a map keyed by ID and the leg
// order is tracked separately, so reordering and identity are independent
// concerns. The store expects a single writer; it does no locking itself.
type WaypointStore struct {
	waypoints map[WaypointID]*Waypoint
	order     []WaypointID
	nextID    WaypointID
}

func NewWaypointStore() *WaypointStore {
	return &WaypointStore{
		waypoints: make(map[WaypointID]*Waypoint),
		nextID:    1,
	}
}

// InsertAt inserts a new waypoint at the given position in the sequence,
// clamping index to [0, Len()], and returns its ID.
func (s *WaypointStore) InsertAt(index int, name string, pos math.Point2LL) WaypointID {
	id := s.nextID
	s.nextID++

	s.waypoints[id] = &Waypoint{ID: id, Name: name, Location: pos}
	index = math.Clamp(index, 0, len(s.order))
	s.order = util.InsertSliceElement(s.order, index, id)

	return id
}

// Append adds a new waypoint at the end of the sequence.
func (s *WaypointStore) Append(name string, pos math.Point2LL) WaypointID {
	return s.InsertAt(len(s.order), name, pos)
}

// MoveTo repositions the waypoint in place, without changing its identity
// or its position in the sequence. It reports whether the ID was found; a
// stale ID is a no-op, since drag events for a just-deleted marker may
// still arrive.
func (s *WaypointStore) MoveTo(id WaypointID, pos math.Point2LL) bool {
	wp, ok := s.waypoints[id]
	if ok {
		wp.Location = pos
	}
	return ok
}

// Rename changes the waypoint's display name; names are not required to
// be unique. Stale IDs are a no-op.
func (s *WaypointStore) Rename(id WaypointID, name string) bool {
	wp, ok := s.waypoints[id]
	if ok {
		wp.Name = name
	}
	return ok
}

// Remove deletes the waypoint with the given ID from the sequence.
// Removing an unknown or already-removed ID is a no-op (duplicate delete
// gestures must not surface an error to the user).
func (s *WaypointStore) Remove(id WaypointID) bool {
	if _, ok := s.waypoints[id]; !ok {
		return false
	}
	delete(s.waypoints, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = util.DeleteSliceElement(s.order, i)
			break
		}
	}
	return true
}

func (s *WaypointStore) Get(id WaypointID) (Waypoint, bool) {
	if wp, ok := s.waypoints[id]; ok {
		return *wp, true
	}
	return Waypoint{}, false
}

// List returns the waypoints in sequence order. The returned slice is a
// copy; mutating it does not affect the store.
func (s *WaypointStore) List() []Waypoint {
	return util.MapSlice(s.order, func(id WaypointID) Waypoint {
		return *s.waypoints[id]
	})
}

func (s *WaypointStore) Len() int {
	return len(s.order)
}

// nav/session.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"time"

	"github.com/pelorus-nav/pelorus/aviation"
	"github.com/pelorus-nav/pelorus/log"
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/util"

	"github.com/brunoga/deep"
)

const maxUndoDepth = 64

// Session owns the mutable state of one planning session: the flight
// plan, the waypoint store, and the route derived from them. All
// mutations go through the Session so that every change posts an event
// and triggers a full route recomputation; consumers only ever observe a
// route that is consistent with the current plan.
//
// The session assumes the single-threaded cooperative model of a UI event
// loop: one writer, synchronous recomputation. A host that plans from
// multiple goroutines must serialize access to the session.
type Session struct {
	lg      *log.Logger
	store   *WaypointStore
	plan    FlightPlan
	builder RouteBuilder
	stream  *EventStream
	route   Route
	undo    []planSnapshot
}

type planSnapshot struct {
	Plan      FlightPlan
	Waypoints []Waypoint
	NextID    WaypointID
}

func NewSession(builder RouteBuilder, lg *log.Logger) *Session {
	return &Session{
		lg:      lg,
		store:   NewWaypointStore(),
		builder: builder,
		stream:  NewEventStream(lg),
	}
}

///////////////////////////////////////////////////////////////////////////
// Read access

// Route returns the most recently computed route. It is recomputed after
// every mutation, so it always reflects the session's current state.
func (s *Session) Route() Route { return s.route }

// Plan returns a copy of the current flight plan.
func (s *Session) Plan() FlightPlan { return s.plan }

// Waypoints returns the waypoint sequence in order.
func (s *Session) Waypoints() []Waypoint { return s.store.List() }

// Waypoint looks up a single waypoint by identity.
func (s *Session) Waypoint(id WaypointID) (Waypoint, bool) { return s.store.Get(id) }

// Events returns the session's event stream for subscription.
func (s *Session) Events() *EventStream { return s.stream }

///////////////////////////////////////////////////////////////////////////
// Waypoint mutation

func (s *Session) InsertWaypointAt(index int, name string, pos math.Point2LL) WaypointID {
	s.pushUndo()
	id := s.store.InsertAt(index, name, pos)
	s.changed(Event{Type: WaypointAddedEvent, WaypointID: id})
	return id
}

func (s *Session) AppendWaypoint(name string, pos math.Point2LL) WaypointID {
	return s.InsertWaypointAt(s.store.Len(), name, pos)
}

func (s *Session) MoveWaypoint(id WaypointID, pos math.Point2LL) {
	s.pushUndo()
	if !s.store.MoveTo(id, pos) {
		s.popUndo()
		s.lg.Debugf("move of unknown waypoint %d ignored", id)
		return
	}
	s.changed(Event{Type: WaypointMovedEvent, WaypointID: id})
}

func (s *Session) RenameWaypoint(id WaypointID, name string) {
	s.pushUndo()
	if !s.store.Rename(id, name) {
		s.popUndo()
		s.lg.Debugf("rename of unknown waypoint %d ignored", id)
		return
	}
	s.changed(Event{Type: WaypointRenamedEvent, WaypointID: id})
}

func (s *Session) RemoveWaypoint(id WaypointID) {
	s.pushUndo()
	if !s.store.Remove(id) {
		s.popUndo()
		s.lg.Debugf("removal of unknown waypoint %d ignored", id)
		return
	}
	s.changed(Event{Type: WaypointRemovedEvent, WaypointID: id})
}

///////////////////////////////////////////////////////////////////////////
// Plan mutation

func (s *Session) SetDeparture(ab *aviation.Airbase) {
	s.amendPlan(func(fp *FlightPlan) { fp.Departure = ab })
}

func (s *Session) SetArrival(ab *aviation.Airbase) {
	s.amendPlan(func(fp *FlightPlan) { fp.Arrival = ab })
}

func (s *Session) SetCruiseSpeed(kt float32) {
	s.amendPlan(func(fp *FlightPlan) { fp.CruiseSpeedKt = kt })
}

func (s *Session) SetAltitude(ft float32) {
	s.amendPlan(func(fp *FlightPlan) { fp.AltitudeFt = ft })
}

func (s *Session) SetTakeoffTime(t time.Time) {
	s.amendPlan(func(fp *FlightPlan) { fp.TakeoffTime = t })
}

func (s *Session) amendPlan(mutate func(*FlightPlan)) {
	s.pushUndo()
	mutate(&s.plan)
	s.changed(Event{Type: PlanAmendedEvent})
}

///////////////////////////////////////////////////////////////////////////
// Undo

func (s *Session) pushUndo() {
	snap := deep.MustCopy(planSnapshot{
		Plan:      s.plan,
		Waypoints: s.store.List(),
		NextID:    s.store.nextID,
	})
	if len(s.undo) == maxUndoDepth {
		s.undo = util.DeleteSliceElement(s.undo, 0)
	}
	s.undo = append(s.undo, snap)
}

// popUndo discards the most recent snapshot; used when a mutation turned
// out to be a no-op.
func (s *Session) popUndo() {
	s.undo = s.undo[:len(s.undo)-1]
}

// Undo restores the session to its state before the most recent mutation.
// It reports whether there was anything to undo. Restored waypoints keep
// their original IDs; the ID allocator never moves backward, so IDs of
// waypoints created after the snapshot are still never reused.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	snap := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	s.restore(snap)
	return true
}

func (s *Session) restore(snap planSnapshot) {
	// The allocator never moves backward, even when the snapshot predates
	// waypoints that have since been created: their IDs must stay retired.
	nextID := math.Max(s.store.nextID, snap.NextID)

	s.plan = snap.Plan
	s.store = NewWaypointStore()
	for _, wp := range snap.Waypoints {
		s.store.waypoints[wp.ID] = &Waypoint{ID: wp.ID, Name: wp.Name, Location: wp.Location}
		s.store.order = append(s.store.order, wp.ID)
	}
	s.store.nextID = nextID

	s.route = s.builder.Compute(&s.plan, s.store.List())
	s.stream.Post(Event{Type: PlanRestoredEvent})
}

///////////////////////////////////////////////////////////////////////////
// Persistence

// Save stores the current plan and waypoints in the user's cache
// directory so an interrupted planning session can be picked up again.
// This is a convenience cache, not a durable store; no transactional
// guarantees are made.
func (s *Session) Save(name string) error {
	return util.CacheStoreObject(name, planSnapshot{
		Plan:      s.plan,
		Waypoints: s.store.List(),
		NextID:    s.store.nextID,
	})
}

// Restore replaces the session's state with a previously saved one. The
// undo stack is cleared; undo does not cross a restore.
func (s *Session) Restore(name string) error {
	var snap planSnapshot
	if _, err := util.CacheRetrieveObject(name, &snap); err != nil {
		return err
	}

	s.undo = nil
	s.restore(snap)
	return nil
}

///////////////////////////////////////////////////////////////////////////

func (s *Session) changed(ev Event) {
	s.route = s.builder.Compute(&s.plan, s.store.List())
	s.stream.Post(ev)
}

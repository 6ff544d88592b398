// edit/controller.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package edit

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pelorus-nav/pelorus/aviation"
	"github.com/pelorus-nav/pelorus/log"
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/nav"
)

// Config holds the controller's tunables.
type Config struct {
	// LongPressThreshold is how long the pointer must stay down, without
	// moving, before a long press fires.
	LongPressThreshold time.Duration

	// NearbyNavaids is how many navaids the cursor readout reports.
	NearbyNavaids int
}

func DefaultConfig() Config {
	return Config{
		LongPressThreshold: time.Second,
		NearbyNavaids:      3,
	}
}

// The long-press gesture is an explicit two-state machine rather than a
// collection of timer and boolean flags: Idle, or armed with a single
// pending deadline. Arming replaces any earlier deadline, so at most one
// timer is ever outstanding; pointer-up or pointer-move disarms.
type gestureState int

const (
	gestureIdle gestureState = iota
	gestureArmed
)

// CursorInfo is the live pointer readout for the presentation layer: the
// pointer's geographic position plus the nearest navaids to it.
type CursorInfo struct {
	Position math.Point2LL
	Valid    bool // false until the pointer has moved over the map
	Nearest  []aviation.NavaidDistance
}

// Controller turns raw pointer gestures and form input into planning
// session mutations. It is the session's only writer. Positions arrive
// already projected to geographic coordinates; screen-space hit testing
// and the visual drag position belong to the presentation layer.
//
// The controller is poll-driven: the host event loop forwards pointer
// events as they arrive and calls Tick with the current time each frame
// so that a pending long press can fire.
type Controller struct {
	lg      *log.Logger
	session *nav.Session
	index   *aviation.NavaidIndex
	config  Config

	state    gestureState
	deadline time.Time
	pressPos math.Point2LL

	cursor CursorInfo

	seq int // sequence number for generated waypoint names
}

func NewController(session *nav.Session, index *aviation.NavaidIndex, config Config,
	lg *log.Logger) *Controller {
	if config.LongPressThreshold <= 0 {
		config.LongPressThreshold = DefaultConfig().LongPressThreshold
	}
	if config.NearbyNavaids <= 0 {
		config.NearbyNavaids = DefaultConfig().NearbyNavaids
	}
	return &Controller{
		lg:      lg,
		session: session,
		index:   index,
		config:  config,
	}
}

///////////////////////////////////////////////////////////////////////////
// Pointer gestures

// PointerDown arms the long-press timer at the given position. Any
// earlier pending timer is superseded.
func (c *Controller) PointerDown(p math.Point2LL, now time.Time) {
	c.state = gestureArmed
	c.pressPos = p
	c.deadline = now.Add(c.config.LongPressThreshold)
}

// PointerMove updates the live cursor readout and cancels a pending long
// press: once the pointer moves, the gesture is a drag or a pan, not a
// press.
func (c *Controller) PointerMove(p math.Point2LL) {
	c.cursor = CursorInfo{
		Position: p,
		Valid:    true,
		Nearest:  c.index.Nearest(p, c.config.NearbyNavaids),
	}
	c.state = gestureIdle
}

// PointerUp cancels a pending long press; a short click places nothing.
func (c *Controller) PointerUp(now time.Time) {
	c.state = gestureIdle
}

// Tick fires the long press if its deadline has passed. The host calls
// this from its event loop; firing appends a waypoint at the position
// where the pointer went down and returns the new waypoint's id.
func (c *Controller) Tick(now time.Time) (nav.WaypointID, bool) {
	if c.state != gestureArmed || now.Before(c.deadline) {
		return 0, false
	}
	c.state = gestureIdle

	id := c.session.AppendWaypoint(c.nextName(), c.pressPos)
	c.lg.Debugf("long press placed waypoint %d at %s", id, c.pressPos.DMSString())
	return id, true
}

// DoubleClick appends a waypoint at the given position immediately,
// bypassing the long-press timer (and cancelling it if pending).
func (c *Controller) DoubleClick(p math.Point2LL) nav.WaypointID {
	c.state = gestureIdle
	return c.session.AppendWaypoint(c.nextName(), p)
}

// EndDrag repositions an existing waypoint at the end of a marker drag.
// Nothing is written to the store during the drag itself.
func (c *Controller) EndDrag(id nav.WaypointID, p math.Point2LL) {
	c.session.MoveWaypoint(id, p)
}

// Cursor returns the most recent pointer readout.
func (c *Controller) Cursor() CursorInfo {
	return c.cursor
}

func (c *Controller) nextName() string {
	c.seq++
	return fmt.Sprintf("WP%d", c.seq)
}

///////////////////////////////////////////////////////////////////////////
// Form placement

// PlaceAtNavaid appends a waypoint derived from a navaid: at the navaid
// itself when no usable bearing and distance are given, otherwise
// projected from the navaid along the given magnetic radial. Bearing or
// distance input that doesn't parse as a number is treated as absent, not
// as an error; that's long-standing behavior the form relies on.
func (c *Controller) PlaceAtNavaid(navaidID, bearingStr, distanceStr string) (nav.WaypointID, error) {
	navaid, ok := c.index.Resolve(navaidID)
	if !ok {
		return 0, fmt.Errorf("%s: %w", navaidID, aviation.ErrUnknownNavaid)
	}

	bearing, berr := strconv.ParseFloat(bearingStr, 32)
	distance, derr := strconv.ParseFloat(distanceStr, 32)
	if berr != nil || derr != nil {
		return c.session.AppendWaypoint(navaid.Name, navaid.Location), nil
	}

	p := math.Offset2LLGreatCircle(navaid.Location, float32(bearing), float32(distance))
	name := fmt.Sprintf("%s%03d/%d", navaid.ID, int(bearing)%360, int(distance))
	return c.session.AppendWaypoint(name, p), nil
}

// PlaceAtCoordinates appends a waypoint at coordinates the user typed,
// either fixed-width sexagesimal (DDMMSS / DDDMMSS) or decimal degrees.
// On a parse failure nothing is placed and the error is user-visible.
func (c *Controller) PlaceAtCoordinates(latStr, lonStr string) (nav.WaypointID, error) {
	p, err := ParseLatLong(latStr, lonStr)
	if err != nil {
		c.lg.Debugf("rejected coordinate input %q/%q: %v", latStr, lonStr, err)
		return 0, err
	}
	return c.session.AppendWaypoint(c.nextName(), p), nil
}

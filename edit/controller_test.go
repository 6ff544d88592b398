// edit/controller_test.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package edit

import (
	"errors"
	"testing"
	"time"

	"github.com/pelorus-nav/pelorus/aviation"
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/nav"

	"github.com/iancoleman/orderedmap"
)

func makeTestController(t *testing.T) (*Controller, *nav.Session, *aviation.NavaidIndex) {
	t.Helper()

	om := orderedmap.New()
	for _, n := range []aviation.Navaid{
		{ID: "TYE", Name: "YOKOTA", Location: math.Point2LL{139.344, 35.7578}, Type: aviation.NavaidVORTAC, Channel: "109X"},
		{ID: "HME", Name: "HAMAMATSU", Location: math.Point2LL{137.665, 34.7503}, Type: aviation.NavaidTACAN, Channel: "56X"},
		{ID: "YTE", Name: "MIYAKEJIMA", Location: math.Point2LL{139.504, 34.1103}, Type: aviation.NavaidVORTAC, Channel: "85X"},
	} {
		om.Set(n.ID, n)
	}
	index := aviation.BuildNavaidIndex(&aviation.StaticDatabase{Navaids: om})

	session := nav.NewSession(nav.RouteBuilder{}, nil)
	session.SetDeparture(&aviation.Airbase{ID: "RJTY", Name: "YOKOTA AB", Location: math.Point2LL{139.348, 35.7485}})
	session.SetArrival(&aviation.Airbase{ID: "RJTT", Name: "TOKYO INTL", Location: math.Point2LL{139.781, 35.5533}})
	session.SetCruiseSpeed(300)

	return NewController(session, index, DefaultConfig(), nil), session, index
}

func TestLongPressFiresAfterDeadline(t *testing.T) {
	c, session, _ := makeTestController(t)

	t0 := time.Now()
	p := math.Point2LL{139.5, 35.5}
	c.PointerDown(p, t0)

	if _, fired := c.Tick(t0.Add(time.Second / 2)); fired {
		t.Errorf("long press fired before the deadline")
	}
	id, fired := c.Tick(t0.Add(2 * time.Second))
	if !fired {
		t.Fatalf("long press didn't fire after the deadline")
	}

	wp, ok := session.Waypoint(id)
	if !ok {
		t.Fatalf("returned waypoint id %d not in session", id)
	}
	if wp.Location != p {
		t.Errorf("waypoint placed at %v, pointer went down at %v", wp.Location, p)
	}

	// Firing consumes the gesture.
	if _, fired := c.Tick(t0.Add(time.Minute)); fired {
		t.Errorf("long press fired twice")
	}
	if n := len(session.Waypoints()); n != 1 {
		t.Errorf("expected 1 waypoint, got %d", n)
	}
}

func TestPointerMoveCancelsLongPress(t *testing.T) {
	c, session, _ := makeTestController(t)

	t0 := time.Now()
	c.PointerDown(math.Point2LL{139.5, 35.5}, t0)
	c.PointerMove(math.Point2LL{139.6, 35.6})

	if _, fired := c.Tick(t0.Add(time.Minute)); fired {
		t.Errorf("long press fired after the pointer moved")
	}
	if n := len(session.Waypoints()); n != 0 {
		t.Errorf("expected no waypoints, got %d", n)
	}
}

func TestPointerUpCancelsLongPress(t *testing.T) {
	c, session, _ := makeTestController(t)

	t0 := time.Now()
	c.PointerDown(math.Point2LL{139.5, 35.5}, t0)
	c.PointerUp(t0.Add(time.Second / 4))

	if _, fired := c.Tick(t0.Add(time.Minute)); fired {
		t.Errorf("long press fired after pointer up")
	}
	if n := len(session.Waypoints()); n != 0 {
		t.Errorf("expected no waypoints, got %d", n)
	}
}

func TestSecondPressSupersedesFirst(t *testing.T) {
	c, session, _ := makeTestController(t)

	t0 := time.Now()
	c.PointerDown(math.Point2LL{139.5, 35.5}, t0)
	// Press again half a second later, elsewhere: the first deadline no
	// longer applies.
	p2 := math.Point2LL{140, 36}
	c.PointerDown(p2, t0.Add(time.Second/2))

	if _, fired := c.Tick(t0.Add(time.Second + time.Second/4)); fired {
		t.Errorf("superseded press's deadline still fired")
	}
	id, fired := c.Tick(t0.Add(2 * time.Second))
	if !fired {
		t.Fatalf("second press never fired")
	}
	if wp, _ := session.Waypoint(id); wp.Location != p2 {
		t.Errorf("waypoint placed at %v, second press was at %v", wp.Location, p2)
	}
}

func TestDoubleClickPlacesImmediately(t *testing.T) {
	c, session, _ := makeTestController(t)

	t0 := time.Now()
	c.PointerDown(math.Point2LL{139.5, 35.5}, t0)

	p := math.Point2LL{139.9, 35.2}
	id := c.DoubleClick(p)
	if wp, ok := session.Waypoint(id); !ok || wp.Location != p {
		t.Errorf("double click didn't place a waypoint at %v", p)
	}

	// The pending long press is cancelled.
	if _, fired := c.Tick(t0.Add(time.Minute)); fired {
		t.Errorf("long press fired after a double click")
	}
	if n := len(session.Waypoints()); n != 1 {
		t.Errorf("expected 1 waypoint, got %d", n)
	}
}

func TestEndDragMovesWaypoint(t *testing.T) {
	c, session, _ := makeTestController(t)

	id := session.AppendWaypoint("WPA", math.Point2LL{139.5, 35.5})
	p := math.Point2LL{139.7, 35.3}
	c.EndDrag(id, p)

	if wp, _ := session.Waypoint(id); wp.Location != p {
		t.Errorf("waypoint at %v after drag to %v", wp.Location, p)
	}
}

func TestCursorReadout(t *testing.T) {
	c, _, index := makeTestController(t)

	if c.Cursor().Valid {
		t.Errorf("cursor valid before any pointer motion")
	}

	p := math.Point2LL{139.4, 35.7}
	c.PointerMove(p)

	cur := c.Cursor()
	if !cur.Valid || cur.Position != p {
		t.Errorf("cursor readout %+v, pointer at %v", cur, p)
	}
	if len(cur.Nearest) != index.NumNavaids() {
		// Only 3 navaids in the fixture, so all of them come back.
		t.Fatalf("expected %d nearby navaids, got %d", index.NumNavaids(), len(cur.Nearest))
	}
	if cur.Nearest[0].Navaid.ID != "TYE" {
		t.Errorf("nearest navaid is %s, expected TYE", cur.Nearest[0].Navaid.ID)
	}
}

func TestPlaceAtNavaidDirect(t *testing.T) {
	for _, in := range [][2]string{{"", ""}, {"abc", "12"}, {"90", "x"}} {
		c, session, index := makeTestController(t)

		id, err := c.PlaceAtNavaid("TYE", in[0], in[1])
		if err != nil {
			t.Fatalf("PlaceAtNavaid(TYE, %q, %q): %v", in[0], in[1], err)
		}

		navaid, _ := index.Resolve("TYE")
		wp, ok := session.Waypoint(id)
		if !ok {
			t.Fatalf("waypoint %d not in session", id)
		}
		if wp.Location != navaid.Location {
			t.Errorf("bearing %q distance %q: waypoint at %v, navaid at %v",
				in[0], in[1], wp.Location, navaid.Location)
		}
		if wp.Name != navaid.Name {
			t.Errorf("waypoint named %q, expected navaid name %q", wp.Name, navaid.Name)
		}
	}
}

func TestPlaceAtNavaidOffset(t *testing.T) {
	c, session, index := makeTestController(t)

	id, err := c.PlaceAtNavaid("TYE", "90", "15")
	if err != nil {
		t.Fatalf("PlaceAtNavaid: %v", err)
	}

	navaid, _ := index.Resolve("TYE")
	want := math.Offset2LLGreatCircle(navaid.Location, 90, 15)
	wp, _ := session.Waypoint(id)
	if wp.Location != want {
		t.Errorf("waypoint at %v, expected projection %v", wp.Location, want)
	}
	if wp.Name != "TYE090/15" {
		t.Errorf("waypoint named %q, expected TYE090/15", wp.Name)
	}
}

func TestPlaceAtNavaidUnknown(t *testing.T) {
	c, session, _ := makeTestController(t)

	if _, err := c.PlaceAtNavaid("XYZ", "90", "15"); !errors.Is(err, aviation.ErrUnknownNavaid) {
		t.Errorf("expected ErrUnknownNavaid, got %v", err)
	}
	if n := len(session.Waypoints()); n != 0 {
		t.Errorf("unknown navaid placed %d waypoints", n)
	}
}

func TestPlaceAtCoordinates(t *testing.T) {
	c, session, _ := makeTestController(t)

	id, err := c.PlaceAtCoordinates("352415", "1392415")
	if err != nil {
		t.Fatalf("PlaceAtCoordinates: %v", err)
	}
	wp, _ := session.Waypoint(id)
	want := math.Point2LL{139 + 24.0/60 + 15.0/3600, 35 + 24.0/60 + 15.0/3600}
	if math.Abs(wp.Location.Latitude()-want.Latitude()) > 1e-5 ||
		math.Abs(wp.Location.Longitude()-want.Longitude()) > 1e-5 {
		t.Errorf("waypoint at %v, expected %v", wp.Location, want)
	}

	// A parse failure places nothing.
	if _, err := c.PlaceAtCoordinates("9975", "1392415"); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
	if n := len(session.Waypoints()); n != 1 {
		t.Errorf("expected 1 waypoint after rejected input, got %d", n)
	}
}

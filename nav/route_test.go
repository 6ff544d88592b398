// nav/route_test.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"testing"
	"time"

	"github.com/pelorus-nav/pelorus/aviation"
	"github.com/pelorus-nav/pelorus/math"
)

var testDeparture = &aviation.Airbase{
	ID: "DEP", Name: "Departure", Location: math.Point2LL{139, 35}, Type: aviation.AirbaseAirForce,
}
var testArrival = &aviation.Airbase{
	ID: "ARR", Name: "Arrival", Location: math.Point2LL{140, 37}, Type: aviation.AirbaseAirForce,
}

func TestComputeEmptyWhenIncomplete(t *testing.T) {
	rb := RouteBuilder{}

	for _, plan := range []FlightPlan{
		{},
		{Departure: testDeparture, CruiseSpeedKt: 300},
		{Arrival: testArrival, CruiseSpeedKt: 300},
		{Departure: testDeparture, Arrival: testArrival},                    // no speed
		{Departure: testDeparture, Arrival: testArrival, CruiseSpeedKt: -5}, // negative speed
	} {
		route := rb.Compute(&plan, nil)
		if len(route.Legs) != 0 || route.TotalDistanceNM != 0 || route.TotalETE != 0 {
			t.Errorf("incomplete plan %+v: expected empty route, got %+v", plan, route)
		}
	}
}

func TestComputeThreePointRoute(t *testing.T) {
	wp := math.Point2LL{139.5, 36}
	plan := FlightPlan{Departure: testDeparture, Arrival: testArrival, CruiseSpeedKt: 300}

	store := NewWaypointStore()
	store.Append("MIDWAY", wp)

	route := RouteBuilder{}.Compute(&plan, store.List())

	if len(route.Legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(route.Legs))
	}

	d0 := math.NMDistance2LL(testDeparture.Location, wp)
	d1 := math.NMDistance2LL(wp, testArrival.Location)
	if route.Legs[0].DistanceNM <= 0 || route.Legs[1].DistanceNM <= 0 {
		t.Errorf("leg distances must be positive: %+v", route.Legs)
	}
	if math.Abs(route.Legs[0].DistanceNM-d0) > 1e-3 || math.Abs(route.Legs[1].DistanceNM-d1) > 1e-3 {
		t.Errorf("leg distances don't match haversine: got %g/%g, expected %g/%g",
			route.Legs[0].DistanceNM, route.Legs[1].DistanceNM, d0, d1)
	}

	if math.Abs(route.TotalDistanceNM-(route.Legs[0].DistanceNM+route.Legs[1].DistanceNM)) > 1e-3 {
		t.Errorf("total distance %g is not the sum of the legs", route.TotalDistanceNM)
	}
	if route.TotalETE != route.Legs[0].ETE+route.Legs[1].ETE {
		t.Errorf("total ETE %v is not the sum of the legs", route.TotalETE)
	}

	// Endpoints and chaining.
	if route.Legs[0].From.Name != "Departure" || route.Legs[0].To.Name != "MIDWAY" ||
		route.Legs[1].From.Name != "MIDWAY" || route.Legs[1].To.Name != "Arrival" {
		t.Errorf("legs not chained dep -> waypoint -> arr: %+v", route.Legs)
	}

	// No takeoff time: ETAs omitted.
	if !route.Legs[0].ETA.IsZero() || !route.Legs[1].ETA.IsZero() {
		t.Errorf("expected zero ETAs without takeoff time")
	}
}

func TestComputeETAChain(t *testing.T) {
	takeoff := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	plan := FlightPlan{
		Departure: testDeparture, Arrival: testArrival,
		CruiseSpeedKt: 420, TakeoffTime: takeoff,
	}
	store := NewWaypointStore()
	store.Append("ONE", math.Point2LL{139.2, 35.5})
	store.Append("TWO", math.Point2LL{139.7, 36.2})

	route := RouteBuilder{}.Compute(&plan, store.List())
	if len(route.Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(route.Legs))
	}

	// Each ETA is the previous ETA plus this leg's ETE; the first starts
	// from takeoff.
	clock := takeoff
	for i, leg := range route.Legs {
		clock = clock.Add(leg.ETE)
		if !leg.ETA.Equal(clock) {
			t.Errorf("leg %d: ETA %v, expected %v", i, leg.ETA, clock)
		}
	}

	// ETE sanity: distance/speed hours.
	for i, leg := range route.Legs {
		expected := time.Duration(float64(leg.DistanceNM) / 420 * float64(time.Hour))
		if d := leg.ETE - expected; d < -time.Millisecond || d > time.Millisecond {
			t.Errorf("leg %d: ETE %v, expected %v", i, leg.ETE, expected)
		}
	}
}

func TestComputeMagneticVariation(t *testing.T) {
	plan := FlightPlan{Departure: testDeparture, Arrival: testArrival, CruiseSpeedKt: 300}

	trueRoute := RouteBuilder{MagneticVariation: 0}.Compute(&plan, nil)
	magRoute := RouteBuilder{MagneticVariation: -7}.Compute(&plan, nil)

	if len(trueRoute.Legs) != 1 || len(magRoute.Legs) != 1 {
		t.Fatalf("expected single direct leg")
	}
	expected := math.NormalizeHeading(trueRoute.Legs[0].MagneticHeading - 7)
	if math.Abs(magRoute.Legs[0].MagneticHeading-expected) > 1e-4 {
		t.Errorf("variation not applied: %g vs true %g",
			magRoute.Legs[0].MagneticHeading, trueRoute.Legs[0].MagneticHeading)
	}

	// Distance is unaffected by variation.
	if trueRoute.TotalDistanceNM != magRoute.TotalDistanceNM {
		t.Errorf("variation changed distance")
	}
}

func TestComputeDirectNoWaypoints(t *testing.T) {
	plan := FlightPlan{Departure: testDeparture, Arrival: testArrival, CruiseSpeedKt: 300}
	route := RouteBuilder{}.Compute(&plan, nil)
	if len(route.Legs) != 1 {
		t.Fatalf("expected a single direct leg, got %d", len(route.Legs))
	}
	if route.Legs[0].From.Location != testDeparture.Location ||
		route.Legs[0].To.Location != testArrival.Location {
		t.Errorf("direct leg endpoints wrong: %+v", route.Legs[0])
	}
}

// nav/route.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"time"

	"github.com/pelorus-nav/pelorus/math"
)

// RouteFix is one endpoint of a leg: a named position. It may come from
// the departure or arrival airbase or from a waypoint.
type RouteFix struct {
	Name     string
	Location math.Point2LL
}

// Leg is a single great-circle segment of the computed route. ETA is the
// zero time when the plan has no takeoff time.
type Leg struct {
	From, To        RouteFix
	DistanceNM      float32
	MagneticHeading float32
	ETE             time.Duration
	ETA             time.Time
}

// Route is the derived output of route computation. It is recomputed in
// full from the flight plan and waypoint sequence whenever either
// changes and is read-only to its consumers; nothing ever patches an
// individual leg in place.
type Route struct {
	Legs            []Leg
	TotalDistanceNM float32
	TotalETE        time.Duration
}

// RouteBuilder computes routes. MagneticVariation is the fixed variation
// constant for the operating region, degrees, west negative; it is
// applied to every leg's true course to produce the reported magnetic
// heading.
type RouteBuilder struct {
	MagneticVariation float32
}

// Compute derives the route for the given plan and waypoint sequence:
// departure, the waypoints in order, then arrival. If the plan isn't
// computable yet (missing endpoint, non-positive speed) it returns an
// empty Route rather than an error so that a partially-entered plan can
// still be rendered.
func (rb RouteBuilder) Compute(plan *FlightPlan, waypoints []Waypoint) Route {
	if !plan.Computable() {
		return Route{}
	}

	fixes := make([]RouteFix, 0, len(waypoints)+2)
	fixes = append(fixes, RouteFix{Name: plan.Departure.Name, Location: plan.Departure.Location})
	for _, wp := range waypoints {
		fixes = append(fixes, RouteFix{Name: wp.Name, Location: wp.Location})
	}
	fixes = append(fixes, RouteFix{Name: plan.Arrival.Name, Location: plan.Arrival.Location})

	var route Route

	// The clock starts at takeoff and advances leg by leg; each ETA is
	// the accumulated clock, not an independent recomputation from total
	// distance, so the chain stays consistent if per-leg speeds ever
	// diverge.
	clock := plan.TakeoffTime
	for i := 0; i+1 < len(fixes); i++ {
		dist, trueBrg := math.NMDistanceAndBearing2LL(fixes[i].Location, fixes[i+1].Location)
		ete := time.Duration(float64(dist) / float64(plan.CruiseSpeedKt) * float64(time.Hour))

		leg := Leg{
			From:            fixes[i],
			To:              fixes[i+1],
			DistanceNM:      dist,
			MagneticHeading: math.ApplyMagneticVariation(trueBrg, rb.MagneticVariation),
			ETE:             ete,
		}
		if plan.HasTakeoffTime() {
			clock = clock.Add(ete)
			leg.ETA = clock
		}

		route.Legs = append(route.Legs, leg)
		route.TotalDistanceNM += dist
		route.TotalETE += ete
	}

	return route
}

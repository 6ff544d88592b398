// nav/plan.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package nav

import (
	"time"

	"github.com/pelorus-nav/pelorus/aviation"
)

// FlightPlan holds the user's planning inputs other than the waypoint
// sequence: departure and arrival airbases (references into the static
// database, not members of the waypoint sequence), cruise speed and
// altitude, and an optional takeoff time. A zero TakeoffTime means "not
// set"; ETAs are omitted from the computed route in that case.
//
// A FlightPlan is only mutated through a Session, which recomputes the
// route on every change.
type FlightPlan struct {
	Departure *aviation.Airbase
	Arrival   *aviation.Airbase

	CruiseSpeedKt float32
	AltitudeFt    float32
	TakeoffTime   time.Time
}

// Computable reports whether there is enough of a plan to derive a route:
// both endpoints present and a positive cruise speed. Altitude does not
// gate route computation since legs are computed from cruise speed alone;
// it only feeds the TAS/Mach readout.
func (fp *FlightPlan) Computable() bool {
	return fp.Departure != nil && fp.Arrival != nil && fp.CruiseSpeedKt > 0
}

// HasTakeoffTime reports whether a takeoff time has been set.
func (fp *FlightPlan) HasTakeoffTime() bool {
	return !fp.TakeoffTime.IsZero()
}

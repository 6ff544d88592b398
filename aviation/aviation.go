// aviation/aviation.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"

	"github.com/pelorus-nav/pelorus/math"
)

///////////////////////////////////////////////////////////////////////////
// Airbases

type AirbaseType int

const (
	AirbaseAirForce AirbaseType = iota
	AirbaseArmy
	AirbaseNavy
	AirbaseUSForces
	AirbaseCivil
	AirbaseOtherAirfield
	AirbaseHeliport
)

func (t AirbaseType) String() string {
	switch t {
	case AirbaseAirForce:
		return "airforce"
	case AirbaseArmy:
		return "army"
	case AirbaseNavy:
		return "navy"
	case AirbaseUSForces:
		return "us-forces"
	case AirbaseCivil:
		return "civil"
	case AirbaseOtherAirfield:
		return "other"
	case AirbaseHeliport:
		return "heliport"
	default:
		return "unknown"
	}
}

func ParseAirbaseType(s string) (AirbaseType, error) {
	for _, t := range []AirbaseType{AirbaseAirForce, AirbaseArmy, AirbaseNavy, AirbaseUSForces,
		AirbaseCivil, AirbaseOtherAirfield, AirbaseHeliport} {
		if s == t.String() {
			return t, nil
		}
	}
	return AirbaseType(0), fmt.Errorf("%q: invalid airbase type", s)
}

// Airbase is a departure or arrival airfield. Airbases are read-only
// reference data; they are not members of the waypoint sequence but are
// referenced directly from a flight plan.
type Airbase struct {
	ID       string
	Name     string
	Location math.Point2LL
	Type     AirbaseType
}

///////////////////////////////////////////////////////////////////////////
// Navaids

type NavaidType int

const (
	NavaidVOR NavaidType = iota
	NavaidDME
	NavaidVORDME
	NavaidTACAN
	NavaidVORTAC
	NavaidNDB
)

func (t NavaidType) String() string {
	switch t {
	case NavaidVOR:
		return "VOR"
	case NavaidDME:
		return "DME"
	case NavaidVORDME:
		return "VOR/DME"
	case NavaidTACAN:
		return "TACAN"
	case NavaidVORTAC:
		return "VORTAC"
	case NavaidNDB:
		return "NDB"
	default:
		return "unknown"
	}
}

func ParseNavaidType(s string) (NavaidType, error) {
	for _, t := range []NavaidType{NavaidVOR, NavaidDME, NavaidVORDME, NavaidTACAN,
		NavaidVORTAC, NavaidNDB} {
		if s == t.String() {
			return t, nil
		}
	}
	return NavaidType(0), fmt.Errorf("%q: invalid navaid type", s)
}

// Navaid is a ground-based radio navigation aid. FrequencyMHz is zero for
// aids that only publish a TACAN channel.
type Navaid struct {
	ID           string
	Name         string
	Location     math.Point2LL
	Type         NavaidType
	Channel      string
	FrequencyMHz float32
}

///////////////////////////////////////////////////////////////////////////
// Standard atmosphere

// The approximations here assume the International Standard Atmosphere
// and are only valid within the troposphere; no attempt is made to handle
// altitudes above it.

const seaLevelTemperatureK = 288.15

// Sea-level speed of sound under standard conditions, knots.
const seaLevelSpeedOfSoundKt = 661.47

// TemperatureAtAltitude returns the ISA temperature in degrees Kelvin at
// the given pressure altitude in feet, using the standard linear lapse of
// 1.98 degrees C per thousand feet.
func TemperatureAtAltitude(altFt float32) float32 {
	return seaLevelTemperatureK - 1.98*altFt/1000
}

// PressureRatioAtAltitude returns the ratio of air pressure at the given
// altitude (in feet) to the pressure at sea level, using an exponential
// approximation to the barometric formula.
func PressureRatioAtAltitude(altFt float32) float32 {
	altm := altFt * 0.3048 // altitude in meters

	// https://en.wikipedia.org/wiki/Barometric_formula
	const g0 = 9.80665    // gravitational constant, m/s^2
	const M_air = 0.02897 // molar mass of earth's air, kg/mol
	const R = 8.314463    // universal gas constant J/(mol K)
	const T_b = 288.15    // reference temperature at sea level, degrees K

	return math.Exp(-g0 * M_air * altm / (R * T_b))
}

// DensityRatioAtAltitude returns the ratio of air density at the given
// altitude (in feet) to the air density at sea level, subject to assuming
// the standard atmosphere.
func DensityRatioAtAltitude(altFt float32) float32 {
	return PressureRatioAtAltitude(altFt) * seaLevelTemperatureK / TemperatureAtAltitude(altFt)
}

func IASToTAS(ias, altitude float32) float32 {
	return ias / math.Sqrt(DensityRatioAtAltitude(altitude))
}

func TASToIAS(tas, altitude float32) float32 {
	return tas * math.Sqrt(DensityRatioAtAltitude(altitude))
}

// SpeedOfSoundAtAltitude returns the local speed of sound in knots at the
// given pressure altitude in feet.
func SpeedOfSoundAtAltitude(altFt float32) float32 {
	return seaLevelSpeedOfSoundKt *
		math.Sqrt(TemperatureAtAltitude(altFt)/seaLevelTemperatureK)
}

// TASAndMach converts an indicated airspeed in knots at the given pressure
// altitude in feet to true airspeed and Mach number. TAS is rounded to the
// nearest knot and Mach to three decimal places, which is the precision at
// which they are displayed.
func TASAndMach(iasKt, altFt float32) (tasKt int, mach float32) {
	tas := IASToTAS(iasKt, altFt)
	mach = tas / SpeedOfSoundAtAltitude(altFt)
	return int(math.Round(tas)), math.Round(mach*1000) / 1000
}

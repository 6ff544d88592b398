// edit/parse.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package edit

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/pelorus-nav/pelorus/math"
)

// ErrInvalidCoordinate is returned for coordinate input the user typed
// that can't be interpreted; it is the one user-visible error in the
// engine and callers are expected to surface it as a validation message.
var ErrInvalidCoordinate = errors.New("invalid coordinate format")

var (
	// Sexagesimal coordinates are fixed-width concatenated digits:
	// DDMMSS for latitude, DDDMMSS for longitude.
	reLatDMS = regexp.MustCompile(`^([0-9]{2})([0-9]{2})([0-9]{2})$`)
	reLonDMS = regexp.MustCompile(`^([0-9]{3})([0-9]{2})([0-9]{2})$`)
)

// ParseLatitude interprets a latitude entered by the user, either
// sexagesimal ("352415" = 35 deg 24 min 15 sec) or decimal degrees
// ("35.404167").
func ParseLatitude(s string) (float32, error) {
	return parseCoordinate(s, reLatDMS, 90)
}

// ParseLongitude interprets a longitude entered by the user, either
// sexagesimal with three degree digits ("1392415") or decimal degrees.
func ParseLongitude(s string) (float32, error) {
	return parseCoordinate(s, reLonDMS, 180)
}

func parseCoordinate(s string, dms *regexp.Regexp, limit float32) (float32, error) {
	if m := dms.FindStringSubmatch(s); m != nil {
		deg, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec, _ := strconv.Atoi(m[3])
		if min >= 60 || sec >= 60 {
			return 0, ErrInvalidCoordinate
		}
		v := float32(deg) + float32(min)/60 + float32(sec)/3600
		if v > limit {
			return 0, ErrInvalidCoordinate
		}
		return v, nil
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, ErrInvalidCoordinate
	}
	if math.Abs(float32(v)) > limit {
		return 0, ErrInvalidCoordinate
	}
	return float32(v), nil
}

// ParseLatLong parses a latitude/longitude pair from user input,
// returning the corresponding point.
func ParseLatLong(latStr, lonStr string) (math.Point2LL, error) {
	lat, err := ParseLatitude(latStr)
	if err != nil {
		return math.Point2LL{}, err
	}
	lon, err := ParseLongitude(lonStr)
	if err != nil {
		return math.Point2LL{}, err
	}
	return math.Point2LL{lon, lat}, nil
}

// aviation/aviation_test.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"testing"

	"github.com/pelorus-nav/pelorus/math"
)

func TestTASAtSeaLevel(t *testing.T) {
	for _, ias := range []float32{100, 250, 300, 480} {
		tas, _ := TASAndMach(ias, 0)
		if math.Abs(float32(tas)-ias) > 1 {
			t.Errorf("TAS at sea level should match IAS: got %d for %g", tas, ias)
		}
	}
}

func TestIASTASRoundTrip(t *testing.T) {
	for _, ias := range []float32{100, 250, 300, 480} {
		for _, alt := range []float32{0, 5000, 18000, 35000} {
			got := TASToIAS(IASToTAS(ias, alt), alt)
			if math.Abs(got-ias) > 0.01 {
				t.Errorf("IAS %g at %g ft round-tripped to %g", ias, alt, got)
			}
		}
	}
}

func TestTASMonotonicInAltitude(t *testing.T) {
	// For fixed IAS, TAS must not decrease with altitude anywhere in the
	// troposphere.
	prev := float32(0)
	for alt := float32(0); alt <= 36000; alt += 500 {
		tas := IASToTAS(300, alt)
		if tas < prev {
			t.Errorf("TAS decreased with altitude: %g kt at %g ft, %g kt below", tas, alt, prev)
		}
		prev = tas
	}
}

func TestMachAtSeaLevel(t *testing.T) {
	_, mach := TASAndMach(300, 0)
	expected := float32(300) / 661.47
	if math.Abs(mach-expected) > 0.0006 {
		t.Errorf("Mach at sea level: got %g, expected about %g", mach, expected)
	}
}

func TestDensityRatio(t *testing.T) {
	if d := DensityRatioAtAltitude(0); math.Abs(d-1) > 1e-5 {
		t.Errorf("density ratio at sea level: got %g, expected 1", d)
	}
	// Roughly half the sea-level density around 22000 ft.
	if d := DensityRatioAtAltitude(22000); d < 0.45 || d > 0.60 {
		t.Errorf("density ratio at 22000 ft implausible: %g", d)
	}
}

func TestParseAirbaseType(t *testing.T) {
	for _, s := range []string{"airforce", "army", "navy", "us-forces", "civil", "other", "heliport"} {
		ty, err := ParseAirbaseType(s)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", s, err)
		}
		if ty.String() != s {
			t.Errorf("%s: round trip gave %s", s, ty)
		}
	}
	if _, err := ParseAirbaseType("seaplane"); err == nil {
		t.Errorf("expected error for unknown airbase type")
	}
}

func TestParseNavaidType(t *testing.T) {
	for _, s := range []string{"VOR", "DME", "VOR/DME", "TACAN", "VORTAC", "NDB"} {
		ty, err := ParseNavaidType(s)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", s, err)
		}
		if ty.String() != s {
			t.Errorf("%s: round trip gave %s", s, ty)
		}
	}
	if _, err := ParseNavaidType("LORAN"); err == nil {
		t.Errorf("expected error for unknown navaid type")
	}
}

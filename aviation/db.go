// aviation/db.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/pelorus-nav/pelorus/log"
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/util"

	"github.com/iancoleman/orderedmap"
	"golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////
// StaticDatabase

// StaticDatabase holds the read-only reference datasets: navaids and
// airbases. It is built once at startup and never mutated afterward;
// updating a dataset means discarding the database and loading a new one.
//
// Navaids are kept in an ordered map so that iteration visits them in
// dataset order; nearest-navaid queries rely on that order to break
// distance ties deterministically.
type StaticDatabase struct {
	Navaids  *orderedmap.OrderedMap // id -> Navaid
	Airbases map[string]Airbase
}

// LoadStaticDatabase parses the navaid and airbase datasets from the
// given resources filesystem. The datasets are zstd-compressed JSON;
// navaids are GeoJSON-style point features with coordinates in
// longitude-latitude order, airbases are flat records.
func LoadStaticDatabase(fsys fs.FS, lg *log.Logger) (*StaticDatabase, error) {
	db := &StaticDatabase{}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		db.Navaids, err = parseNavaids(fsys)
		return err
	})
	g.Go(func() error {
		var err error
		db.Airbases, err = parseAirbases(fsys)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lg.Info("loaded static database",
		"navaids", len(db.Navaids.Keys()),
		"airbases", len(db.Airbases))

	return db, nil
}

func (db *StaticDatabase) LookupNavaid(id string) (Navaid, bool) {
	if v, ok := db.Navaids.Get(id); ok {
		return v.(Navaid), true
	}
	return Navaid{}, false
}

func (db *StaticDatabase) LookupAirbase(id string) (Airbase, bool) {
	ab, ok := db.Airbases[id]
	return ab, ok
}

///////////////////////////////////////////////////////////////////////////
// Dataset parsing

// openResource opens base+".zst" if present, otherwise base; datasets are
// shipped compressed but it's handy to be able to drop in an uncompressed
// file when editing them.
func openResource(fsys fs.FS, base string) util.ResourceReadCloser {
	if _, err := fs.Stat(fsys, base+".zst"); err == nil {
		return util.LoadResource(fsys, base+".zst")
	}
	return util.LoadResource(fsys, base)
}

func parseNavaids(fsys fs.FS) (*orderedmap.OrderedMap, error) {
	r := openResource(fsys, "navaids.json")
	defer r.Close()

	var collection struct {
		Features []struct {
			Geometry struct {
				Coordinates math.Point2LL `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				ID   string  `json:"id"`
				Name string  `json:"name"`
				Type string  `json:"type"`
				Ch   string  `json:"ch"`
				Freq float32 `json:"freq"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return nil, fmt.Errorf("navaids.json: %w", err)
	}

	navaids := orderedmap.New()
	for _, f := range collection.Features {
		ty, err := ParseNavaidType(f.Properties.Type)
		if err != nil {
			return nil, fmt.Errorf("navaid %s: %w", f.Properties.ID, err)
		}
		// An all-zero point is dataset junk (a missing coordinate decoded
		// as null island), not a real navaid position.
		if !f.Geometry.Coordinates.Valid() || f.Geometry.Coordinates.IsZero() {
			return nil, fmt.Errorf("navaid %s: invalid location %v", f.Properties.ID,
				f.Geometry.Coordinates)
		}
		navaids.Set(f.Properties.ID, Navaid{
			ID:           f.Properties.ID,
			Name:         f.Properties.Name,
			Location:     f.Geometry.Coordinates,
			Type:         ty,
			Channel:      f.Properties.Ch,
			FrequencyMHz: f.Properties.Freq,
		})
	}
	return navaids, nil
}

func parseAirbases(fsys fs.FS) (map[string]Airbase, error) {
	r := openResource(fsys, "airbases.json")
	defer r.Close()

	var records []struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		Lat  float32 `json:"lat"`
		Lng  float32 `json:"lng"`
		Type string  `json:"type"`
	}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("airbases.json: %w", err)
	}

	airbases := make(map[string]Airbase)
	for _, rec := range records {
		ty, err := ParseAirbaseType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("airbase %s: %w", rec.ID, err)
		}
		loc := math.Point2LL{rec.Lng, rec.Lat}
		if !loc.Valid() || loc.IsZero() {
			return nil, fmt.Errorf("airbase %s: invalid location %v", rec.ID, loc)
		}
		airbases[rec.ID] = Airbase{ID: rec.ID, Name: rec.Name, Location: loc, Type: ty}
	}
	return airbases, nil
}

// aviation/index.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"slices"
	"time"

	"github.com/pelorus-nav/pelorus/math"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// NavaidDistance is a nearest-query result: a navaid plus its distance
// and initial true bearing from the query point.
type NavaidDistance struct {
	Navaid     Navaid
	DistanceNM float32
	BearingDeg float32
}

// NavaidIndex answers "k nearest navaids" and id lookups against a loaded
// dataset. It is immutable once built; queries are memoized in an
// expiring LRU since the cursor readout tends to issue the same query
// repeatedly within a frame or two.
type NavaidIndex struct {
	navaids []Navaid // dataset order
	byID    map[string]int
	cache   *expirable.LRU[nearestKey, []NavaidDistance]
}

type nearestKey struct {
	p math.Point2LL
	k int
}

func BuildNavaidIndex(db *StaticDatabase) *NavaidIndex {
	idx := &NavaidIndex{
		byID:  make(map[string]int),
		cache: expirable.NewLRU[nearestKey, []NavaidDistance](128, nil, time.Minute),
	}
	for _, id := range db.Navaids.Keys() {
		v, _ := db.Navaids.Get(id)
		idx.byID[id] = len(idx.navaids)
		idx.navaids = append(idx.navaids, v.(Navaid))
	}
	return idx
}

// Resolve returns the navaid with the given id, if any.
func (idx *NavaidIndex) Resolve(id string) (Navaid, bool) {
	if i, ok := idx.byID[id]; ok {
		return idx.navaids[i], true
	}
	return Navaid{}, false
}

// Nearest returns the (at most) k navaids closest to p, ascending by
// distance with ties broken by dataset order. The returned slice is
// shared with the query cache and must not be modified by the caller.
//
// The dataset is small enough (low hundreds of navaids) that a linear
// scan over all of them is entirely adequate here.
func (idx *NavaidIndex) Nearest(p math.Point2LL, k int) []NavaidDistance {
	if k <= 0 {
		return nil
	}

	key := nearestKey{p: p, k: k}
	if result, ok := idx.cache.Get(key); ok {
		return result
	}

	all := make([]NavaidDistance, len(idx.navaids))
	for i, n := range idx.navaids {
		d, b := math.NMDistanceAndBearing2LL(p, n.Location)
		all[i] = NavaidDistance{Navaid: n, DistanceNM: d, BearingDeg: b}
	}

	// A stable sort keeps equidistant navaids in dataset order.
	slices.SortStableFunc(all, func(a, b NavaidDistance) int {
		if a.DistanceNM < b.DistanceNM {
			return -1
		} else if a.DistanceNM > b.DistanceNM {
			return 1
		}
		return 0
	})

	result := all[:min(k, len(all))]
	idx.cache.Add(key, result)
	return result
}

// NumNavaids returns the number of navaids in the index.
func (idx *NavaidIndex) NumNavaids() int {
	return len(idx.navaids)
}

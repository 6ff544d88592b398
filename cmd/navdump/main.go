// cmd/navdump/main.go

// navdump is a quick look at the navigation dataset: it loads the navaid
// and airbase databases exactly the way the engine does and answers
// nearest-navaid queries from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelorus-nav/pelorus/aviation"
	"github.com/pelorus-nav/pelorus/edit"
	"github.com/pelorus-nav/pelorus/log"
	"github.com/pelorus-nav/pelorus/math"
	"github.com/pelorus-nav/pelorus/util"
)

func main() {
	lat := flag.String("lat", "", "query latitude (DDMMSS or decimal degrees)")
	lon := flag.String("lon", "", "query longitude (DDDMMSS or decimal degrees)")
	k := flag.Int("k", 5, "number of nearest navaids to report")
	typeFilter := flag.String("type", "", "only report navaids of this type (e.g. VORTAC)")
	lookup := flag.String("id", "", "print a single navaid or airbase by identifier")
	logLevel := flag.String("loglevel", "warn", "logging level: debug, info, warn, error")
	flag.Parse()

	lg := log.New(*logLevel, "")

	db, err := aviation.LoadStaticDatabase(util.GetResourcesFS(), lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "navdump: %v\n", err)
		os.Exit(1)
	}
	index := aviation.BuildNavaidIndex(db)

	if *lookup != "" {
		if n, ok := index.Resolve(*lookup); ok {
			printNavaid(aviation.NavaidDistance{Navaid: n})
			return
		}
		if ab, ok := db.LookupAirbase(*lookup); ok {
			fmt.Printf("%-5s %-30s %s %s\n", ab.ID, ab.Name, ab.Location.DMSString(), ab.Type)
			return
		}
		fmt.Fprintf(os.Stderr, "navdump: %s: no such navaid or airbase\n", *lookup)
		os.Exit(1)
	}

	if *lat == "" || *lon == "" {
		fmt.Fprintf(os.Stderr, "usage: navdump [-k n] -lat DDMMSS -lon DDDMMSS\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	p, err := edit.ParseLatLong(*lat, *lon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "navdump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d navaids loaded; nearest %d to %s %s:\n",
		index.NumNavaids(), *k, p.DMSString(), p.DDString())
	results := index.Nearest(p, *k)
	if *typeFilter != "" {
		ty, err := aviation.ParseNavaidType(*typeFilter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "navdump: %v\n", err)
			os.Exit(1)
		}
		results = util.FilterSlice(results, func(nd aviation.NavaidDistance) bool {
			return nd.Navaid.Type == ty
		})
	}
	for _, nd := range results {
		printNavaid(nd)
	}
}

func printNavaid(nd aviation.NavaidDistance) {
	n := nd.Navaid
	fmt.Printf("%-5s %-30s %-7s %-4s %s", n.ID, n.Name, n.Type, n.Channel, n.Location.DMSString())
	if nd.DistanceNM > 0 {
		fmt.Printf("  %5.1f nm %s", nd.DistanceNM, math.ShortCompass(nd.BearingDeg))
	}
	fmt.Printf("\n")
}

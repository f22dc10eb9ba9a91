// Package localtime converts between a venue's local calendar values and UTC instants.
//
// A venue is located through its department code; overseas departments and
// collectivities have their own civil timezone, everything else uses mainland
// France's.
package localtime

import (
	"sync"
	"time"
	_ "time/tzdata" // container images ship without a zoneinfo database
)

const DefaultTimezone = "Europe/Paris"

var departmentTimezones = map[string]string{
	"971": "America/Guadeloupe",
	"972": "America/Martinique",
	"973": "America/Cayenne",
	"974": "Indian/Reunion",
	"975": "America/Miquelon",
	"976": "Indian/Mayotte",
	"977": "America/St_Barthelemy",
	"978": "America/Marigot",
	"986": "Pacific/Wallis",
	"987": "Pacific/Tahiti",
	"988": "Pacific/Noumea",
}

var locations sync.Map // timezone name -> *time.Location

// TimezoneName returns the IANA timezone for a department code.
func TimezoneName(departementCode string) string {
	if tz, ok := departmentTimezones[departementCode]; ok {
		return tz
	}
	return DefaultTimezone
}

// Location returns the venue location for a department code. Unknown codes
// resolve to mainland France.
func Location(departementCode string) *time.Location {
	name := TimezoneName(departementCode)
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		// tzdata is embedded, so this only happens on a typo in the table above.
		panic("localtime: unknown timezone " + name)
	}
	actual, _ := locations.LoadOrStore(name, loc)
	return actual.(*time.Location)
}

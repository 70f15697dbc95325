package clinic

import (
	"fmt"
	"strings"
)

// Location is one of the six fixed clinic sites.
type Location int

const (
	Bridgewater Location = iota
	Edison
	Piscataway
	Princeton
	Morristown
	Clark
)

// locationInfo carries the fixed attributes of a clinic site.
type locationInfo struct {
	city   string
	county string
	zip    string
}

var locations = [...]locationInfo{
	Bridgewater: {"BRIDGEWATER", "Somerset", "08807"},
	Edison:      {"EDISON", "Middlesex", "08817"},
	Piscataway:  {"PISCATAWAY", "Middlesex", "08854"},
	Princeton:   {"PRINCETON", "Mercer", "08542"},
	Morristown:  {"MORRISTOWN", "Morris", "07960"},
	Clark:       {"CLARK", "Union", "07066"},
}

// Locations returns every clinic site.
func Locations() []Location {
	out := make([]Location, len(locations))
	for i := range locations {
		out[i] = Location(i)
	}
	return out
}

// ParseLocation resolves a city token case-insensitively.
func ParseLocation(s string) (Location, error) {
	for i, info := range locations {
		if strings.EqualFold(info.city, s) {
			return Location(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no location for %q", ErrUnknownToken, s)
}

// City returns the site's city name in upper case.
func (l Location) City() string {
	return locations[l].city
}

// County returns the site's county, the primary key of the by-location
// schedule view.
func (l Location) County() string {
	return locations[l].county
}

// Zip returns the site's zip code.
func (l Location) Zip() string {
	return locations[l].zip
}

// String renders the site as "CITY, County zip".
func (l Location) String() string {
	info := locations[l]
	return fmt.Sprintf("%s, %s %s", info.city, info.county, info.zip)
}

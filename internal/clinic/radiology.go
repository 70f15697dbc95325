package clinic

import (
	"fmt"
	"strings"
)

// Radiology identifies an imaging room type. Each clinic site has one
// room of each type, so availability is checked per site.
type Radiology int

const (
	CatScan Radiology = iota
	Ultrasound
	XRay
)

var radiologyNames = [...]string{
	CatScan:    "CATSCAN",
	Ultrasound: "ULTRASOUND",
	XRay:       "XRAY",
}

// ParseRadiology resolves an imaging service token case-insensitively.
func ParseRadiology(s string) (Radiology, error) {
	for i, name := range radiologyNames {
		if strings.EqualFold(name, s) {
			return Radiology(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s - imaging service not provided", ErrUnknownToken, s)
}

func (r Radiology) String() string {
	return radiologyNames[r]
}

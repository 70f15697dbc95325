// Package providers loads the clinic's provider roster from its
// bootstrap file.
package providers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/clinichq/clinic-scheduler/internal/clinic"
	"github.com/clinichq/clinic-scheduler/internal/collection"
)

// ErrInvalidRecord marks a provider line that could not be parsed. Load
// wraps it with the file line number so a bad roster fails loudly at
// startup instead of silently shrinking the provider list.
var ErrInvalidRecord = errors.New("invalid provider record")

// Roster is the result of loading a provider file: the full provider
// list in display order and the technicians in rotation order.
type Roster struct {
	Providers *collection.List[clinic.Provider]

	// Rotation holds the technicians in the order the scheduling
	// rotation visits them: reverse file order, so the last technician
	// listed is tried first.
	Rotation []*clinic.Technician
}

// Load reads the provider roster from path. Each non-blank line is one
// provider:
//
//	D FIRST LAST M/D/YYYY LOCATION SPECIALTY NPI
//	T FIRST LAST M/D/YYYY LOCATION RATE
//
// Any malformed line aborts the load with an error naming the line.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open provider file: %w", err)
	}
	defer f.Close()

	roster := &Roster{
		Providers: collection.New(clinic.ProviderEqual),
	}
	var fileOrder []*clinic.Technician

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		provider, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineno, err)
		}
		roster.Providers.Add(provider)
		if tech, ok := provider.(*clinic.Technician); ok {
			fileOrder = append(fileOrder, tech)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read provider file: %w", err)
	}

	roster.Rotation = make([]*clinic.Technician, 0, len(fileOrder))
	for i := len(fileOrder) - 1; i >= 0; i-- {
		roster.Rotation = append(roster.Rotation, fileOrder[i])
	}
	clinic.SortProviders(roster.Providers)
	return roster, nil
}

func parseLine(line string) (clinic.Provider, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return nil, fmt.Errorf("%w: expected at least 6 fields, got %d", ErrInvalidRecord, len(fields))
	}

	dob, err := parseDate(fields[3])
	if err != nil {
		return nil, err
	}
	profile := clinic.NewProfile(fields[1], fields[2], dob)

	location, err := clinic.ParseLocation(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	switch fields[0] {
	case "D":
		if len(fields) != 7 {
			return nil, fmt.Errorf("%w: doctor record needs 7 fields, got %d", ErrInvalidRecord, len(fields))
		}
		specialty, err := clinic.ParseSpecialty(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		return clinic.NewDoctor(profile, location, specialty, fields[6]), nil
	case "T":
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: technician record needs 6 fields, got %d", ErrInvalidRecord, len(fields))
		}
		rate, err := strconv.Atoi(fields[5])
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("%w: bad rate %q", ErrInvalidRecord, fields[5])
		}
		return clinic.NewTechnician(profile, location, rate), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider type %q", ErrInvalidRecord, fields[0])
	}
}

func parseDate(s string) (clinic.Date, error) {
	d, err := clinic.ParseDate(s)
	if err != nil {
		return clinic.Date{}, fmt.Errorf("%w: bad date %q", ErrInvalidRecord, s)
	}
	if !d.IsValid() {
		return clinic.Date{}, fmt.Errorf("%w: invalid calendar date %q", ErrInvalidRecord, s)
	}
	return d, nil
}

package vatspy

import "fmt"

// DefaultRadarName is the radar label assigned to a country whose source
// line carries no custom radar name.
const DefaultRadarName = "Center"

// Country is a country as listed in the [Countries] section. One logical
// country may own several two-letter prefix codes; repeated lines with the
// same name append to Codes.
type Country struct {
	Name      string
	Codes     []string
	RadarName string
}

// HasCode reports whether the country owns the given prefix code.
func (c Country) HasCode(code string) bool {
	for _, cc := range c.Codes {
		if cc == code {
			return true
		}
	}
	return false
}

// Airport is an airport as listed in the [Airports] section.
// IATA is empty when the source field is empty. FIRID references a FIR by
// ICAO code and is not validated against the parsed FIR list.
type Airport struct {
	ICAO   string
	Name   string
	Lat    float64
	Lng    float64
	IATA   string
	FIRID  string
	Pseudo bool
}

// FIR is a Flight Information Region. Boundary is always resolved: lines
// referencing an unknown boundary id are rejected at parse time.
type FIR struct {
	ICAO           string
	Name           string
	CallsignPrefix string
	Boundary       GeoItem
}

// UIR is an Upper Information Region composed of one or more FIRs.
// FIRIDs may reference FIR ICAO codes absent from the FIR list.
type UIR struct {
	ICAO   string
	Name   string
	FIRIDs []string
}

// ParseError describes a source line the parser rejected and skipped.
// Rejected lines never abort the parse; callers needing strict validation
// inspect the collected errors after construction.
type ParseError struct {
	Line   int    // 1-based line number in the data document
	Text   string // raw line content
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

package vatspy

import (
	"math"
	"sort"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/agnivade/levenshtein"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// minCallsignPrefixLen is the shortest callsign prefix tried by
// FindFIRByCallsign. Four characters and shorter are ambiguous with plain
// ICAO codes and are resolved through the ICAO index instead.
const minCallsignPrefixLen = 5

// maxSearchDistance caps the edit distance of SearchAirportsByName to keep
// the full-list Levenshtein scan cheap.
const maxSearchDistance = 3

// FindCountryByCode looks up a country by one of its two-letter prefix
// codes.
func (v *VatspyData) FindCountryByCode(code string) (Country, bool) {
	d := v.load()
	i, ok := d.countryByCode[code]
	if !ok {
		return Country{}, false
	}
	return d.countries[i], true
}

// FindCountryByICAO resolves the country owning the first two characters
// of an ICAO code.
func (v *VatspyData) FindCountryByICAO(icao string) (Country, bool) {
	if len(icao) > 2 {
		icao = icao[:2]
	}
	return v.FindCountryByCode(icao)
}

// FindAirportByCode looks up an airport by ICAO or IATA code. Codes
// shorter than four characters are treated as IATA only; otherwise the
// ICAO index is tried first with an IATA fallback.
func (v *VatspyData) FindAirportByCode(code string) (Airport, bool) {
	d := v.load()
	if len(code) < 4 {
		return d.firstAirport(d.airportByIATA[code])
	}
	if positions, ok := d.airportByICAO[code]; ok {
		return d.firstAirport(positions)
	}
	return d.firstAirport(d.airportByIATA[code])
}

// FindAirportByCallsign resolves an airport from a station callsign such
// as "EGLL_TWR" by its leading code token.
func (v *VatspyData) FindAirportByCallsign(callsign string) (Airport, bool) {
	return v.FindAirportByCode(strings.SplitN(callsign, "_", 2)[0])
}

// FindFIRByCode looks up a FIR by its ICAO code.
func (v *VatspyData) FindFIRByCode(code string) (FIR, bool) {
	d := v.load()
	return d.firstFIR(d.firByICAO[code])
}

// FindFIRByCallsign resolves the FIR controlling a radio callsign. The
// token before the first underscore is tried as an exact ICAO code first;
// failing that, progressively shorter prefixes of the whole callsign are
// tried against the FIR callsign prefixes, from full length down to
// minCallsignPrefixLen, returning the longest match.
func (v *VatspyData) FindFIRByCallsign(callsign string) (FIR, bool) {
	d := v.load()
	if fir, ok := d.firstFIR(d.firByICAO[strings.SplitN(callsign, "_", 2)[0]]); ok {
		return fir, true
	}
	for l := len(callsign); l >= minCallsignPrefixLen; l-- {
		if i, ok := d.firByPrefix[callsign[:l]]; ok {
			return d.firs[i], true
		}
	}
	return FIR{}, false
}

// FindUIRByCode looks up a UIR by its ICAO code.
func (v *VatspyData) FindUIRByCode(code string) (UIR, bool) {
	d := v.load()
	i, ok := d.uirByICAO[code]
	if !ok {
		return UIR{}, false
	}
	return d.uirs[i], true
}

// FindUIRByFIR returns the UIR listing the given FIR ICAO code among its
// members. When a FIR appears under several UIRs the last one parsed wins.
func (v *VatspyData) FindUIRByFIR(firICAO string) (UIR, bool) {
	d := v.load()
	i, ok := d.uirByFIR[firICAO]
	if !ok {
		return UIR{}, false
	}
	return d.uirs[i], true
}

// FindFIRByLocation returns the FIR whose boundary contains the point.
// Candidates come from the S2 cell index over FIR bounding boxes and are
// confirmed against the actual boundary shape. Where a domestic and an
// oceanic FIR overlap, the domestic one wins.
func (v *VatspyData) FindFIRByLocation(lat, lng float64) (FIR, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return FIR{}, false
	}

	d := v.load()
	candidates := d.firCandidates(s2.LatLngFromDegrees(lat, lng))
	sort.Ints(candidates)

	best := -1
	for _, i := range candidates {
		if !d.firs[i].Boundary.Contains(lat, lng) {
			continue
		}
		if best < 0 || (d.firs[best].Boundary.Properties.Oceanic && !d.firs[i].Boundary.Properties.Oceanic) {
			best = i
		}
	}
	if best < 0 {
		return FIR{}, false
	}
	return d.firs[best], true
}

// FindNearestAirport returns the airport closest to the point by
// great-circle distance. Candidates come from the point's geohash cell and
// its eight neighbors; sparse areas fall back to a full scan.
func (v *VatspyData) FindNearestAirport(lat, lng float64) (Airport, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return Airport{}, false
	}

	d := v.load()
	if len(d.airports) == 0 {
		return Airport{}, false
	}

	cell := geohash.EncodeWithPrecision(lat, lng, airportGeohashPrecision)
	candidates := append([]int(nil), d.airportCells[cell]...)
	for _, adjacent := range geohash.CalculateAllAdjacent(cell) {
		candidates = append(candidates, d.airportCells[adjacent]...)
	}
	if len(candidates) == 0 {
		candidates = make([]int, len(d.airports))
		for i := range d.airports {
			candidates[i] = i
		}
	}

	query := s2.LatLngFromDegrees(lat, lng)
	best := -1
	bestDist := s1.InfAngle()
	for _, i := range candidates {
		airport := d.airports[i]
		dist := query.Distance(s2.LatLngFromDegrees(airport.Lat, airport.Lng))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return d.airports[best], true
}

// SearchAirportsByName returns airports whose name contains the query or
// is within maxDist edits of it, case-insensitively. maxDist is capped at
// maxSearchDistance; results are sorted by ICAO code.
func (v *VatspyData) SearchAirportsByName(query string, maxDist int) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if maxDist > maxSearchDistance {
		maxDist = maxSearchDistance
	}

	d := v.load()
	var matches []Airport
	for _, airport := range d.airports {
		name := strings.ToLower(airport.Name)
		if strings.Contains(name, query) {
			matches = append(matches, airport)
			continue
		}
		if maxDist > 0 && levenshtein.ComputeDistance(query, name) <= maxDist {
			matches = append(matches, airport)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ICAO < matches[j].ICAO })
	return matches
}

func (d *dataset) firstAirport(positions []int) (Airport, bool) {
	if len(positions) == 0 {
		return Airport{}, false
	}
	return d.airports[positions[0]], true
}

func (d *dataset) firstFIR(positions []int) (FIR, bool) {
	if len(positions) == 0 {
		return FIR{}, false
	}
	return d.firs[positions[0]], true
}

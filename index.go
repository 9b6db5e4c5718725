package vatspy

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// airportGeohashPrecision sets the bucket size of the airport proximity
// index. Precision 3 gives ~156km x 156km cells: coarse enough that a cell
// plus its eight neighbors reliably covers the nearest airport, small
// enough to keep candidate lists short.
const airportGeohashPrecision = 3

// FIR boundaries are indexed by S2 cell coverings of their bounding boxes.
// FIRs span hundreds to thousands of kilometers, so coarse levels suffice.
const (
	firCellMinLevel = 2
	firCellMaxLevel = 4
	firCellMaxCells = 32
)

// dataset is one immutable build of the parsed records and every index
// over them. Reloading constructs a fresh dataset off to the side and
// publishes it with a single pointer swap, so readers never observe
// partial state.
//
// Indexes store integer positions into the record slices rather than
// record copies, keeping the seven keyed views from duplicating data and
// making the per-index tie-break rules (first match wins on list-valued
// indexes, last writer wins on single-valued ones) explicit.
type dataset struct {
	countries []Country
	airports  []Airport
	firs      []FIR
	uirs      []UIR
	parseErrs []ParseError

	countryByCode map[string]int
	airportByICAO map[string][]int
	airportByIATA map[string][]int
	firByICAO     map[string][]int
	firByPrefix   map[string]int
	uirByICAO     map[string]int
	uirByFIR      map[string]int

	firCells     map[s2.CellID][]int
	airportCells map[string][]int
}

func newDataset(res parseResult) *dataset {
	d := &dataset{
		countries: res.countries,
		airports:  res.airports,
		firs:      res.firs,
		uirs:      res.uirs,
		parseErrs: res.errs,
	}
	d.buildIndexes()
	d.buildSpatialIndexes()
	return d
}

func (d *dataset) buildIndexes() {
	d.countryByCode = make(map[string]int)
	for i, country := range d.countries {
		for _, code := range country.Codes {
			d.countryByCode[code] = i
		}
	}

	d.airportByICAO = make(map[string][]int, len(d.airports))
	d.airportByIATA = make(map[string][]int)
	for i, airport := range d.airports {
		d.airportByICAO[airport.ICAO] = append(d.airportByICAO[airport.ICAO], i)
		if airport.IATA != "" {
			d.airportByIATA[airport.IATA] = append(d.airportByIATA[airport.IATA], i)
		}
	}

	d.firByICAO = make(map[string][]int, len(d.firs))
	d.firByPrefix = make(map[string]int)
	for i, fir := range d.firs {
		d.firByICAO[fir.ICAO] = append(d.firByICAO[fir.ICAO], i)
		if fir.CallsignPrefix != "" {
			d.firByPrefix[fir.CallsignPrefix] = i
		}
	}

	d.uirByICAO = make(map[string]int, len(d.uirs))
	d.uirByFIR = make(map[string]int)
	for i, uir := range d.uirs {
		d.uirByICAO[uir.ICAO] = i
		for _, firID := range uir.FIRIDs {
			d.uirByFIR[firID] = i
		}
	}
}

func (d *dataset) buildSpatialIndexes() {
	d.firCells = make(map[s2.CellID][]int)
	coverer := &s2.RegionCoverer{
		MinLevel: firCellMinLevel,
		MaxLevel: firCellMaxLevel,
		MaxCells: firCellMaxCells,
	}
	for i, fir := range d.firs {
		bound := fir.Boundary.Bound
		rect := s2.EmptyRect()
		rect = rect.AddPoint(s2.LatLngFromDegrees(bound.Min.Lat(), bound.Min.Lon()))
		rect = rect.AddPoint(s2.LatLngFromDegrees(bound.Max.Lat(), bound.Max.Lon()))
		for _, cell := range coverer.Covering(rect) {
			d.firCells[cell] = append(d.firCells[cell], i)
		}
	}

	d.airportCells = make(map[string][]int)
	for i, airport := range d.airports {
		cell := geohash.EncodeWithPrecision(airport.Lat, airport.Lng, airportGeohashPrecision)
		d.airportCells[cell] = append(d.airportCells[cell], i)
	}
}

// firCandidates returns positions of FIRs whose cell covering contains the
// point. Coverings are disjoint per FIR, so each FIR appears at most once.
func (d *dataset) firCandidates(ll s2.LatLng) []int {
	leaf := s2.CellIDFromLatLng(ll)
	var candidates []int
	for level := firCellMinLevel; level <= firCellMaxLevel; level++ {
		candidates = append(candidates, d.firCells[leaf.Parent(level)]...)
	}
	return candidates
}

package vatspy

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// parserState tracks which section grammar applies to data lines.
type parserState int

const (
	stateStarted parserState = iota
	stateReadCountry
	stateReadAirport
	stateReadFIR
	stateReadUIR
	stateFinished
	// stateNone is entered after an unrecognized section header. Data
	// lines are dropped until the next recognized header; only the
	// reported error is evidence this happened.
	stateNone
)

const (
	countryFieldCount = 3
	airportFieldCount = 7
	firFieldCount     = 4
	uirFieldCount     = 3
)

// parseResult holds the flat record lists materialized from the parser's
// per-code maps, so list order is map-iteration order and carries no
// meaning.
type parseResult struct {
	countries []Country
	airports  []Airport
	firs      []FIR
	uirs      []UIR
	errs      []ParseError
}

// parser consumes the line-oriented data document. Records accumulate in
// maps keyed by their natural code: later lines with the same code replace
// earlier ones, except countries, where repeats append codes.
type parser struct {
	geo map[string]GeoItem
	log *slog.Logger

	countries map[string]*Country
	airports  map[string]Airport
	firs      map[string]FIR
	uirs      map[string]UIR
	errs      []ParseError
}

func newParser(geo map[string]GeoItem, log *slog.Logger) *parser {
	return &parser{
		geo:       geo,
		log:       log,
		countries: make(map[string]*Country),
		airports:  make(map[string]Airport),
		firs:      make(map[string]FIR),
		uirs:      make(map[string]UIR),
	}
}

func (p *parser) parse(raw string) parseResult {
	state := stateStarted
	scanner := bufio.NewScanner(strings.NewReader(raw))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			state = p.transition(lineNo, line)
			if state == stateFinished {
				break
			}
			continue
		}

		switch state {
		case stateReadCountry:
			p.readCountry(lineNo, line)
		case stateReadAirport:
			p.readAirport(lineNo, line)
		case stateReadFIR:
			p.readFIR(lineNo, line)
		case stateReadUIR:
			p.readUIR(lineNo, line)
		default:
			// No active section: the line is silently dropped.
		}
	}

	return p.result()
}

// transition maps a [Section] header to the next state. Section names are
// case-insensitive; [IDL] terminates the parse.
func (p *parser) transition(lineNo int, line string) parserState {
	section := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
	switch section {
	case "countries":
		return stateReadCountry
	case "airports":
		return stateReadAirport
	case "firs":
		return stateReadFIR
	case "uirs":
		return stateReadUIR
	case "idl":
		return stateFinished
	default:
		p.reject(lineNo, line, fmt.Sprintf("unknown section %q", section))
		return stateNone
	}
}

func (p *parser) readCountry(lineNo int, line string) {
	tokens := strings.Split(line, "|")
	if len(tokens) != countryFieldCount {
		p.reject(lineNo, line, "country record must have 3 fields")
		return
	}

	name, code, radarName := tokens[0], tokens[1], tokens[2]
	if existing, ok := p.countries[name]; ok {
		// Repeated country lines only contribute extra codes; the radar
		// name from the first line sticks.
		existing.Codes = append(existing.Codes, code)
		return
	}

	country := &Country{Name: name, Codes: []string{code}, RadarName: DefaultRadarName}
	if radarName != "" {
		country.RadarName = radarName
	}
	p.countries[name] = country
}

func (p *parser) readAirport(lineNo int, line string) {
	tokens := strings.Split(line, "|")
	if len(tokens) != airportFieldCount {
		p.reject(lineNo, line, "airport record must have 7 fields")
		return
	}

	lat, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		p.reject(lineNo, line, "invalid latitude")
		return
	}
	lng, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		p.reject(lineNo, line, "invalid longitude")
		return
	}

	p.airports[tokens[0]] = Airport{
		ICAO:   tokens[0],
		Name:   tokens[1],
		Lat:    lat,
		Lng:    lng,
		IATA:   tokens[4],
		FIRID:  tokens[5],
		Pseudo: tokens[6] == "1",
	}
}

func (p *parser) readFIR(lineNo int, line string) {
	tokens := strings.Split(line, "|")
	if len(tokens) != firFieldCount {
		p.reject(lineNo, line, "FIR record must have 4 fields")
		return
	}

	boundary, ok := p.geo[tokens[3]]
	if !ok {
		p.reject(lineNo, line, fmt.Sprintf("no boundary with id %q", tokens[3]))
		return
	}

	p.firs[tokens[0]] = FIR{
		ICAO:           tokens[0],
		Name:           tokens[1],
		CallsignPrefix: tokens[2],
		Boundary:       boundary,
	}
}

func (p *parser) readUIR(lineNo int, line string) {
	tokens := strings.Split(line, "|")
	if len(tokens) != uirFieldCount {
		p.reject(lineNo, line, "UIR record must have 3 fields")
		return
	}

	p.uirs[tokens[0]] = UIR{
		ICAO:   tokens[0],
		Name:   tokens[1],
		FIRIDs: strings.Split(tokens[2], ","),
	}
}

// reject records a recoverable line-level error and continues the pass.
func (p *parser) reject(lineNo int, line, reason string) {
	p.errs = append(p.errs, ParseError{Line: lineNo, Text: line, Reason: reason})
	p.log.Warn("skipping malformed line", "line", lineNo, "reason", reason)
}

func (p *parser) result() parseResult {
	res := parseResult{errs: p.errs}
	res.countries = make([]Country, 0, len(p.countries))
	for _, c := range p.countries {
		res.countries = append(res.countries, *c)
	}
	res.airports = make([]Airport, 0, len(p.airports))
	for _, a := range p.airports {
		res.airports = append(res.airports, a)
	}
	res.firs = make([]FIR, 0, len(p.firs))
	for _, f := range p.firs {
		res.firs = append(res.firs, f)
	}
	res.uirs = make([]UIR, 0, len(p.uirs))
	for _, u := range p.uirs {
		res.uirs = append(res.uirs, u)
	}
	return res
}

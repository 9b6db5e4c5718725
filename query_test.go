package vatspy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAirportByCode(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	tests := []struct {
		name     string
		code     string
		wantICAO string
		wantOK   bool
	}{
		{"icao lookup", "EGLL", "EGLL", true},
		{"iata lookup under 4 chars", "LHR", "EGLL", true},
		{"short code never tries icao", "JFK", "KJFK", true},
		{"icao miss falls back to iata", "07FA", "K07F", true},
		{"unknown icao", "ZZZZ", "", false},
		{"unknown iata", "ZZZ", "", false},
		{"empty code", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			airport, ok := v.FindAirportByCode(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantICAO, airport.ICAO)
		})
	}
}

func TestFindAirportByCallsign(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	airport, ok := v.FindAirportByCallsign("EGLL_N_TWR")
	require.True(t, ok)
	assert.Equal(t, "EGLL", airport.ICAO)

	airport, ok = v.FindAirportByCallsign("JFK_GND")
	require.True(t, ok)
	assert.Equal(t, "KJFK", airport.ICAO)

	_, ok = v.FindAirportByCallsign("ZZZZ_TWR")
	assert.False(t, ok)
}

func TestFindFIRByCallsignExactICAO(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	fir, ok := v.FindFIRByCallsign("EGTT_CTR")
	require.True(t, ok)
	assert.Equal(t, "London", fir.Name)

	fir, ok = v.FindFIRByCallsign("KZWY")
	require.True(t, ok)
	assert.Equal(t, "New York Oceanic", fir.Name)
}

// A callsign prefix shorter than five characters is only reachable through
// the exact ICAO path, never through the prefix scan. With prefixes "EGTT"
// and "EG" on file, "EGTTLON_CTR" tries ICAO "EGTTLON", then prefixes of
// lengths 11 down to 5, and resolves nothing.
func TestFindFIRByCallsignShortPrefixExcluded(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	_, ok := v.FindFIRByCallsign("EGTTLON_CTR")
	assert.False(t, ok)

	_, ok = v.FindFIRByCallsign("EGX_CTR")
	assert.False(t, ok)
}

func TestFindFIRByCallsignLongestPrefixWins(t *testing.T) {
	doc := `[FIRs]
EGTT|London|EGTTLON|EGTT
EGPX|Scottish|EGTTL|EGPX
`
	v, err := Load([]byte(fixtureBoundaries), doc)
	require.NoError(t, err)

	// ICAO "EGTTLON" misses, then the prefix scan matches "EGTTLON" at
	// length 7 before it ever tries "EGTTL" at length 5.
	fir, ok := v.FindFIRByCallsign("EGTTLON_CTR")
	require.True(t, ok)
	assert.Equal(t, "London", fir.Name)

	fir, ok = v.FindFIRByCallsign("EGTTLX_CTR")
	require.True(t, ok)
	assert.Equal(t, "Scottish", fir.Name)

	_, ok = v.FindFIRByCallsign("EGTT_CTR")
	require.True(t, ok)
}

func TestFindFIRByLocation(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	fir, ok := v.FindFIRByLocation(51.5, -0.1)
	require.True(t, ok)
	assert.Equal(t, "EGTT", fir.ICAO)

	fir, ok = v.FindFIRByLocation(58.0, -4.0)
	require.True(t, ok)
	assert.Equal(t, "EGPX", fir.ICAO)

	fir, ok = v.FindFIRByLocation(35.0, -60.0)
	require.True(t, ok)
	assert.Equal(t, "KZWY", fir.ICAO)

	_, ok = v.FindFIRByLocation(0.0, 100.0)
	assert.False(t, ok)

	_, ok = v.FindFIRByLocation(91.0, 0.0)
	assert.False(t, ok)
}

func TestFindNearestAirport(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	airport, ok := v.FindNearestAirport(51.48, -0.45)
	require.True(t, ok)
	assert.Equal(t, "EGLL", airport.ICAO)

	airport, ok = v.FindNearestAirport(51.46, -0.18)
	require.True(t, ok)
	assert.Equal(t, "EGLW", airport.ICAO)

	// Far from any geohash bucket: full scan fallback still finds the
	// closest airport.
	airport, ok = v.FindNearestAirport(-30.0, 150.0)
	require.True(t, ok)
	assert.NotEmpty(t, airport.ICAO)
}

func TestSearchAirportsByName(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	matches := v.SearchAirportsByName("london", 0)
	require.Len(t, matches, 2)
	assert.Equal(t, "EGLL", matches[0].ICAO)
	assert.Equal(t, "EGLW", matches[1].ICAO)

	// One edit away from "London Heathrow"; no substring match.
	matches = v.SearchAirportsByName("London Heathrpw", 1)
	require.Len(t, matches, 1)
	assert.Equal(t, "EGLL", matches[0].ICAO)

	assert.Empty(t, v.SearchAirportsByName("London Heathrpw", 0))
	assert.Empty(t, v.SearchAirportsByName("", 2))
}

func TestQueryMissesAreNotErrors(t *testing.T) {
	v, err := mustLoadFixture()
	require.NoError(t, err)

	_, ok := v.FindCountryByCode("XX")
	assert.False(t, ok)
	_, ok = v.FindFIRByCode("XXXX")
	assert.False(t, ok)
	_, ok = v.FindUIRByCode("XXXX")
	assert.False(t, ok)
	_, ok = v.FindFIRByCallsign("XXXX_CTR")
	assert.False(t, ok)
}

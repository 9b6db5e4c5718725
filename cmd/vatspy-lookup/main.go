// Command vatspy-lookup resolves VAT-Spy dataset queries from the command
// line.
//
// Usage:
//
//	vatspy-lookup -kind fir EGTT
//	vatspy-lookup -kind callsign LON_SC_CTR
//	vatspy-lookup -kind location 51.5 -0.1
//
// Source locations can be overridden in vatspy-lookup.yaml or via
// VATSPY_DATA_PATH / VATSPY_BOUNDARIES_PATH environment variables, which
// also accept local file paths.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	vatspy "github.com/viert/go-vatspy-data"
)

type settings struct {
	DataPath       string
	BoundariesPath string
}

func loadSettings() (*settings, error) {
	v := viper.New()
	v.SetDefault("data_path", vatspy.DefaultDataURL)
	v.SetDefault("boundaries_path", vatspy.DefaultBoundariesURL)

	v.SetConfigName("vatspy-lookup")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("VATSPY")
	v.AutomaticEnv()

	return &settings{
		DataPath:       v.GetString("data_path"),
		BoundariesPath: v.GetString("boundaries_path"),
	}, nil
}

// firView summarizes a FIR for output: the raw boundary geometry is too
// large to print usefully.
type firView struct {
	ICAO           string  `json:"icao"`
	Name           string  `json:"name"`
	CallsignPrefix string  `json:"callsign_prefix,omitempty"`
	Oceanic        bool    `json:"oceanic"`
	CentroidLat    float64 `json:"centroid_lat"`
	CentroidLng    float64 `json:"centroid_lng"`
}

func viewFIR(fir vatspy.FIR) firView {
	return firView{
		ICAO:           fir.ICAO,
		Name:           fir.Name,
		CallsignPrefix: fir.CallsignPrefix,
		Oceanic:        fir.Boundary.Properties.Oceanic,
		CentroidLat:    fir.Boundary.Centroid.Lat(),
		CentroidLng:    fir.Boundary.Centroid.Lon(),
	}
}

func main() {
	kind := flag.String("kind", "airport", "lookup kind: country, airport, fir, uir, callsign, location, nearest")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: vatspy-lookup -kind <kind> <query...>")
		os.Exit(2)
	}

	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Loading VAT-Spy dataset...")
	data, err := vatspy.New(
		vatspy.WithDataPath(cfg.DataPath),
		vatspy.WithBoundariesPath(cfg.BoundariesPath),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if errs := data.ParseErrors(); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d lines skipped during parse\n", len(errs))
	}

	result, found, err := lookup(data, *kind, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if !found {
		fmt.Fprintln(os.Stderr, "Not found")
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func lookup(data *vatspy.VatspyData, kind string, args []string) (any, bool, error) {
	query := args[0]

	switch strings.ToLower(kind) {
	case "country":
		country, ok := data.FindCountryByCode(query)
		return country, ok, nil
	case "airport":
		airport, ok := data.FindAirportByCode(query)
		return airport, ok, nil
	case "fir":
		fir, ok := data.FindFIRByCode(query)
		return viewFIR(fir), ok, nil
	case "uir":
		uir, ok := data.FindUIRByCode(query)
		return uir, ok, nil
	case "callsign":
		fir, ok := data.FindFIRByCallsign(query)
		return viewFIR(fir), ok, nil
	case "location", "nearest":
		if len(args) < 2 {
			return nil, false, fmt.Errorf("%s lookup needs <lat> <lng>", kind)
		}
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid latitude %q", args[0])
		}
		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, false, fmt.Errorf("invalid longitude %q", args[1])
		}
		if strings.EqualFold(kind, "nearest") {
			airport, ok := data.FindNearestAirport(lat, lng)
			return airport, ok, nil
		}
		fir, ok := data.FindFIRByLocation(lat, lng)
		return viewFIR(fir), ok, nil
	default:
		return nil, false, fmt.Errorf("unknown lookup kind %q", kind)
	}
}

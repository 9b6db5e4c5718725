// Package vatspy parses the VAT-Spy reference dataset (countries, airports,
// FIRs, UIRs and their boundaries) into an immutable in-memory structure
// with fast code, callsign and location lookups.
package vatspy

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Default locations of the two source documents in the VATSIM data
// project.
const (
	DefaultDataURL       = "https://raw.githubusercontent.com/vatsimnetwork/vatspy-data-project/master/VATSpy.dat"
	DefaultBoundariesURL = "https://raw.githubusercontent.com/vatsimnetwork/vatspy-data-project/master/Boundaries.geojson"
)

// Config contains construction options for VatspyData.
type Config struct {
	DataPath       string // URL or local path of the data document
	BoundariesPath string // URL or local path of the boundaries document
	HTTPClient     *http.Client
	Logger         *slog.Logger
}

// Option is a functional option for configuring VatspyData.
type Option func(*Config)

// WithDataPath sets the URL or local path of the data document.
func WithDataPath(path string) Option {
	return func(c *Config) {
		c.DataPath = path
	}
}

// WithBoundariesPath sets the URL or local path of the boundaries document.
func WithBoundariesPath(path string) Option {
	return func(c *Config) {
		c.BoundariesPath = path
	}
}

// WithHTTPClient sets the client used to fetch remote documents.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLogger sets the logger used to report skipped lines.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// defaultHTTPClient is shared across instances; per-request policy beyond
// the timeout is the caller's concern.
var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

func defaultConfig() *Config {
	return &Config{
		DataPath:       DefaultDataURL,
		BoundariesPath: DefaultBoundariesURL,
		HTTPClient:     defaultHTTPClient,
		Logger:         slog.Default(),
	}
}

// VatspyData holds one parsed build of the dataset. All lookups read the
// current build through an atomic pointer, so a VatspyData is safe to
// share across any number of concurrent readers, including during Reload.
type VatspyData struct {
	config *Config
	data   atomic.Pointer[dataset]
}

// New fetches both source documents and builds the dataset.
//
// Example:
//
//	v, err := vatspy.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fir, ok := v.FindFIRByCallsign("LON_SC_CTR")
func New(opts ...Option) (*VatspyData, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	v := &VatspyData{config: cfg}
	if err := v.Reload(); err != nil {
		return nil, err
	}
	return v, nil
}

// Load builds a dataset from already-retrieved document contents, for
// callers that own retrieval themselves.
func Load(boundaries []byte, data string, opts ...Option) (*VatspyData, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	d, err := build(boundaries, data, cfg.Logger)
	if err != nil {
		return nil, err
	}

	v := &VatspyData{config: cfg}
	v.data.Store(d)
	return v, nil
}

// Reload fetches both documents and rebuilds all records and indexes. The
// new build is constructed fully off to the side and published with a
// single pointer swap; on error the previous build stays in place.
func (v *VatspyData) Reload() error {
	boundaries, err := fetchDocument(v.config.HTTPClient, v.config.BoundariesPath)
	if err != nil {
		return fmt.Errorf("fetching boundaries document: %w", err)
	}
	data, err := fetchDocument(v.config.HTTPClient, v.config.DataPath)
	if err != nil {
		return fmt.Errorf("fetching data document: %w", err)
	}

	d, err := build(boundaries, string(data), v.config.Logger)
	if err != nil {
		return err
	}
	v.data.Store(d)
	return nil
}

// build runs the construction pipeline: boundaries first, since every FIR
// line resolves against them, then the record parser, then the indexes.
func build(boundaries []byte, data string, log *slog.Logger) (*dataset, error) {
	geo, err := loadBoundaries(boundaries)
	if err != nil {
		return nil, err
	}
	return newDataset(newParser(geo, log).parse(data)), nil
}

// fetchDocument retrieves a document from an HTTP(S) URL or a local path.
func fetchDocument(client *http.Client, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		return os.ReadFile(path)
	}

	resp, err := client.Get(path)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP GET %s: status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (v *VatspyData) load() *dataset {
	return v.data.Load()
}

// Countries returns the parsed country list. The slice is read-only and
// its order carries no meaning.
func (v *VatspyData) Countries() []Country {
	return v.load().countries
}

// Airports returns the parsed airport list. The slice is read-only and its
// order carries no meaning.
func (v *VatspyData) Airports() []Airport {
	return v.load().airports
}

// FIRs returns the parsed FIR list. The slice is read-only and its order
// carries no meaning.
func (v *VatspyData) FIRs() []FIR {
	return v.load().firs
}

// UIRs returns the parsed UIR list. The slice is read-only and its order
// carries no meaning.
func (v *VatspyData) UIRs() []UIR {
	return v.load().uirs
}

// ParseErrors returns the lines skipped while building the current
// dataset. A non-empty result means the dataset is best-effort.
func (v *VatspyData) ParseErrors() []ParseError {
	return v.load().parseErrs
}

// Singleton pattern for the default instance.
var (
	defaultData     *VatspyData
	defaultDataOnce sync.Once
	defaultDataErr  error
)

// Default returns a shared VatspyData built from the default URLs,
// fetching it on first call.
func Default() (*VatspyData, error) {
	defaultDataOnce.Do(func() {
		defaultData, defaultDataErr = New()
	})
	return defaultData, defaultDataErr
}

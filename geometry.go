package vatspy

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// GeoItemProperties carries the label metadata attached to a boundary
// feature. Region and Division are empty when the feature omits them.
type GeoItemProperties struct {
	ID       string
	Oceanic  bool
	LabelLon float64
	LabelLat float64
	Region   string
	Division string
}

// GeoItem is an enriched boundary: the raw feature geometry plus its
// bounding box and centroid, computed once at load time. A GeoItem is owned
// exclusively by the FIR that references it.
type GeoItem struct {
	Properties GeoItemProperties
	Geometry   orb.Geometry
	Bound      orb.Bound
	Centroid   orb.Point
}

// Contains reports whether the point lies within the boundary shape.
func (g GeoItem) Contains(lat, lng float64) bool {
	pt := orb.Point{lng, lat}
	switch geom := g.Geometry.(type) {
	case orb.Polygon:
		return planar.PolygonContains(geom, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(geom, pt)
	default:
		return g.Bound.Contains(pt)
	}
}

// loadBoundaries decodes the boundaries document into a map keyed by
// feature id. Any malformed feature fails the whole load: every FIR line
// depends on its boundary resolving, so there is no per-feature recovery.
func loadBoundaries(raw []byte) (map[string]GeoItem, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding boundaries document: %w", err)
	}

	items := make(map[string]GeoItem, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			return nil, fmt.Errorf("boundary feature %d: missing geometry", i)
		}
		props, err := parseGeoProperties(feature.Properties)
		if err != nil {
			return nil, fmt.Errorf("boundary feature %d: %w", i, err)
		}
		centroid, _ := planar.CentroidArea(feature.Geometry)
		items[props.ID] = GeoItem{
			Properties: props,
			Geometry:   feature.Geometry,
			Bound:      feature.Geometry.Bound(),
			Centroid:   centroid,
		}
	}
	return items, nil
}

func parseGeoProperties(props geojson.Properties) (GeoItemProperties, error) {
	var p GeoItemProperties

	id, ok := props["id"].(string)
	if !ok || id == "" {
		return p, fmt.Errorf("missing feature id")
	}
	p.ID = id

	// The upstream dataset encodes oceanic as the string "1"/"0".
	p.Oceanic = propString(props, "oceanic") == "1"

	var err error
	if p.LabelLon, err = propFloat(props, "label_lon"); err != nil {
		return p, err
	}
	if p.LabelLat, err = propFloat(props, "label_lat"); err != nil {
		return p, err
	}

	p.Region = propString(props, "region")
	p.Division = propString(props, "division")
	return p, nil
}

func propString(props geojson.Properties, key string) string {
	s, _ := props[key].(string)
	return s
}

// propFloat accepts both JSON numbers and numeric strings: the upstream
// dataset has shipped label coordinates in both encodings over time.
func propFloat(props geojson.Properties, key string) (float64, error) {
	switch v := props[key].(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("property %q: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("property %q: missing or non-numeric", key)
	}
}

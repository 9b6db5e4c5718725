package vatspy

// Shared fixtures: three rectangular boundaries and a small data document
// exercising every section. Rectangles keep expected bounding boxes and
// centroids trivial to compute by hand.

const fixtureBoundaries = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "id": "EGTT",
        "oceanic": "0",
        "label_lon": "-1.0",
        "label_lat": "52.0",
        "region": "EMEA",
        "division": "GBR"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-8, 49], [2, 49], [2, 56], [-8, 56], [-8, 49]]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "id": "EGPX",
        "oceanic": "0",
        "label_lon": "-4.0",
        "label_lat": "58.0",
        "region": "EMEA",
        "division": "GBR"
      },
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-8, 56], [2, 56], [2, 61], [-8, 61], [-8, 56]]]
      }
    },
    {
      "type": "Feature",
      "properties": {
        "id": "KZWY",
        "oceanic": "1",
        "label_lon": -60.0,
        "label_lat": 35.0
      },
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [[[[-70, 30], [-50, 30], [-50, 40], [-70, 40], [-70, 30]]]]
      }
    }
  ]
}`

const fixtureData = `; VAT-Spy fixture document
; comments and blank lines are skipped in every section

[Countries]
United Kingdom|EG|Control
United States|K1|
United States|K2|
United States|PA|
France|LF|

[Airports]
EGLL|London Heathrow|51.4775|-0.461389|LHR|EGTT|0
EGLW|London Heliport|51.46972|-0.179444||EGTT|1
KJFK|New York John F Kennedy|40.639751|-73.778925|JFK|KZNY|0
K07F|Gliderport Grove|33.1|-96.4|07FA|KZFW|1

[FIRs]
EGTT|London|EGTT|EGTT
EGPX|Scottish|EG|EGPX
KZWY|New York Oceanic||KZWY

[UIRs]
EGTT-U|London Upper|EGTT,EGPX

[IDL]
this|line|is|never|parsed
`

func mustLoadFixture() (*VatspyData, error) {
	return Load([]byte(fixtureBoundaries), fixtureData)
}

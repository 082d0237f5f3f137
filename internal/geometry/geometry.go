// Package geometry handles the polygon boundaries stored on regions and fields.
//
// Polygons are persisted as WKT text and rendered as GeoJSON. Input may be a
// WKT string, a GeoJSON polygon, or a flat ring of the form
// {"type": "Polygon", "coordinates": [[x, y], ...]}. No spatial checks are
// performed: ring closure, winding order and coordinate bounds are accepted
// as given.
package geometry

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// ErrInvalidGeometry is returned when input is neither a WKT string nor a
// {type, coordinates} object describing a polygon.
var ErrInvalidGeometry = errors.New("invalid geometry")

var geometryStringPattern = regexp.MustCompile(`^([A-Z]+)\((.*)\)$`)

// ValidateGeometry reports whether input looks like a geometry: either a
// string of the form NAME(...) or a decoded JSON object with a string "type"
// and a "coordinates" member.
func ValidateGeometry(input any) bool {
	switch v := input.(type) {
	case string:
		return geometryStringPattern.MatchString(v)
	case map[string]any:
		_, isString := v["type"].(string)
		_, hasCoordinates := v["coordinates"]
		return isString && hasCoordinates
	default:
		return false
	}
}

// ConvertGeometryToString renders p as POLYGON((x y, x y, ...)). Rings are
// separated by ", ".
func ConvertGeometryToString(p orb.Polygon) string {
	if len(p) == 0 {
		return "POLYGON EMPTY"
	}

	rings := make([]string, 0, len(p))
	for _, ring := range p {
		coords := make([]string, 0, len(ring))
		for _, pt := range ring {
			coords = append(coords, formatFloat(pt[0])+" "+formatFloat(pt[1]))
		}
		rings = append(rings, "("+strings.Join(coords, ", ")+")")
	}
	return "POLYGON(" + strings.Join(rings, ", ") + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Polygon is a GORM column type for polygon boundaries.
type Polygon orb.Polygon

// Parse builds a Polygon from a decoded JSON value (string or object).
func Parse(input any) (Polygon, error) {
	if !ValidateGeometry(input) {
		return nil, ErrInvalidGeometry
	}

	switch v := input.(type) {
	case string:
		p, err := wkt.UnmarshalPolygon(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
		}
		return Polygon(p), nil
	case map[string]any:
		return parseObject(v)
	}
	return nil, ErrInvalidGeometry
}

func parseObject(obj map[string]any) (Polygon, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	if g, err := geojson.UnmarshalGeometry(raw); err == nil {
		if p, ok := g.Geometry().(orb.Polygon); ok {
			return Polygon(p), nil
		}
		return nil, fmt.Errorf("%w: expected Polygon, got %s", ErrInvalidGeometry, g.Type)
	}

	// flat ring: coordinates is a list of [x, y] pairs
	coords, err := json.Marshal(obj["coordinates"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	var ring orb.Ring
	if err := json.Unmarshal(coords, &ring); err != nil {
		return nil, fmt.Errorf("%w: coordinates must be a list of [x, y] pairs", ErrInvalidGeometry)
	}
	return Polygon{ring}, nil
}

// IsEmpty reports whether p has no rings.
func (p Polygon) IsEmpty() bool {
	return len(p) == 0
}

// String returns the WKT form of p.
func (p Polygon) String() string {
	return ConvertGeometryToString(orb.Polygon(p))
}

// GormDataType stores polygons as WKT text.
func (Polygon) GormDataType() string {
	return "text"
}

// Value implements driver.Valuer, storing p as the WKT text produced by
// ConvertGeometryToString.
func (p Polygon) Value() (driver.Value, error) {
	return ConvertGeometryToString(orb.Polygon(p)), nil
}

// Scan implements sql.Scanner.
func (p *Polygon) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("geometry: cannot scan %T", src)
	}

	poly, err := wkt.UnmarshalPolygon(s)
	if err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	*p = Polygon(poly)
	return nil
}

// MarshalJSON renders p as a GeoJSON geometry.
func (p Polygon) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(geojson.NewGeometry(orb.Polygon(p)))
}

// UnmarshalJSON accepts a WKT string or a {type, coordinates} object.
func (p *Polygon) UnmarshalJSON(data []byte) error {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return err
	}
	if input == nil {
		*p = nil
		return nil
	}

	poly, err := Parse(input)
	if err != nil {
		return err
	}
	*p = poly
	return nil
}

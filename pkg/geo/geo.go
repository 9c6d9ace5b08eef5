package geo

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/geoquery/pkg/query"
)

// Latitude bounds in whole degrees.
const (
	MinLatitude = -90
	MaxLatitude = 90
)

// MsgLocationParse is the single reason reported for any malformed coordinate.
const MsgLocationParse = "location parsing failed"

// Latitude is a whole-degree latitude guaranteed to lie in [-90, 90].
// The zero value is the equator.
type Latitude struct {
	degrees int
}

// NewLatitude validates n and returns it as a Latitude.
func NewLatitude(n int) (Latitude, error) {
	return ParseLatitude(strconv.Itoa(n))
}

// ParseLatitude parses a base-10 integer latitude.
func ParseLatitude(raw string) (Latitude, error) {
	return LatitudeParser.Parse(raw)
}

// Degrees returns the latitude as an int.
func (l Latitude) Degrees() int {
	return l.degrees
}

func (l Latitude) String() string {
	return strconv.Itoa(l.degrees)
}

// LatitudeParser is the query parser for Latitude values.
var LatitudeParser = query.Map(
	query.Int(MinLatitude, MaxLatitude),
	func(n int) Latitude { return Latitude{degrees: n} },
)

// Coordinate is a longitude/latitude pair. No range is enforced on either component.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(c.Longitude), formatFloat(c.Latitude))
}

// CoordinateParser parses "<lng>,<lat>". Anything other than exactly two
// numeric components fails with MsgLocationParse.
var CoordinateParser = query.Composite(2, MsgLocationParse, func(c []float64) Coordinate {
	return Coordinate{Longitude: c[0], Latitude: c[1]}
})

// ParseCoordinate parses "<lng>,<lat>".
func ParseCoordinate(raw string) (Coordinate, error) {
	return CoordinateParser.Parse(raw)
}

// BoundingBox is an area described by its north-east and south-west corners.
// The corners are not checked against each other: a box whose north-east
// corner lies south or west of its south-west corner decodes as given.
type BoundingBox struct {
	NorthEast Coordinate `json:"northeast"`
	SouthWest Coordinate `json:"southwest"`
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("ne=%s sw=%s", b.NorthEast, b.SouthWest)
}

// Default query keys of the bounding box corners.
const (
	NorthEastKey = "ne"
	SouthWestKey = "sw"
)

// BoundingBoxSchema decodes a bounding box from ne=<lng>,<lat>&sw=<lng>,<lat>.
// Both corners are fail-fast: if either is malformed the whole box fails
// and the other corner is discarded.
var BoundingBoxSchema = NewBoundingBoxSchema(NorthEastKey, SouthWestKey)

// NewBoundingBoxSchema builds a bounding box schema with custom corner keys.
func NewBoundingBoxSchema(neKey, swKey string) query.Schema[BoundingBox] {
	return query.NewSchema(
		query.Strict(neKey, CoordinateParser, func(b *BoundingBox, c Coordinate) { b.NorthEast = c }),
		query.Strict(swKey, CoordinateParser, func(b *BoundingBox, c Coordinate) { b.SouthWest = c }),
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Package geo holds the geographic value types decoded from query strings
// and their parsers: a bounded whole-degree Latitude, a longitude/latitude
// Coordinate and a BoundingBox made of two coordinates.
package geo

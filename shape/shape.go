// Package shape converts hex outlines into OGC simple-feature geometries for
// consumers that draw or export shapes rather than raw point lists.
package shape

import (
	"fmt"

	"github.com/gravitas-015/hexcore/hex"
	geom "github.com/peterstace/simplefeatures/geom"
)

// Ring returns the closed outline of h as a line string: corners 0..5 then
// corner 0 again. A layout with a degenerate size yields an error.
func Ring(l hex.Layout, h hex.Hex) (geom.LineString, error) {
	corners, _ := l.PolygonCorners(h)
	coords := make([]float64, 0, 2*(len(corners)+1))
	for _, c := range corners {
		coords = append(coords, c.X, c.Y)
	}
	coords = append(coords, corners[0].X, corners[0].Y)
	ls, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.LineString{}, fmt.Errorf("outline of %v: %w", h, err)
	}
	return ls, nil
}

// Polygon returns the outline of h as a polygon.
func Polygon(l hex.Layout, h hex.Hex) (geom.Polygon, error) {
	ring, err := Ring(l, h)
	if err != nil {
		return geom.Polygon{}, err
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("polygon of %v: %w", h, err)
	}
	return poly, nil
}

// MultiPolygon returns one polygon per hex, in input order. Simple features
// forbid member polygons that share an edge, so neighboring hexes are
// rejected; use Collection for contiguous regions.
func MultiPolygon(l hex.Layout, hexes []hex.Hex) (geom.MultiPolygon, error) {
	polys := make([]geom.Polygon, 0, len(hexes))
	for _, h := range hexes {
		p, err := Polygon(l, h)
		if err != nil {
			return geom.MultiPolygon{}, err
		}
		polys = append(polys, p)
	}
	mp, err := geom.NewMultiPolygon(polys)
	if err != nil {
		return geom.MultiPolygon{}, fmt.Errorf("multipolygon of %d hexes: %w", len(hexes), err)
	}
	return mp, nil
}

// Collection returns one polygon per hex, in input order, as a geometry
// collection. Unlike MultiPolygon it accepts hexes that share edges.
func Collection(l hex.Layout, hexes []hex.Hex) (geom.GeometryCollection, error) {
	geoms := make([]geom.Geometry, 0, len(hexes))
	for _, h := range hexes {
		p, err := Polygon(l, h)
		if err != nil {
			return geom.GeometryCollection{}, err
		}
		geoms = append(geoms, p.AsGeometry())
	}
	return geom.NewGeometryCollection(geoms), nil
}

// Center returns the pixel center of h as a point geometry.
func Center(l hex.Layout, h hex.Hex) (geom.Point, error) {
	c := l.ToPixel(h)
	pt, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: c.X, Y: c.Y}, Type: geom.DimXY})
	if err != nil {
		return geom.Point{}, fmt.Errorf("center of %v: %w", h, err)
	}
	return pt, nil
}

// WKT returns the polygon of h as well-known text.
func WKT(l hex.Layout, h hex.Hex) (string, error) {
	p, err := Polygon(l, h)
	if err != nil {
		return "", err
	}
	return p.AsText(), nil
}

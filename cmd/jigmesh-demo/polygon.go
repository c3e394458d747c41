package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"jigmesh/geom2d"
)

// parsePolygon accepts a tiny subset of WKT polygon syntax —
// "(x y, x y, x y)" for the shell, optionally followed by one or more
// "(x y, ...)" hole rings, space-separated — just enough to drive the
// demo CLI without pulling in a full WKT grammar (see geom/wkt_parser.go
// in the broader mesh toolkit for the real thing).
func parsePolygon(s string) (geom2d.Polygon, []geom2d.Polygon, error) {
	rings, err := splitRings(s)
	if err != nil {
		return geom2d.Polygon{}, nil, err
	}
	if len(rings) == 0 {
		return geom2d.Polygon{}, nil, errors.New("no polygon rings given")
	}

	outer, err := parseRing(rings[0])
	if err != nil {
		return geom2d.Polygon{}, nil, err
	}

	holes := make([]geom2d.Polygon, 0, len(rings)-1)
	for _, r := range rings[1:] {
		hole, err := parseRing(r)
		if err != nil {
			return geom2d.Polygon{}, nil, err
		}
		holes = append(holes, hole)
	}
	return outer, holes, nil
}

// splitRings splits a string of the form "(...) (...) (...)" into its
// parenthesised groups.
func splitRings(s string) ([]string, error) {
	var rings []string
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				if start < 0 {
					return nil, errors.New("unbalanced parentheses")
				}
				rings = append(rings, s[start:i])
				start = -1
			}
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	return rings, nil
}

func parseRing(s string) (geom2d.Polygon, error) {
	parts := strings.Split(s, ",")
	points := make([]geom2d.Vector2, 0, len(parts))
	for _, p := range parts {
		fields := strings.Fields(strings.TrimSpace(p))
		if len(fields) != 2 {
			return geom2d.Polygon{}, errors.Errorf("expected 'x y' pair, got %q", p)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return geom2d.Polygon{}, errors.Wrapf(err, "parsing x in %q", p)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return geom2d.Polygon{}, errors.Wrapf(err, "parsing y in %q", p)
		}
		points = append(points, geom2d.Vector2{X: x, Y: y})
	}
	if len(points) < 3 {
		return geom2d.Polygon{}, errors.New("ring needs at least 3 points")
	}
	return geom2d.Polygon{Points: points}, nil
}

func parsePoint(s string) (geom2d.Vector2, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return geom2d.Vector2{}, errors.Errorf("expected 'x y' pair, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom2d.Vector2{}, errors.Wrapf(err, "parsing x in %q", s)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom2d.Vector2{}, errors.Wrapf(err, "parsing y in %q", s)
	}
	return geom2d.Vector2{X: x, Y: y}, nil
}

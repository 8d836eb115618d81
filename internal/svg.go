package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read polygons out of an SVG document. This is not a full (or even correct)
// svg reader. It finds every <polygon> element and converts its points
// attribute, in document order. Winding is left as drawn; decomposition
// normalizes it.
func ReadSVGPolygons(r io.Reader) (PolygonList, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	elements := rootEl.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no <polygon> elements found")
	}

	list := make(PolygonList, 0, len(elements))
	for i, el := range elements {
		poly, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		list = append(list, poly)
	}
	return list, nil
}

// Convenience for documents that hold exactly one polygon.
func ReadSVGPolygon(r io.Reader) (Polygon, error) {
	list, err := ReadSVGPolygons(r)
	if err != nil {
		return Polygon{}, err
	}
	if len(list) > 1 {
		return Polygon{}, errors.Errorf("expected one <polygon>, found %d", len(list))
	}
	return list[0], nil
}

// The points attribute is a whitespace separated list of "x,y" pairs.
func parseSVGPoints(pointString string) (Polygon, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return Polygon{}, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, Point{x, y})
	}
	return Polygon{Points: points}, nil
}

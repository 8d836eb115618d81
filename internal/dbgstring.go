package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Debug representation of a polygon as a list of points, with reflex vertices
// in red. The polygon is normalized to counterclockwise first, since reflexivity
// depends on winding.
func (poly Polygon) DbgString(au aurora.Aurora) string {
	if poly.Len() < 3 {
		return fmt.Sprintf("%v", poly.Points)
	}
	normalized := poly.MakeCCW()
	parts := make([]string, len(normalized.Points))
	for i, p := range normalized.Points {
		s := fmt.Sprintf("(%g, %g)", p.X, p.Y)
		if normalized.IsReflex(i) {
			s = au.Red(s).String()
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

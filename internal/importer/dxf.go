package importer

import (
	"fmt"
	"math"
	"slices"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/binpack/internal/model"
)

// chainTolerance is the largest gap between LINE/ARC endpoints that still
// joins them into one outline.
const chainTolerance = 0.01

type point struct{ X, Y float64 }

type outline []point

// bounds returns the outline's bounding box size.
func (o outline) bounds() (w, h float64) {
	if len(o) == 0 {
		return 0, 0
	}
	minX, minY := o[0].X, o[0].Y
	maxX, maxY := minX, minY
	for _, p := range o[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}

// area is the absolute polygon area (shoelace formula).
func (o outline) area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return math.Abs(a) / 2
}

type segment struct {
	start, end point
}

// ImportDXF reads a DXF drawing and turns each closed shape (LWPOLYLINE,
// CIRCLE, or a chain of LINEs and ARCs) into an item the size of its bounding
// box, rounded up. Shapes with the same rounded size share one ItemSpec.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []outline
	var loose []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := lwPolylineOutline(e)
			if len(o) >= 3 {
				shapes = append(shapes, o)
			} else {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
			}
		case *entity.Circle:
			shapes = append(shapes, circleOutline(e, 64))
		case *entity.Arc:
			pts := arcPoints(e, 32)
			for i := 0; i+1 < len(pts); i++ {
				loose = append(loose, segment{start: pts[i], end: pts[i+1]})
			}
		case *entity.Line:
			loose = append(loose, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	shapes = append(shapes, chainSegments(loose, chainTolerance)...)
	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	index := map[model.Item]int{}
	for _, o := range shapes {
		w, h := o.bounds()
		if w < chainTolerance || h < chainTolerance {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", w, h))
			continue
		}
		item := model.NewItem(int(math.Ceil(w)), int(math.Ceil(h)))
		if i, ok := index[item]; ok {
			result.Items[i].Quantity++
			continue
		}
		index[item] = len(result.Items)
		result.Items = append(result.Items, model.NewItemSpec(fmt.Sprintf("DXF %s", item), item.Width, item.Height, 1))
	}

	return result
}

// lwPolylineOutline flattens an LWPOLYLINE, interpolating bulged edges.
func lwPolylineOutline(lw *entity.LwPolyline) outline {
	var o outline
	for i, v := range lw.Vertices {
		current := point{X: v[0], Y: v[1]}
		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) <= 1e-9 {
			o = append(o, current)
			continue
		}
		nv := lw.Vertices[(i+1)%len(lw.Vertices)]
		arc := bulgeArc(current, point{X: nv[0], Y: nv[1]}, bulge, 32)
		// The next vertex is appended by its own iteration.
		o = append(o, arc[:len(arc)-1]...)
	}
	return o
}

// bulgeArc samples the arc between p1 and p2 described by a DXF bulge factor
// (tan of a quarter of the included angle). Positive bulges run counter-clockwise.
func bulgeArc(p1, p2 point, bulge float64, n int) outline {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return outline{p1, p2}
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	perpX, perpY := -dy/chord, dx/chord
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	dist := radius - sagitta
	cx := (p1.X+p2.X)/2 + perpX*dist
	cy := (p1.Y+p2.Y)/2 + perpY*dist

	start := math.Atan2(p1.Y-cy, p1.X-cx)
	end := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 && end > start {
		end -= 2 * math.Pi
	} else if bulge > 0 && end < start {
		end += 2 * math.Pi
	}

	pts := make(outline, n+1)
	for i := range pts {
		a := start + float64(i)/float64(n)*(end-start)
		pts[i] = point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)}
	}
	return pts
}

// circleOutline approximates a circle as a regular n-gon.
func circleOutline(c *entity.Circle, n int) outline {
	o := make(outline, n)
	for i := range o {
		a := 2 * math.Pi * float64(i) / float64(n)
		o[i] = point{X: c.Center[0] + c.Radius*math.Cos(a), Y: c.Center[1] + c.Radius*math.Sin(a)}
	}
	return o
}

// arcPoints samples an ARC entity. DXF arc angles are in degrees, counter-clockwise.
func arcPoints(a *entity.Arc, n int) []point {
	cx, cy, r := a.Circle.Center[0], a.Circle.Center[1], a.Circle.Radius
	start := a.Angle[0] * math.Pi / 180
	end := a.Angle[1] * math.Pi / 180
	if end <= start {
		end += 2 * math.Pi
	}

	pts := make([]point, n+1)
	for i := range pts {
		t := start + float64(i)/float64(n)*(end-start)
		pts[i] = point{X: cx + r*math.Cos(t), Y: cy + r*math.Sin(t)}
	}
	return pts
}

// chainSegments joins segments whose endpoints are within tolerance into
// outlines, largest area first.
func chainSegments(segs []segment, tolerance float64) []outline {
	used := make([]bool, len(segs))
	var outlines []outline

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := outline{segs[start].start, segs[start].end}

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, s := range segs {
				if used[i] {
					continue
				}
				var next point
				switch {
				case near(tail, s.start, tolerance):
					next = s.end
				case near(tail, s.end, tolerance):
					next = s.start
				default:
					continue
				}
				chain = append(chain, next)
				used[i] = true
				extended = true
				break
			}
		}

		if len(chain) >= 3 && near(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
		}
		if len(chain) >= 3 {
			outlines = append(outlines, chain)
		}
	}

	slices.SortStableFunc(outlines, func(a, b outline) int {
		switch aa, ba := a.area(), b.area(); {
		case aa > ba:
			return -1
		case aa < ba:
			return 1
		}
		return 0
	})
	return outlines
}

func near(a, b point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

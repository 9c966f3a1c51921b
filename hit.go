package bramble

// HitShape is a custom interactive region in world coordinates. Setting one
// on a [BaseComponent] replaces the default rectangle test in ContainsPoint,
// so a component's visual bounds and its hit area can differ.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is a rectangular hit region.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) falls within the rectangle, edges included.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.Width && y <= r.Y+r.Height
}

// HitCircle is a circular hit region.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) is within Radius of the center.
func (c HitCircle) Contains(x, y float64) bool {
	dx, dy := x-c.CenterX, y-c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygonal hit region. Either winding order works;
// results for non-convex point lists are undefined.
type HitPolygon struct {
	Points []Vec2
}

// Contains tests (x, y) against every edge: for a convex polygon the point is
// inside exactly when the edge cross products all share a sign.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	var pos, neg bool
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

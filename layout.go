package symexpr

// The layout heuristic places the root at an origin and offsets each child
// horizontally by an amount that decays per depth level, so deep trees fan
// out without true collision detection. A second pass shrinks everything
// uniformly when the bounding box exceeds the viewport.

// layoutDecay is the per-level multiplier applied to the horizontal child
// offset, and layoutMinGap the floor it never decays below.
const (
	layoutDecay  = 0.65
	layoutMinGap = 25
)

// LayoutConfig carries the view parameters for Layout. Zero-valued XGap and
// YGap fall back to the defaults below; zero MaxWidth or MaxHeight disables
// the corresponding viewport constraint.
type LayoutConfig struct {
	// OriginX, OriginY is where the root node is placed.
	OriginX, OriginY int
	// XGap is the horizontal offset from a node to its children at the
	// root level, before decay. YGap is the fixed vertical step per level.
	XGap, YGap int
	// MaxWidth, MaxHeight bound the layout's bounding box; when exceeded,
	// all positions scale uniformly about the box's horizontal center and
	// top edge.
	MaxWidth, MaxHeight int
}

// DefaultXGap and DefaultYGap are the spacing used when LayoutConfig leaves
// XGap or YGap zero.
const (
	DefaultXGap = 80
	DefaultYGap = 55
)

// Place is one laid-out node. Parent is the index of the node's parent in
// the returned slice, -1 for the root, so a renderer can draw edges without
// seeing the tree itself.
type Place struct {
	// Label is the node's display text: a number, a variable letter, an
	// operator character, or a function name.
	Label string
	// X, Y is the node's position.
	X, Y int
	// Parent indexes the parent Place, -1 at the root.
	Parent int
}

// Layout computes 2-D positions for every node of a, parents above
// children, in preorder (each Parent index precedes the places that
// reference it). An empty expression yields nil. Purely derived output:
// the tree is not modified, and the result holds no reference to it.
func (a *Expr) Layout(cfg LayoutConfig) []Place {
	if a.n == nil {
		return nil
	}
	if cfg.XGap == 0 {
		cfg.XGap = DefaultXGap
	}
	if cfg.YGap == 0 {
		cfg.YGap = DefaultYGap
	}

	var places []Place
	var walk func(n *node, x, y int, offset float64, parent int)
	walk = func(n *node, x, y int, offset float64, parent int) {
		places = append(places, Place{Label: n.label(), X: x, Y: y, Parent: parent})
		self := len(places) - 1
		next := offset * layoutDecay
		if next < layoutMinGap {
			next = layoutMinGap
		}
		if n.left != nil {
			walk(n.left, x-int(offset), y+cfg.YGap, next, self)
		}
		if n.right != nil {
			walk(n.right, x+int(offset), y+cfg.YGap, next, self)
		}
	}
	walk(a.n, cfg.OriginX, cfg.OriginY, float64(cfg.XGap), -1)

	fit(places, cfg)
	return places
}

// fit shrinks the layout uniformly when its bounding box exceeds the
// viewport, scaling about the box's horizontal center and top edge so the
// aspect ratio is preserved.
func fit(places []Place, cfg LayoutConfig) {
	minX, maxX := places[0].X, places[0].X
	minY, maxY := places[0].Y, places[0].Y
	for _, p := range places[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	scale := 1.0
	if w := maxX - minX; cfg.MaxWidth > 0 && w > cfg.MaxWidth {
		scale = float64(cfg.MaxWidth) / float64(w)
	}
	if h := maxY - minY; cfg.MaxHeight > 0 && h > cfg.MaxHeight {
		if s := float64(cfg.MaxHeight) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1 {
		return
	}
	centerX := (minX + maxX) / 2
	topY := minY
	for i := range places {
		dx := places[i].X - centerX
		dy := places[i].Y - topY
		places[i].X = cfg.OriginX + int(float64(dx)*scale)
		places[i].Y = cfg.OriginY + int(float64(dy)*scale)
	}
}

package drone

// Shape is the outline an obstacle is drawn with.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeTriangle
	ShapeCircle
	ShapeHexagon
	ShapeStar
	ShapeDiamond
	ShapeRing
	ShapeCross
	ShapeOctagon
	ShapePlus
	ShapeArrow
	ShapeCapsule
	ShapeZig

	shapeCount
)

var shapeNames = [...]string{
	ShapeRect:     "rect",
	ShapeTriangle: "triangle",
	ShapeCircle:   "circle",
	ShapeHexagon:  "hexagon",
	ShapeStar:     "star",
	ShapeDiamond:  "diamond",
	ShapeRing:     "ring",
	ShapeCross:    "cross",
	ShapeOctagon:  "octagon",
	ShapePlus:     "plus",
	ShapeArrow:    "arrow",
	ShapeCapsule:  "capsule",
	ShapeZig:      "zig",
}

// String returns the shape's tag.
func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return "unknown"
	}
	return shapeNames[s]
}

// Shapes returns every shape in the spawn set.
func Shapes() []Shape {
	out := make([]Shape, shapeCount)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

package scene

import (
	"math"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
)

// Shape is the minimal single-object intersection contract ShapeList scans
// over. A full implementation is expected to replace ShapeList with a
// BVH/BKD-tree-backed Intersector; Shape stays the per-primitive seam
// either way.
type Shape interface {
	// Hit tests the ray against the shape within [tMin, tMax], returning
	// the hit distance alongside the surface hit and its material.
	Hit(ray core.Ray, tMin, tMax float64) (t float64, hit core.Hit, mat material.Material, ok bool)
}

// ShapeList is a linear-scan Intersector: it checks every shape and keeps
// the closest hit. Acceptable for the handful of primitives the reference
// scenes use; a production scene swaps this for a spatial index behind the
// same Intersector interface.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a ShapeList from the given shapes.
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

const tMinEpsilon = 1e-4

// Intersect implements Intersector.
func (l *ShapeList) Intersect(ray core.Ray) (core.Hit, material.Material, bool) {
	closest := math.Inf(1)
	var hit core.Hit
	var mat material.Material
	found := false

	for _, shape := range l.Shapes {
		if t, h, m, ok := shape.Hit(ray, tMinEpsilon, closest); ok {
			closest = t
			hit, mat, found = h, m, true
		}
	}

	return hit, mat, found
}

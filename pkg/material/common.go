package material

import "github.com/kallisthenes/spectrace/pkg/core"

// orientedNormal returns normal flipped, if necessary, to oppose incident —
// the convention the direct-lighting estimator and every built-in material
// use to decide which hemisphere is "outward".
func orientedNormal(normal, incident core.Vec3) core.Vec3 {
	if incident.Dot(normal) < 0 {
		return normal
	}
	return normal.Negate()
}

// reflectVector mirrors v about a surface with normal n.
func reflectVector(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

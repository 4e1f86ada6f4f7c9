package scene

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

func TestQuadHitInsideBounds(t *testing.T) {
	q := NewQuad(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		material.NewEmissive(spectral.Constant(3)),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	tHit, hit, mat, ok := q.Hit(ray, 1e-4, 1e9)

	require.True(t, ok)
	require.InDelta(t, 5.0, tHit, 1e-9)
	require.InDelta(t, 5.0, hit.Origin.Y, 1e-9)
	require.NotNil(t, mat)
}

func TestQuadHitOutsideBoundsMisses(t *testing.T) {
	q := NewQuad(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		material.NewEmissive(spectral.Constant(3)),
	)

	ray := core.NewRay(core.NewVec3(10, 0, 10), core.NewVec3(0, 1, 0))
	_, _, _, ok := q.Hit(ray, 1e-4, 1e9)
	require.False(t, ok)
}

func TestQuadSurfaceArea(t *testing.T) {
	q := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), material.NewEmissive(spectral.Constant(1)))
	require.InDelta(t, 6.0, q.SurfaceArea(), 1e-9)
}

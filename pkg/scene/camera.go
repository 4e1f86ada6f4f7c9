package scene

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
)

// PinholeCamera is a reference Camera implementation, generalized from the
// teacher's fixed-aspect-ratio renderer.Camera to an explicit image
// resolution so RayTowards can take pixel coordinates directly.
type PinholeCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width, height   int
}

// NewPinholeCamera creates a camera at origin looking toward lookAt, with
// the given vertical field of view (degrees) and image resolution.
func NewPinholeCamera(origin, lookAt, up core.Vec3, vfovDegrees float64, width, height int) *PinholeCamera {
	aspectRatio := float64(width) / float64(height)
	theta := vfovDegrees * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := origin.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &PinholeCamera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		width:           width,
		height:          height,
	}
}

// RayTowards implements Camera. pixelX/pixelY are jittered by the caller
// within [0, width) x [0, height) for antialiasing; this method only maps
// them onto the viewport.
func (c *PinholeCamera) RayTowards(pixelX, pixelY float64, rng *rand.Rand) core.Ray {
	s := pixelX / float64(c.width)
	t := 1 - pixelY/float64(c.height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction.Normalize())
}

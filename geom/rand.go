package geom

import (
	"math"
	"math/rand/v2"

	"github.com/veclab/dim"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S dim.Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle.
func RandomAngle[S dim.Float]() dim.Angle[S, dim.Radians] {
	return dim.Rad(RandomIn[S](0, 2*math.Pi))
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2[U dim.Unit, S dim.Float]() Vec2[S, U] {
	for {
		v := Vec2[S, U]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomDir2 returns a direction uniformly sampled from the full circle.
func RandomDir2[U dim.Unit, S dim.Float]() Dir2[S, U] {
	return Dir2FromAngle[U](RandomAngle[S]())
}

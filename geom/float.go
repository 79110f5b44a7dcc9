package geom

import (
	"math"

	"github.com/veclab/dim"
)

func isFinite[S dim.Float](v S) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func roundToInt[S dim.Float](v S) int {
	return int(math.Round(float64(v)))
}

func symbolOf[U dim.Unit]() string {
	var u U
	return u.Symbol()
}

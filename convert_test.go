package dim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertLength(t *testing.T) {
	ft := ConvertLength[Feet](Q[Meters](1.0))
	require.InDelta(t, 3.28084, ft.Value(), 1e-4)

	back := ConvertLength[Meters](ft)
	require.InDelta(t, 1.0, back.Value(), 1e-12)
}

func TestConvertLength_ThroughBase(t *testing.T) {
	// km -> in has no direct factor, it routes through meters
	in := ConvertLength[Inches](Q[Kilometers](1.0))
	require.InDelta(t, 39370.0787, in.Value(), 1e-3)

	mi := ConvertLength[Miles](Q[Kilometers](1.609344))
	require.InDelta(t, 1.0, mi.Value(), 1e-12)
}

func TestConvertLength_RoundTrip(t *testing.T) {
	for range 100 {
		v := rand.Float64()*2000 - 1000

		ft := ConvertLength[Feet](Q[Meters](v))
		require.InDelta(t, v, ConvertLength[Meters](ft).Value(), 1e-9)
	}
}

func TestConvertAngle(t *testing.T) {
	rad := ConvertAngle[Radians](Q[Degrees](180.0))
	require.InDelta(t, 3.14159265, rad.Value(), 1e-8)

	turns := ConvertAngle[Turns](Q[Degrees](90.0))
	require.InDelta(t, 0.25, turns.Value(), 1e-12)
}

func TestConvertMass(t *testing.T) {
	lb := ConvertMass[Pounds](Q[Kilograms](1.0))
	require.InDelta(t, 2.20462, lb.Value(), 1e-4)

	g := ConvertMass[Grams](Q[Pounds](1.0))
	require.InDelta(t, 453.59237, g.Value(), 1e-9)
}

func TestConvertDuration(t *testing.T) {
	ms := ConvertDuration[Milliseconds](Q[Minutes](1.0))
	require.InDelta(t, 60000.0, ms.Value(), 1e-9)
}

func TestConvert_SameUnitIsIdentity(t *testing.T) {
	q := Q[Meters](123.456)
	require.Equal(t, q, ConvertLength[Meters](q))
}

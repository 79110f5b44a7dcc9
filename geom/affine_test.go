package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veclab/dim"
)

type view = dim.ViewSpace
type local = dim.LocalSpace
type screen = dim.ScreenSpace

func TestAffine2_Identity(t *testing.T) {
	id := IdentityAffine2[world, float64]()
	p := P2[world](3.0, -4.0)

	require.Equal(t, p, id.TransformPoint(p))
	require.Equal(t, 1.0, id.Determinant())
}

func TestAffine2_Translation(t *testing.T) {
	tr := TranslationAffine2[local](V2[world](2.0, 1.0))

	require.Equal(t, P2[world](12.0, 11.0), tr.TransformPoint(P2[local](10.0, 10.0)))

	// translation does not apply to displacements
	require.Equal(t, V2[world](10.0, 10.0), tr.TransformVec(V2[local](10.0, 10.0)))
}

func TestAffine2_Rotation(t *testing.T) {
	rot := RotationAffine2[local, world](dim.AngleIn[dim.Radians](dim.Deg(90.0)))

	p := rot.TransformPoint(P2[local](1.0, 0.0))
	require.InDelta(t, 0.0, p.X, 1e-12)
	require.InDelta(t, 1.0, p.Y, 1e-12)
}

func TestAffine2_Scale(t *testing.T) {
	s := ScaleAffine2[local, world](2.0)
	require.Equal(t, P2[world](2.0, 4.0), s.TransformPoint(P2[local](1.0, 2.0)))

	n := NonuniformScaleAffine2[local](V2[world](2.0, 3.0))
	require.Equal(t, P2[world](2.0, 6.0), n.TransformPoint(P2[local](1.0, 2.0)))
}

func TestCompose2_EqualsSequentialTransforms(t *testing.T) {
	toWorld := RotationAffine2[local, world](dim.Rad(0.7))
	toView := TranslationAffine2[world](V2[view](5.0, -3.0))

	chain := Compose2(toWorld, toView)

	for range 50 {
		p := Point2FromVec(RandomVec2[local, float64]().Mul(10))

		direct := chain.TransformPoint(p)
		stepped := toView.TransformPoint(toWorld.TransformPoint(p))
		require.True(t, direct.ApproxEq(stepped, 1e-9), "%s != %s", direct, stepped)
	}
}

func TestCompose2_ThreeSpaces(t *testing.T) {
	a := ScaleAffine2[local, world](2.0)
	b := TranslationAffine2[world](V2[view](1.0, 0.0))
	c := ScaleAffine2[view, screen](10.0)

	chain := Compose2(Compose2(a, b), c)
	require.Equal(t, P2[screen](30.0, 20.0), chain.TransformPoint(P2[local](1.0, 1.0)))
}

func TestCameraAffine2_PositionMapsToOrigin(t *testing.T) {
	for range 50 {
		position := Point2FromVec(RandomVec2[world, float64]().Mul(100))
		camera := CameraAffine2(position, RandomAngle[float64](), RandomIn(0.5, 3.0))

		origin := camera.TransformPoint(position)
		require.InDelta(t, 0.0, origin.X, 1e-9)
		require.InDelta(t, 0.0, origin.Y, 1e-9)
	}
}

func TestCameraAffine2_ZoomAndRotation(t *testing.T) {
	// camera at origin, no rotation, zoom 2: world distances halve
	camera := CameraAffine2(P2[world](0.0, 0.0), dim.Rad(0.0), 2.0)
	require.Equal(t, P2[view](2.0, 1.0), camera.TransformPoint(P2[world](4.0, 2.0)))

	// camera rotated 90° ccw: the world point on the camera's local
	// x axis shows up on the view x axis
	camera = CameraAffine2(P2[world](0.0, 0.0), dim.Rad(math.Pi/2), 1.0)
	p := camera.TransformPoint(P2[world](0.0, 1.0))
	require.InDelta(t, 1.0, p.X, 1e-12)
	require.InDelta(t, 0.0, p.Y, 1e-12)
}

func TestAffine2_TryInverse(t *testing.T) {
	tr := Compose2(
		RotationAffine2[world, world](dim.Rad(0.5)),
		TranslationAffine2[world](V2[view](3.0, 4.0)),
	)

	inv, ok := tr.TryInverse()
	require.True(t, ok)

	p := P2[world](1.0, 2.0)
	back := inv.TransformPoint(tr.TransformPoint(p))
	require.True(t, back.ApproxEq(p, 1e-12), "%s != %s", back, p)
}

func TestAffine2_TryInverseSingular(t *testing.T) {
	_, ok := ScaleAffine2[world, view](0.0).TryInverse()
	require.False(t, ok)
}

func TestAffine2_InversePanicsOnSingular(t *testing.T) {
	require.Panics(t, func() {
		ScaleAffine2[world, view](0.0).Inverse()
	})
}

func TestAffine2_Elements(t *testing.T) {
	tr := TranslationAffine2[world](V2[view](7.0, 8.0))

	require.Equal(t, [3][2]float64{{1, 0}, {0, 1}, {7, 8}}, tr.Elements())
}

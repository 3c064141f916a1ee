package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	require.Zero(t, Distance(50.0687252, 19.9066193, 50.0687252, 19.9066193))
	require.Zero(t, Distance(0, 0, 0, 0))
	require.Zero(t, Distance(-33.865143, 151.209900, -33.865143, 151.209900))
}

func TestDistanceSymmetric(t *testing.T) {
	a := Distance(50.0687252, 19.9066193, 50.0692278, 19.9043930)
	b := Distance(50.0692278, 19.9043930, 50.0687252, 19.9066193)
	require.Equal(t, a, b)
}

func TestDistanceCampusToOlimp(t *testing.T) {
	d := Distance(50.0687252, 19.9066193, 50.0692278, 19.9043930)
	require.Greater(t, d, 0.0)
	require.Less(t, d, 0.2)
}

func TestDistanceMonotonic(t *testing.T) {
	// 克拉科夫 → 华沙 → 悉尼，距离应当递增
	krakowWarsaw := Distance(50.0614, 19.9366, 52.2297, 21.0122)
	krakowSydney := Distance(50.0614, 19.9366, -33.8651, 151.2099)
	require.Greater(t, krakowWarsaw, 200.0)
	require.Less(t, krakowWarsaw, 300.0)
	require.Greater(t, krakowSydney, krakowWarsaw)
}

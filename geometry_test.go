package main

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCentroid(t *testing.T) {
	ring := orb.Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	c := centroid(ring)
	assert.InDelta(t, 1.0, c[0], 1e-12)
	assert.InDelta(t, 1.0, c[1], 1e-12)
}

func TestCentroidEmpty(t *testing.T) {
	assert.Equal(t, orb.Point{}, centroid(orb.Ring{}))
}

func TestNormalizeAntimeridianNoop(t *testing.T) {
	// 经度都在 [-90, 90] 内，原样返回
	ring := orb.Ring{{-89.9, 10}, {0, 20}, {45.5, -30}, {89.9, 0}}
	assert.Equal(t, ring, normalizeAntimeridian(ring))
}

func TestNormalizeAntimeridianWrap(t *testing.T) {
	// 跨越 180 度经线的边界：负经度整体平移 +360
	ring := orb.Ring{{179.8, 10.5}, {-179.9, 10.6}, {-179.7, 10.2}, {179.9, 10.1}}
	out := normalizeAntimeridian(ring)

	assert.Len(t, out, len(ring))
	for i, p := range out {
		assert.GreaterOrEqual(t, p[0], 0.0)
		assert.Less(t, p[0], 360.0)
		// 纬度不动
		assert.Equal(t, ring[i][1], p[1])
	}
	assert.InDelta(t, 180.1, out[1][0], 1e-12)
	assert.InDelta(t, 180.3, out[2][0], 1e-12)
	assert.InDelta(t, 179.8, out[0][0], 1e-12)
}

func TestNormalizeAntimeridianPositiveUntouched(t *testing.T) {
	ring := orb.Ring{{120, 0}, {150, 0}, {179, 0}}
	out := normalizeAntimeridian(ring)
	assert.Equal(t, ring, out)
}

func TestScaleBoundaryIdentity(t *testing.T) {
	ring := orb.Ring{{139.1, 35.2}, {139.3, 35.4}, {139.5, 35.1}, {139.2, 34.9}}
	out := scaleBoundary(ring, 1.0)

	assert.Len(t, out, len(ring))
	for i := range ring {
		assert.InDelta(t, ring[i][0], out[i][0], 1e-9)
		assert.InDelta(t, ring[i][1], out[i][1], 1e-9)
	}
}

func TestScaleBoundaryKeepsCentroid(t *testing.T) {
	ring := orb.Ring{{10, 0}, {12, 1}, {13, 3}, {11, 4}, {9, 2}}
	for _, factor := range []float64{0.99, 0.5, 0.1} {
		before := centroid(ring)
		after := centroid(scaleBoundary(ring, factor))
		assert.InDelta(t, before[0], after[0], 1e-9)
		assert.InDelta(t, before[1], after[1], 1e-9)
	}
}

func TestScaleBoundaryShrinks(t *testing.T) {
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	factor := 0.5
	out := scaleBoundary(ring, factor)
	c := centroid(ring)
	for i := range ring {
		d0 := math.Hypot(ring[i][0]-c[0], ring[i][1]-c[1])
		d1 := math.Hypot(out[i][0]-c[0], out[i][1]-c[1])
		assert.InDelta(t, d0*factor, d1, 1e-9)
	}
}

package main

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h3 "github.com/uber/h3-go"
)

// 东京
var tokyo = orb.Point{139.69165, 35.68963}

func cellSet(records []GridRecord) []h3.H3Index {
	cells := make([]h3.H3Index, len(records))
	for i, rec := range records {
		cells[i] = rec.Cell
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	return cells
}

func TestComputeGridEmptyResolutions(t *testing.T) {
	records := ComputeGrid(tokyo, nil, 10, 0.99, testBook())
	assert.Empty(t, records)
}

func TestComputeGridSingleResolution(t *testing.T) {
	records := ComputeGrid(tokyo, []int{8}, 10, 0.99, testBook())

	origin := h3.FromGeo(h3.GeoCoord{Latitude: tokyo[1], Longitude: tokyo[0]}, 8)
	require.Len(t, records, len(h3.KRing(origin, 10)))

	for _, rec := range records {
		assert.Equal(t, 8, rec.Res)
		assert.Contains(t, testPalette, rec.Color)
		assert.NotEmpty(t, rec.Boundary)
	}
}

func TestComputeGridZeroRadius(t *testing.T) {
	// 半径 0 只剩中心格
	records := ComputeGrid(tokyo, []int{8}, 0, 0.99, testBook())
	require.Len(t, records, 1)
	origin := h3.FromGeo(h3.GeoCoord{Latitude: tokyo[1], Longitude: tokyo[0]}, 8)
	assert.Equal(t, origin, records[0].Cell)
}

func TestComputeGridSameCellsAcrossRedraws(t *testing.T) {
	// 颜色允许变，格子集合不允许变
	a := ComputeGrid(tokyo, []int{8}, 5, 0.99, NewColorBook(testPalette, rand.NewSource(1)))
	b := ComputeGrid(tokyo, []int{8}, 5, 0.99, NewColorBook(testPalette, rand.NewSource(2)))
	assert.Equal(t, cellSet(a), cellSet(b))
}

func TestComputeGridDeterministicBoundaries(t *testing.T) {
	a := ComputeGrid(tokyo, []int{7}, 3, 0.99, testBook())
	b := ComputeGrid(tokyo, []int{7}, 3, 0.99, testBook())
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Cell, b[i].Cell)
		assert.Equal(t, a[i].Boundary, b[i].Boundary)
		assert.Equal(t, a[i].Center, b[i].Center)
	}
}

func TestComputeGridResolutionsSortedAscending(t *testing.T) {
	records := ComputeGrid(tokyo, []int{9, 7}, 2, 0.99, testBook())
	require.NotEmpty(t, records)
	last := records[0].Res
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.Res, last)
		last = rec.Res
	}
	assert.Equal(t, 7, records[0].Res)
	assert.Equal(t, 9, records[len(records)-1].Res)
}

func TestComputeGridGroupingInvariant(t *testing.T) {
	book := testBook()
	records := ComputeGrid(tokyo, []int{7, 9}, 3, 0.99, book)

	// 祖先被分配过颜色的格子，必须用祖先的颜色
	matched := 0
	for _, rec := range records {
		parent := h3.ToParent(rec.Cell, 7)
		if want, ok := book.Lookup(parent); ok {
			assert.Equal(t, want, rec.Color)
			matched++
		}
	}
	// 最低分辨率那一层全部命中，保证断言没有空转
	origin := h3.FromGeo(h3.GeoCoord{Latitude: tokyo[1], Longitude: tokyo[0]}, 7)
	assert.GreaterOrEqual(t, matched, len(h3.KRing(origin, 3)))
}

func TestComputeGridScalesBoundaries(t *testing.T) {
	raw := ComputeGrid(tokyo, []int{8}, 0, 1.0, testBook())
	scaled := ComputeGrid(tokyo, []int{8}, 0, 0.5, testBook())
	require.Len(t, raw, 1)
	require.Len(t, scaled, 1)

	// 收缩不改变质心
	cRaw := centroid(raw[0].Boundary)
	cScaled := centroid(scaled[0].Boundary)
	assert.InDelta(t, cRaw[0], cScaled[0], 1e-9)
	assert.InDelta(t, cRaw[1], cScaled[1], 1e-9)
}

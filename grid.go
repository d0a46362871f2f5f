package main

import (
	"sort"

	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go"
)

// GridRecord 一个待渲染的格子
type GridRecord struct {
	Cell     h3.H3Index
	Res      int
	Boundary orb.Ring
	Color    string
	Center   orb.Point
}

// cellRing 取格子边界并转为 orb.Ring
func cellRing(cell h3.H3Index) orb.Ring {
	gb := h3.ToGeoBoundary(cell)
	ring := make(orb.Ring, len(gb))
	for i, g := range gb {
		ring[i] = orb.Point{g.Longitude, g.Latitude}
	}
	return ring
}

// cellCenter 格子中心点
func cellCenter(cell h3.H3Index) orb.Point {
	g := h3.ToGeo(cell)
	return orb.Point{g.Longitude, g.Latitude}
}

// ComputeGrid 根据视口中心与激活分辨率集生成整张网格
// 分辨率升序处理；每个分辨率围绕同一中心各取各的 k-ring，
// 同样的 radius 在更细的分辨率下覆盖的物理范围更小。
// 多分辨率时先在最低分辨率邻域上建颜色表，整轮绘制共用
func ComputeGrid(center orb.Point, resolutions []int, radius int, scale float64, book *ColorBook) []GridRecord {
	if len(resolutions) == 0 {
		return nil
	}
	sorted := append([]int(nil), resolutions...)
	sort.Ints(sorted)

	baseRes := sorted[0]
	grouped := len(sorted) > 1
	if grouped {
		origin := h3.FromGeo(h3.GeoCoord{Latitude: center[1], Longitude: center[0]}, baseRes)
		book.BuildBaseColors(h3.KRing(origin, radius))
	} else {
		book.Clear()
	}

	toBase := func(c h3.H3Index) h3.H3Index {
		return h3.ToParent(c, baseRes)
	}

	var records []GridRecord
	for _, res := range sorted {
		origin := h3.FromGeo(h3.GeoCoord{Latitude: center[1], Longitude: center[0]}, res)
		for _, cell := range h3.KRing(origin, radius) {
			ring := scaleBoundary(normalizeAntimeridian(cellRing(cell)), scale)
			records = append(records, GridRecord{
				Cell:     cell,
				Res:      res,
				Boundary: ring,
				Color:    book.ColorFor(cell, toBase, grouped),
				Center:   cellCenter(cell),
			})
		}
	}
	return records
}

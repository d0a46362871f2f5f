package main

import (
	"github.com/paulmach/orb"
)

// orb.Point 按 (lng, lat) 顺序存储，与 geojson 保持一致

// centroid 边界顶点的算术平均中心
func centroid(ring orb.Ring) orb.Point {
	if len(ring) == 0 {
		return orb.Point{}
	}
	var sx, sy float64
	for _, p := range ring {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(ring))
	return orb.Point{sx / n, sy / n}
}

// normalizeAntimeridian 修正跨越 180 度经线的格子边界
// 任一顶点经度落在 [-90, 90] 之外即视为疑似跨线，把所有负经度平移 +360，
// 否则该格子会被画成横贯整张地图的大多边形
func normalizeAntimeridian(ring orb.Ring) orb.Ring {
	crossed := false
	for _, p := range ring {
		if p[0] < -90 || p[0] > 90 {
			crossed = true
			break
		}
	}
	if !crossed {
		return ring
	}

	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		if p[0] < 0 {
			out[i] = orb.Point{p[0] + 360, p[1]}
		} else {
			out[i] = p
		}
	}
	return out
}

// scaleBoundary 把边界各顶点向质心线性收缩
// factor < 1 时相邻格子间留出缝隙，不会边贴边
func scaleBoundary(ring orb.Ring, factor float64) orb.Ring {
	c := centroid(ring)
	out := make(orb.Ring, len(ring))
	for i, p := range ring {
		out[i] = orb.Point{
			c[0] + (p[0]-c[0])*factor,
			c[1] + (p[1]-c[1])*factor,
		}
	}
	return out
}

package main

import (
	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go"
)

// neutralColor 点击处格子没有现成颜色时的兜底色
const neutralColor = "#777777"

// LocateResult 点击解析结果
type LocateResult struct {
	Cell   h3.H3Index
	Center orb.Point
	Color  string
}

// Locate 把点击坐标解析到指定分辨率下的格子
// 颜色按格子自身 id 查表，只有该格子恰好是被分配过的底层格子才命中，
// 查不到用中性色兜底，不作为错误处理
func Locate(lat, lng float64, res int, book *ColorBook) LocateResult {
	cell := h3.FromGeo(h3.GeoCoord{Latitude: lat, Longitude: lng}, res)
	color, ok := book.Lookup(cell)
	if !ok {
		color = neutralColor
	}
	return LocateResult{
		Cell:   cell,
		Center: cellCenter(cell),
		Color:  color,
	}
}

package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/teris-io/shortid"
	h3 "github.com/uber/h3-go"
)

// fillOpacity 开启填充时的透明度，描边始终不透明
const fillOpacity = 0.3

// DisplayConfig 显示开关
type DisplayConfig struct {
	ShowFill        bool
	ShowIndexLabels bool
	ShowCoordLabels bool
}

// Style 多边形样式
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Surface 外部渲染面
// 地图控件只需要会画/删多边形和标注，按句柄移除
type Surface interface {
	AddPolygon(id string, ring orb.Ring, style Style)
	AddMarker(id string, at orb.Point, label string)
	Remove(ids []string)
}

// Overlay 持有当前已画在地图上的图形句柄
// 图形整代替换，地图上任一时刻至多挂着一代
type Overlay struct {
	surface Surface
	shapes  []string
}

// NewOverlay 创建图形管理器
func NewOverlay(s Surface) *Overlay {
	return &Overlay{surface: s}
}

func newHandle() string {
	id, _ := shortid.Generate()
	return id
}

// Size 当前持有的图形数
func (o *Overlay) Size() int {
	return len(o.shapes)
}

// Redraw 重绘整张网格
// 先把新一代图形全部画上去，再整体移除上一代，
// 渲染面即使异步刷新也不会出现半空状态
func (o *Overlay) Redraw(records []GridRecord, cfg DisplayConfig) {
	next := make([]string, 0, len(records))
	for _, rec := range records {
		style := Style{Color: rec.Color, FillColor: rec.Color, FillOpacity: fillOpacity}
		if !cfg.ShowFill {
			style.FillOpacity = 0
		}
		id := newHandle()
		o.surface.AddPolygon(id, rec.Boundary, style)
		next = append(next, id)

		if cfg.ShowIndexLabels {
			id := newHandle()
			o.surface.AddMarker(id, rec.Center, h3.ToString(rec.Cell))
			next = append(next, id)
		}
		if cfg.ShowCoordLabels {
			for _, p := range rec.Boundary {
				id := newHandle()
				o.surface.AddMarker(id, p, fmt.Sprintf("%.4f, %.4f", p[1], p[0]))
				next = append(next, id)
			}
		}
	}

	old := o.shapes
	o.shapes = next
	if len(old) > 0 {
		o.surface.Remove(old)
	}
}

// PlaceMarker 在指定位置打一个标注，归入当前代，下次重绘时一并清掉
func (o *Overlay) PlaceMarker(at orb.Point, label string) {
	id := newHandle()
	o.surface.AddMarker(id, at, label)
	o.shapes = append(o.shapes, id)
}

package main

import (
	"math/rand"
	"sort"
	"time"

	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go"
)

// SessionConfig 会话初始参数
type SessionConfig struct {
	Resolutions []int
	CellRadius  int
	ScaleFactor float64
	Palette     []string
	Display     DisplayConfig
	Center      orb.Point
	Seed        int64
}

// confSession 从全局配置取会话参数
func confSession() SessionConfig {
	return SessionConfig{
		Resolutions: conf.Grid.Resolutions,
		CellRadius:  conf.Grid.CellRadius,
		ScaleFactor: conf.Grid.ScaleFactor,
		Palette:     conf.Grid.Palette,
		Display: DisplayConfig{
			ShowFill:        conf.Display.ShowFill,
			ShowIndexLabels: conf.Display.ShowIndexLabels,
			ShowCoordLabels: conf.Display.ShowCoordLabels,
		},
		Center: orb.Point{conf.Viewport.Lng, conf.Viewport.Lat},
		Seed:   time.Now().UnixNano(),
	}
}

// Session 一张地图实例的全部可变状态
// 不走进程级全局量，多个连接各自独立，测试也能隔离构造。
// 事件在单个读循环里同步处理，一次重绘完整结束后才轮到下一个事件，
// 所以这里不需要锁
type Session struct {
	overlay     *Overlay
	book        *ColorBook
	display     DisplayConfig
	resolutions []int
	cellRadius  int
	scaleFactor float64
	center      orb.Point
}

// NewSession 创建会话
func NewSession(surface Surface, cfg SessionConfig) *Session {
	if cfg.ScaleFactor <= 0 || cfg.ScaleFactor > 1 {
		cfg.ScaleFactor = 0.99
	}
	if cfg.CellRadius < 0 {
		cfg.CellRadius = 0
	}
	resolutions := append([]int(nil), cfg.Resolutions...)
	sort.Ints(resolutions)

	return &Session{
		overlay:     NewOverlay(surface),
		book:        NewColorBook(cfg.Palette, rand.NewSource(cfg.Seed)),
		display:     cfg.Display,
		resolutions: resolutions,
		cellRadius:  cfg.CellRadius,
		scaleFactor: cfg.ScaleFactor,
		center:      cfg.Center,
	}
}

// Redraw 全量重算网格并替换地图上的图形
func (s *Session) Redraw() {
	records := ComputeGrid(s.center, s.resolutions, s.cellRadius, s.scaleFactor, s.book)
	s.overlay.Redraw(records, s.display)
}

// MoveTo 视口移动/缩放结束
func (s *Session) MoveTo(center orb.Point) {
	s.center = center
	s.Redraw()
}

// SetResolutions 更新激活分辨率集，空集合法，画出来就是空网格
func (s *Session) SetResolutions(rs []int) {
	sorted := append([]int(nil), rs...)
	sort.Ints(sorted)
	s.resolutions = sorted
	s.Redraw()
}

// SetCellRadius 更新 k-ring 半径，0 表示只画中心格
func (s *Session) SetCellRadius(r int) {
	if r < 0 {
		r = 0
	}
	s.cellRadius = r
	s.Redraw()
}

// SetShowFill 切换填充
func (s *Session) SetShowFill(on bool) {
	s.display.ShowFill = on
	s.Redraw()
}

// SetShowIndexLabels 切换格子索引标注
func (s *Session) SetShowIndexLabels(on bool) {
	s.display.ShowIndexLabels = on
	s.Redraw()
}

// SetShowCoordLabels 切换顶点坐标标注
func (s *Session) SetShowCoordLabels(on bool) {
	s.display.ShowCoordLabels = on
	s.Redraw()
}

// HighestResolution 最高激活分辨率，点击解析用
func (s *Session) HighestResolution() (int, bool) {
	if len(s.resolutions) == 0 {
		return 0, false
	}
	return s.resolutions[len(s.resolutions)-1], true
}

// Click 处理一次点击：解析格子并在其中心打标
func (s *Session) Click(lat, lng float64) (LocateResult, bool) {
	res, ok := s.HighestResolution()
	if !ok {
		return LocateResult{}, false
	}
	loc := Locate(lat, lng, res, s.book)
	s.overlay.PlaceMarker(loc.Center, h3.ToString(loc.Cell))
	return loc, true
}

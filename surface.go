package main

import (
	"github.com/gorilla/websocket"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// drawCmd 发给地图端的绘制指令
type drawCmd struct {
	Op      string           `json:"op"` // add / remove
	Kind    string           `json:"kind,omitempty"`
	ID      string           `json:"id,omitempty"`
	Feature *geojson.Feature `json:"feature,omitempty"`
	IDs     []string         `json:"ids,omitempty"`
}

// wsSurface 把绘制指令推给浏览器里的地图控件
// 写操作只发生在连接自己的事件循环里，无并发写
type wsSurface struct {
	conn *websocket.Conn
}

func (s *wsSurface) AddPolygon(id string, ring orb.Ring, style Style) {
	f := geojson.NewFeature(orb.Polygon{ring})
	f.Properties["color"] = style.Color
	f.Properties["fillColor"] = style.FillColor
	f.Properties["fillOpacity"] = style.FillOpacity
	s.send(drawCmd{Op: "add", Kind: "polygon", ID: id, Feature: f})
}

func (s *wsSurface) AddMarker(id string, at orb.Point, label string) {
	f := geojson.NewFeature(at)
	f.Properties["label"] = label
	s.send(drawCmd{Op: "add", Kind: "marker", ID: id, Feature: f})
}

func (s *wsSurface) Remove(ids []string) {
	if len(ids) == 0 {
		return
	}
	s.send(drawCmd{Op: "remove", IDs: ids})
}

func (s *wsSurface) send(cmd drawCmd) {
	if err := s.conn.WriteJSON(cmd); err != nil {
		log.Debugf("write %s cmd error ~ %s", cmd.Op, err)
	}
}

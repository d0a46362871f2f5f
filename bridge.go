package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// mapEvent 地图端上报的事件
type mapEvent struct {
	Type        string  `json:"type"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Resolutions []int   `json:"resolutions"`
	Radius      int     `json:"radius"`
	On          bool    `json:"on"`
}

// InitServer 启动地图服务
func InitServer() {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(conf.Server.StaticDir)))
	mux.HandleFunc("/ws", serveWS)

	srv := &http.Server{Addr: conf.Server.Addr, Handler: mux}
	// 注册安全退出
	SafeExitInst.Register(func() { srv.Close() })

	log.Infof("%s %s listening on %s", conf.App.Title, conf.App.Version, conf.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error ~ %s", err)
	}
}

// serveWS 每个连接挂一个独立会话
// 事件在读循环里同步处理，同一连接上的重绘天然串行
func serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("upgrade error ~ %s", err)
		return
	}
	defer conn.Close()

	sess := NewSession(&wsSurface{conn: conn}, confSession())
	log.Infof("map connected: %s", conn.RemoteAddr())
	// 首帧
	sess.Redraw()

	for {
		var ev mapEvent
		if err := conn.ReadJSON(&ev); err != nil {
			log.Infof("map disconnected: %s", conn.RemoteAddr())
			return
		}
		handleEvent(sess, ev)
	}
}

// handleEvent 分发一条地图事件，处理完才读下一条
func handleEvent(sess *Session, ev mapEvent) {
	switch ev.Type {
	case "moveend", "zoomend":
		sess.MoveTo(orb.Point{ev.Lng, ev.Lat})
	case "click":
		if loc, ok := sess.Click(ev.Lat, ev.Lng); ok {
			log.Debugf("click (%.5f, %.5f) -> %s %s", ev.Lat, ev.Lng, h3.ToString(loc.Cell), loc.Color)
		}
	case "resolutions":
		sess.SetResolutions(ev.Resolutions)
	case "radius":
		sess.SetCellRadius(ev.Radius)
	case "fill":
		sess.SetShowFill(ev.On)
	case "indexLabels":
		sess.SetShowIndexLabels(ev.On)
	case "coordLabels":
		sess.SetShowCoordLabels(ev.On)
	default:
		log.Debugf("unknown event: %s", ev.Type)
	}
}

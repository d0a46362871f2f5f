package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	h3 "github.com/uber/h3-go"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// InitExport 批量导出模式
// 按配置的视口一次算好整张网格，每个分辨率写一个 GeoJSON 文件
func InitExport() {
	start := time.Now()

	os.MkdirAll(conf.Output.Directory, os.ModePerm)

	book := NewColorBook(conf.Grid.Palette, rand.NewSource(time.Now().UnixNano()))
	center := orb.Point{conf.Viewport.Lng, conf.Viewport.Lat}
	records := ComputeGrid(center, conf.Grid.Resolutions, conf.Grid.CellRadius, conf.Grid.ScaleFactor, book)
	if len(records) == 0 {
		log.Warnln("no active resolutions, nothing to export")
		return
	}

	var aborted bool
	// 注册安全退出
	SafeExitInst.Register(func() { aborted = true })

	byRes := make(map[int][]GridRecord)
	for _, rec := range records {
		byRes[rec.Res] = append(byRes[rec.Res], rec)
	}
	reses := make([]int, 0, len(byRes))
	for res := range byRes {
		reses = append(reses, res)
	}
	sort.Ints(reses)

	for _, res := range reses {
		if aborted {
			log.Warnf("export aborted at res %d", res)
			break
		}
		recs := byRes[res]
		bar := pb.New(len(recs)).Prefix(fmt.Sprintf("Res %d : ", res))
		bar.SetRefreshRate(time.Second)
		bar.Start()

		fc := geojson.NewFeatureCollection()
		for _, rec := range recs {
			f := geojson.NewFeature(orb.Polygon{rec.Boundary})
			f.Properties["index"] = h3.ToString(rec.Cell)
			f.Properties["resolution"] = rec.Res
			f.Properties["color"] = rec.Color
			fc.Append(f)
			bar.Increment()
		}

		data, err := json.Marshal(fc)
		if err != nil {
			log.Fatalf("marshal res %d error ~ %s", res, err)
		}
		name := filepath.Join(conf.Output.Directory, fmt.Sprintf("r%d.geojson", res))
		if err := os.WriteFile(name, data, os.ModePerm); err != nil {
			log.Errorf("write %s error ~ %s", name, err)
		}
		bar.FinishPrint(fmt.Sprintf("Res %d -> %s, %d cells", res, name, len(recs)))
	}

	log.Printf("\n%.3fs finished...", time.Since(start).Seconds())
}

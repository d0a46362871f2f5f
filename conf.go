package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `toml:"version"`
		Title   string `toml:"title"`
	} `toml:"app"`
	Output struct {
		Directory      string `toml:"directory"`
		LogDir         string `toml:"logDir"`
		OutputTerminal bool   `toml:"outputTerminal"`
	} `toml:"output"`
	Server struct {
		Addr      string `toml:"addr"`
		StaticDir string `toml:"staticDir"`
	} `toml:"server"`
	Grid struct {
		Resolutions []int    `toml:"resolutions"`
		CellRadius  int      `toml:"cellRadius"`
		ScaleFactor float64  `toml:"scaleFactor"`
		Palette     []string `toml:"palette"`
	} `toml:"grid"`
	Display struct {
		ShowFill        bool `toml:"showFill"`
		ShowIndexLabels bool `toml:"showIndexLabels"`
		ShowCoordLabels bool `toml:"showCoordLabels"`
	} `toml:"display"`
	Viewport struct {
		Lat float64 `toml:"lat"`
		Lng float64 `toml:"lng"`
	} `toml:"viewport"`
}

// InitConf 初始化配置
func InitConf(cfgFile string) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("config file(%s) not exist", cfgFile)
		os.Exit(1)
	}
	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv() // read in environment variables that match
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Printf("read config file(%s) error, details: %s", viper.ConfigFileUsed(), err)
	}
	// 设置默认值
	viper.SetDefault("app.version", "v 0.1.0")
	viper.SetDefault("app.title", "MapCloud HexMap")
	viper.SetDefault("output.directory", "output")
	viper.SetDefault("output.outputTerminal", true)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.staticDir", "static")
	viper.SetDefault("grid.resolutions", []int{6, 7})
	viper.SetDefault("grid.cellRadius", 10)
	viper.SetDefault("grid.scaleFactor", 0.99)
	viper.SetDefault("display.showFill", true)
	// 默认视口：东京
	viper.SetDefault("viewport.lat", 35.68963)
	viper.SetDefault("viewport.lng", 139.69165)

	err = viper.Unmarshal(&conf)
	if err != nil {
		panic("配置文件解析失败")
	}
	if len(conf.Grid.Palette) == 0 {
		conf.Grid.Palette = defaultPalette
	}
}

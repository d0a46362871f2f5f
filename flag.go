package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	hf         bool
	exportMode bool
	configPath string
	logLevel   string
)

func InitFlag() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.BoolVar(&exportMode, "e", false, "export grid to geojson files and exit")
	flag.StringVar(&configPath, "c", "./conf/conf.toml", "set config `file`")
	flag.StringVar(&logLevel, "l", "info", "set log level (default: info)")
	flag.Usage = usage
	flag.Parse()

	if hf {
		flag.Usage()
		os.Exit(0)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `hexmap version: hexmap/v0.1.0
Usage: hexmap [-h] [-c filename] [-l logLevel] [-e]
`)
	flag.PrintDefaults()
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	h3 "github.com/uber/h3-go"
)

func TestLocateResolvesCell(t *testing.T) {
	book := testBook()
	loc := Locate(35.68963, 139.69165, 9, book)

	want := h3.FromGeo(h3.GeoCoord{Latitude: 35.68963, Longitude: 139.69165}, 9)
	assert.Equal(t, want, loc.Cell)

	center := h3.ToGeo(want)
	assert.InDelta(t, center.Longitude, loc.Center[0], 1e-9)
	assert.InDelta(t, center.Latitude, loc.Center[1], 1e-9)
}

func TestLocateNeutralDefaultOnMiss(t *testing.T) {
	// 点击处格子没被分配过颜色，兜底中性色，不报错
	loc := Locate(35.68963, 139.69165, 9, testBook())
	assert.Equal(t, neutralColor, loc.Color)
}

func TestLocateHitsAssignedCell(t *testing.T) {
	book := testBook()
	cell := h3.FromGeo(h3.GeoCoord{Latitude: 35.68963, Longitude: 139.69165}, 7)
	book.BuildBaseColors([]h3.H3Index{cell})
	want, _ := book.Lookup(cell)

	loc := Locate(35.68963, 139.69165, 7, book)
	assert.Equal(t, want, loc.Color)
}

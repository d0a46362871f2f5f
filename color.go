package main

import (
	"math/rand"

	h3 "github.com/uber/h3-go"
)

// defaultPalette 默认调色板，可被配置里的 grid.palette 覆盖
var defaultPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
	"#bcf60c", "#fabebe", "#008080", "#e6beff",
}

// ColorBook 底层格子到颜色的映射
// 每轮网格计算前整表重建，只在一次绘制内有效，不做跨视口缓存
type ColorBook struct {
	palette []string
	rnd     *rand.Rand
	base    map[h3.H3Index]string
}

// NewColorBook 创建颜色表，随机源由调用方注入，测试可传固定种子
func NewColorBook(palette []string, src rand.Source) *ColorBook {
	if len(palette) == 0 {
		palette = defaultPalette
	}
	return &ColorBook{
		palette: palette,
		rnd:     rand.New(src),
		base:    make(map[h3.H3Index]string),
	}
}

// Sample 从调色板等概率抽一个颜色，放回抽样，不同格子允许撞色
func (b *ColorBook) Sample() string {
	return b.palette[b.rnd.Intn(len(b.palette))]
}

// Clear 清空已分配的颜色
func (b *ColorBook) Clear() {
	b.base = make(map[h3.H3Index]string)
}

// BuildBaseColors 清空旧表，为底层邻域内每个格子分配颜色
func (b *ColorBook) BuildBaseColors(cells []h3.H3Index) {
	b.base = make(map[h3.H3Index]string, len(cells))
	for _, c := range cells {
		if _, ok := b.base[c]; !ok {
			b.base[c] = b.Sample()
		}
	}
}

// Lookup 查询某个格子是否已分配颜色
// 缺失不是错误，由调用方决定兜底方式
func (b *ColorBook) Lookup(cell h3.H3Index) (string, bool) {
	c, ok := b.base[cell]
	return c, ok
}

// ColorFor 取某个格子应渲染的颜色
// 多分辨率时按最低分辨率祖先取色，同一祖先下的所有子格颜色一致；
// 不同分辨率的 k-ring 数量并不保证覆盖一致，祖先缺失时退回随机色。
// 单分辨率时分组没有意义，直接随机。
func (b *ColorBook) ColorFor(cell h3.H3Index, toBase func(h3.H3Index) h3.H3Index, grouped bool) string {
	if !grouped {
		return b.Sample()
	}
	if c, ok := b.Lookup(toBase(cell)); ok {
		return c
	}
	return b.Sample()
}

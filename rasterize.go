package zonalib

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// 扫描线边，按y升序存储并预存斜率倒数用于求交
type scanEdge struct {
	y0, y1 float64
	x0     float64 // y0处的x
	dxdy   float64
}

// 将单个面要素几何栅格化为窗口大小的二值覆盖掩膜，gt为窗口自身的geotransform。
// 采样规则为像元中心点配合奇偶交叉计数，与常规矢量烧录工具的中心规则一致；
// 边缘像元因浮点交点产生的±1归属差异是扫描转换固有的，不视为错误
func rasterizeGeometry(geom orb.Geometry, gt GeoTransform, w, h int) (mask []bool, err error) {
	var polys []orb.Polygon
	switch g := geom.(type) {
	case orb.Polygon:
		polys = []orb.Polygon{g}
	case orb.MultiPolygon:
		polys = g
	default:
		err = ErrGdalWrongGeoType
		return
	}
	mask = make([]bool, w*h)
	if w <= 0 || h <= 0 {
		return
	}
	var edges []scanEdge
	for _, poly := range polys {
		for _, ring := range poly {
			edges = appendRingEdges(edges, ring, gt)
		}
	}
	if len(edges) == 0 {
		return
	}
	xs := make([]float64, 0, 8)
	for row := 0; row < h; row++ {
		yc := float64(row) + 0.5
		xs = xs[:0]
		for i := range edges {
			e := &edges[i]
			// 半开区间[y0,y1)，共享顶点的两条边只计一次交叉
			if yc < e.y0 || yc >= e.y1 {
				continue
			}
			xs = append(xs, e.x0+e.dxdy*(yc-e.y0))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		base := row * w
		for i := 0; i+1 < len(xs); i += 2 {
			// 中心点落在[xa,xb)内的像元列
			c0 := int(math.Ceil(xs[i] - 0.5))
			c1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			if c0 < 0 {
				c0 = 0
			}
			if c1 >= w {
				c1 = w - 1
			}
			for c := c0; c <= c1; c++ {
				mask[base+c] = true
			}
		}
	}
	return
}

// 环各边转换到像元坐标后入表，水平边不参与交叉计数；未闭合的环补一条回到首点的边
func appendRingEdges(edges []scanEdge, ring orb.Ring, gt GeoTransform) []scanEdge {
	n := len(ring)
	if n < 3 {
		return edges
	}
	fx, fy := gt.PixelOf(ring[0][0], ring[0][1])
	px0, py0 := fx, fy
	for i := 1; i < n; i++ {
		px1, py1 := gt.PixelOf(ring[i][0], ring[i][1])
		edges = appendEdge(edges, px0, py0, px1, py1)
		px0, py0 = px1, py1
	}
	if px0 != fx || py0 != fy {
		edges = appendEdge(edges, px0, py0, fx, fy)
	}
	return edges
}

func appendEdge(edges []scanEdge, x0, y0, x1, y1 float64) []scanEdge {
	if y0 == y1 {
		return edges
	}
	e := scanEdge{}
	if y0 < y1 {
		e.y0, e.y1, e.x0 = y0, y1, x0
	} else {
		e.y0, e.y1, e.x0 = y1, y0, x1
	}
	e.dxdy = (x1 - x0) / (y1 - y0)
	return append(edges, e)
}

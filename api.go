package zonalib

import "github.com/paulmach/orb"

type GdalGeo = []byte

// 像元窗口：相对栅格左上角的整数偏移与尺寸
type PixelWindow struct {
	X, Y int
	W, H int
}

// 退化窗口（宽或高不为正），调用方须显式处理
func (w PixelWindow) Empty() bool {
	return w.W <= 0 || w.H <= 0
}

func (w PixelWindow) Size() int {
	if w.Empty() {
		return 0
	}
	return w.W * w.H
}

func (w PixelWindow) Contains(x, y int) bool {
	return x >= w.X && x < w.X+w.W && y >= w.Y && y < w.Y+w.H
}

// 栅格窗口数据，行优先存储，生成后只读
type RasterWindow struct {
	Data   []int32
	Window PixelWindow  // 窗口在源栅格中的位置
	GT     GeoTransform // 窗口自身（原点平移后）的geotransform
	NoData *float64
	Valid  PixelWindow // 窗口内实际含源数据的子区（窗口局部坐标），窗口越界部分不在其中
}

// 面要素，由矢量数据源按图层顺序提供，只读
type Feature struct {
	FID    int64
	Fields map[string]string
	Geom   orb.Geometry
	Bound  orb.Bound
}

// 单个面要素的像元分类统计结果
type FeatureStats struct {
	FID         int64
	HydroID     string
	TotalPixels int                // 面内有效像元总数（含未归类编码）
	Classes     [NumClassCodes]int // 与ClassCodes一一对应
	Groups      [NumClassGroups]int
}

// 按编码取分类计数，未知编码返回0
func (s *FeatureStats) Class(code int32) int {
	if i, ok := classIdx[code]; ok {
		return s.Classes[i]
	}
	return 0
}

// 按组号（NLCD首位数字）取分组计数
func (s *FeatureStats) Group(digit int32) int {
	if i, ok := groupIdx[digit]; ok {
		return s.Groups[i]
	}
	return 0
}

// 分类栅格数据源（单波段）
type RasterSource interface {
	GeoTransform() GeoTransform
	Size() (x, y int)
	NoData() (float64, bool)
	ReadWindow(win PixelWindow) (RasterWindow, error)
}

// 面要素数据源，Features返回图层迭代顺序的要素序列
type VectorSource interface {
	Features() []Feature
}

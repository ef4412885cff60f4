package zonalib

import (
	"github.com/wgdzlh/zonalib/log"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 统计运行选项
type ZonalOptions struct {
	NoData       *float64 // 覆盖栅格源自带的nodata
	GlobalExtent bool     // true则一次读取覆盖全部要素的栅格窗口并复用（省IO费内存）
	Workers      int      // 并发处理的要素数，<=1为串行
}

// 运行结果。Stats严格按要素迭代顺序排列；
// 缺失字段或几何异常的要素不产生记录，其FID收入Failed（同样按迭代顺序）
type ZonalResult struct {
	Stats  []FeatureStats
	Failed []int64
}

type featSlot struct {
	stats  FeatureStats
	failed bool
}

// 可选的坐标系出口，两侧数据源都实现时用于一致性检查
type sridProvider interface {
	Srid() int
}

// 两侧都解析出srid且不相等时判为坐标系不一致；srid为0（未知）不参与判定
func crsMismatch(rs RasterSource, vs VectorSource) (rsrid, vsrid int, mismatch bool) {
	rp, rok := rs.(sridProvider)
	vp, vok := vs.(sridProvider)
	if !rok || !vok {
		return
	}
	rsrid, vsrid = rp.Srid(), vp.Srid()
	mismatch = rsrid != 0 && vsrid != 0 && rsrid != vsrid
	return
}

// 计算每个面要素范围内各分类像元计数。
// 两种窗口模式输出一致，仅性能特征不同；栅格打不开为致命错误，单要素问题不中断整体运行
func (g *ZonalToolbox) ZonalStats(rs RasterSource, vs VectorSource, opt ZonalOptions) (res ZonalResult, err error) {
	gt := rs.GeoTransform()
	if !gt.Valid() {
		err = ErrVoidGeoTransform
		return
	}
	if rsrid, vsrid, bad := crsMismatch(rs, vs); bad {
		// 不中断：统计照常进行，但结果多半不可信
		log.Warn(g.logTag+"raster and vector crs mismatch",
			zap.Int("rasterSrid", rsrid), zap.Int("vectorSrid", vsrid))
	}
	feats := vs.Features()
	n := len(feats)
	res.Stats = make([]FeatureStats, 0, n)
	if n == 0 {
		log.Warn(g.logTag + "no features to process")
		return
	}
	nodata := opt.NoData
	if nodata == nil {
		if v, ok := rs.NoData(); ok {
			nodata = &v
		}
	}
	var global *RasterWindow
	if opt.GlobalExtent {
		var (
			b        orb.Bound
			hasBound bool
		)
		for i := range feats {
			if feats[i].Geom == nil {
				continue
			}
			if !hasBound {
				b, hasBound = feats[i].Bound, true
			} else {
				b = b.Union(feats[i].Bound)
			}
		}
		win := gt.WindowOf(b.Min[0], b.Max[0], b.Min[1], b.Max[1])
		if hasBound && !win.Empty() {
			var rw RasterWindow
			if rw, err = rs.ReadWindow(win); err != nil {
				log.Error(g.logTag+"read global window failed", zap.Error(err))
				return
			}
			rw.NoData = nodata
			global = &rw
		}
	}
	slots := make([]featSlot, n)
	workers := opt.Workers
	if workers < 1 {
		workers = 1
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range feats {
		i := i
		eg.Go(func() error {
			g.processFeature(rs, &feats[i], gt, nodata, global, opt.GlobalExtent, &slots[i])
			return nil
		})
	}
	_ = eg.Wait()
	for i := range slots {
		if slots[i].failed {
			res.Failed = append(res.Failed, feats[i].FID)
		} else {
			res.Stats = append(res.Stats, slots[i].stats)
		}
	}
	log.Info(g.logTag+"zonal stats done", zap.Int("features", n),
		zap.Int("records", len(res.Stats)), zap.Int("failed", len(res.Failed)),
		zap.Bool("global", opt.GlobalExtent))
	return
}

// 单要素流程：解析窗口 → 取栅格数据 → 烧录覆盖掩膜 → 组合排除掩膜 → 统计
func (g *ZonalToolbox) processFeature(rs RasterSource, f *Feature, gt GeoTransform,
	nodata *float64, global *RasterWindow, globalMode bool, slot *featSlot) {
	hydro, ok := f.Fields[SHP_FIELD_HYDRO_ID]
	if !ok {
		log.Error(g.logTag+"feature misses join field", zap.Int64("fid", f.FID),
			zap.String("field", SHP_FIELD_HYDRO_ID))
		slot.failed = true
		return
	}
	slot.stats = FeatureStats{FID: f.FID, HydroID: hydro}
	if f.Geom == nil {
		log.Error(g.logTag+"feature has no usable geometry", zap.Int64("fid", f.FID))
		slot.failed = true
		return
	}
	var rw *RasterWindow
	if globalMode {
		if global == nil {
			// 全局窗口退化，所有要素都没有有效像元
			return
		}
		rw = global
	} else {
		win := gt.WindowOf(f.Bound.Min[0], f.Bound.Max[0], f.Bound.Min[1], f.Bound.Max[1])
		if win.Empty() {
			// 退化窗口（点状几何等）：输出全零记录而非中断
			log.Warn(g.logTag+"degenerate pixel window", zap.Int64("fid", f.FID))
			return
		}
		local, e := rs.ReadWindow(win)
		if e != nil {
			log.Error(g.logTag+"read feature window failed", zap.Int64("fid", f.FID), zap.Error(e))
			slot.failed = true
			return
		}
		local.NoData = nodata
		rw = &local
	}
	coverage, e := rasterizeGeometry(f.Geom, rw.GT, rw.Window.W, rw.Window.H)
	if e != nil {
		log.Error(g.logTag+"rasterize feature failed", zap.Int64("fid", f.FID), zap.Error(e))
		slot.failed = true
		return
	}
	excluded, e := composeExclusion(rw, coverage)
	if e != nil {
		log.Error(g.logTag+"compose mask failed", zap.Int64("fid", f.FID), zap.Error(e))
		slot.failed = true
		return
	}
	tabulate(rw, excluded, &slot.stats)
}

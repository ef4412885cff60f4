package zonalib

import (
	"fmt"

	"github.com/wgdzlh/zonalib/log"
	"github.com/wgdzlh/zonalib/utils"

	"github.com/lukeroth/gdal"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"go.uber.org/zap"
)

// 已物化的面要素图层，实现VectorSource；要素顺序即图层迭代顺序
type PolygonLayer struct {
	feats []Feature
	srid  int
}

func (l *PolygonLayer) Features() []Feature {
	return l.feats
}

func (l *PolygonLayer) Srid() int {
	return l.srid
}

// 打开shp并按图层顺序物化全部面要素。
// 属性名与属性值按cpg旁路文件指示的编码统一转为UTF-8（缺失cpg按GBK处理）；
// 几何解析失败的要素保留占位（Geom为nil），由统计环节按要素级失败处理
func (g *ZonalToolbox) OpenPolygonShapefile(shp string) (ret *PolygonLayer, err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	layer := ds.LayerByIndex(0)
	ret = &PolygonLayer{}
	if srid, e := g.getSrid(layer.SpatialReference()); e != nil {
		log.Warn(g.logTag+"shp srid unresolved", zap.String("shp", shp), zap.Error(e))
	} else {
		ret.srid = srid
	}
	var (
		def     = layer.Definition()
		nFields = def.FieldCount()
		names   = make([]string, nFields)
		isUtf8  = utils.ShpAttrsInUtf8(shp)
	)
	hasJoinField := false
	for i := range names {
		name := def.FieldDefinition(i).Name()
		if !isUtf8 {
			if d, e := utils.GbkStrToUtf8(name); e == nil {
				name = d
			}
		}
		names[i] = name
		if name == SHP_FIELD_HYDRO_ID {
			hasJoinField = true
		}
	}
	if !hasJoinField {
		// 不中断：逐要素按缺失字段处理，收入Failed清单
		log.Warn(g.logTag+fmt.Sprintf(ErrColumnMissingTemplate, SHP_FIELD_HYDRO_ID), zap.String("shp", shp))
	}
	n := DefaultStatsCap
	if nf, _ := layer.FeatureCount(false); nf > 0 {
		n = nf
	}
	ret.feats = make([]Feature, 0, n)
	var (
		feature *gdal.Feature
		raw     GdalGeo
		geom    orb.Geometry
		e       error
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for {
		if feature = layer.NextFeature(); feature == nil {
			break
		}
		gc = append(gc, *feature)
		f := Feature{
			FID:    feature.FID(),
			Fields: make(map[string]string, nFields),
		}
		for i, name := range names {
			val := feature.FieldAsString(i)
			if !isUtf8 {
				if d, ex := utils.GbkStrToUtf8(val); ex == nil {
					val = d
				}
			}
			f.Fields[name] = utils.PurifyForUtf8(val)
		}
		raw, e = feature.Geometry().ToWKB()
		if e != nil || len(raw) < 5 {
			if e == nil {
				e = ErrInvalidWKB
			}
			log.Error(g.logTag+"err in wkb trans", zap.Int64("fid", f.FID), zap.Error(e))
		} else if geom, e = wkb.Unmarshal(raw); e != nil {
			log.Error(g.logTag+"err in wkb decode", zap.Int64("fid", f.FID), zap.Error(e))
		} else {
			f.Geom = geom
			f.Bound = geom.Bound()
		}
		ret.feats = append(ret.feats, f)
	}
	if len(ret.feats) == 0 {
		log.Warn(g.logTag+"shp is empty", zap.String("shp", shp))
	}
	log.Info(g.logTag+"opened polygon shp", zap.String("shp", shp),
		zap.Int("features", len(ret.feats)), zap.Int("srid", ret.srid))
	return
}

package zonalib

import (
	"strconv"
	"strings"

	"github.com/wgdzlh/zonalib/log"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// 由GDAL库C语言创建的内存对象，需要手动调用Destroy回收
type destroyable interface {
	Destroy()
}

type ZonalToolbox struct {
	tmpDir string
	logTag string
}

// 初始化统计工具箱，tmpDir为可选的临时目录路径（未提供的话为输出文件所在目录）
func NewZonalToolbox(tmpDir ...string) *ZonalToolbox {
	g := &ZonalToolbox{
		logTag: "ZonalToolbox:",
	}
	if len(tmpDir) > 0 && tmpDir[0] != "" {
		g.tmpDir = tmpDir[0]
	}
	return g
}

func (g *ZonalToolbox) getSrid(sp gdal.SpatialReference) (srid int, err error) {
	wkt, _ := sp.ToWKT()
	rawId, ok := sp.AttrValue("AUTHORITY", 1)
	if !ok {
		if strings.Contains(wkt, "CGCS_2000") {
			rawId = "4490"
		} else {
			err = ErrVoidSrid
			return
		}
	}
	srid, err = strconv.Atoi(rawId)
	log.Info(g.logTag+"got srid from sp", zap.String("id", rawId))
	return
}

// 从投影WKT解析srid，临时SpatialReference用后即毁
func (g *ZonalToolbox) sridOfWkt(wkt string) (srid int, err error) {
	sp := gdal.CreateSpatialReference(wkt)
	defer sp.Destroy()
	return g.getSrid(sp)
}

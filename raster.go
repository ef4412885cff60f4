package zonalib

import (
	"sync"

	"github.com/wgdzlh/zonalib/log"

	gdal "github.com/airbusgeo/godal"
	"go.uber.org/zap"
)

var registerOnce sync.Once

// 栅格打开选项。QuietErrors将GDAL告警转入结构化日志，
// 替代进程级全局错误处理器注册
type RasterOptions struct {
	NoData      *float64
	QuietErrors bool
}

// 单波段分类栅格数据源，实现RasterSource。
// ReadWindow内部对波段IO加锁，可被多个worker并发调用
type ClassRaster struct {
	ds     *gdal.Dataset
	band   gdal.Band
	gt     GeoTransform
	xSize  int
	ySize  int
	srid   int
	nodata *float64
	rLock  sync.Mutex
	logTag string
}

// 打开分类栅格tif，校验波段与geotransform
func (g *ZonalToolbox) OpenClassRaster(tif string, opts ...RasterOptions) (r *ClassRaster, err error) {
	registerOnce.Do(gdal.RegisterAll)
	var opt RasterOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	oo := []gdal.OpenOption{gdal.RasterOnly()}
	if opt.QuietErrors {
		oo = append(oo, gdal.ErrLogger(func(ec gdal.ErrorCategory, code int, msg string) error {
			log.Warn("gdal: "+msg, zap.Int("code", code))
			return nil
		}))
	}
	sds, err := gdal.Open(tif, oo...)
	if err != nil {
		log.Error(g.logTag+"open tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	tifBands := sds.Bands()
	if len(tifBands) == 0 {
		log.Error(g.logTag+"tif has no band", zap.String("tif", tif))
		sds.Close()
		err = ErrWrongTif
		return
	}
	gtArr, e := sds.GeoTransform()
	if e != nil {
		log.Error(g.logTag+"tif has no geo transform", zap.String("tif", tif), zap.Error(e))
		sds.Close()
		err = ErrVoidGeoTransform
		return
	}
	gt := GeoTransform(gtArr)
	if !gt.Valid() {
		sds.Close()
		err = ErrVoidGeoTransform
		return
	}
	band := tifBands[0]
	bandStruct := band.Structure()
	r = &ClassRaster{
		ds:     sds,
		band:   band,
		gt:     gt,
		xSize:  bandStruct.SizeX,
		ySize:  bandStruct.SizeY,
		logTag: g.logTag,
	}
	if opt.NoData != nil {
		r.nodata = opt.NoData
	} else if nd, ok := band.NoData(); ok {
		r.nodata = &nd
	}
	if wkt := sds.Projection(); wkt != "" {
		if srid, se := g.sridOfWkt(wkt); se != nil {
			log.Warn(g.logTag+"tif srid unresolved", zap.String("tif", tif), zap.Error(se))
		} else {
			r.srid = srid
		}
	}
	log.Info(g.logTag+"opened class tif", zap.String("tif", tif),
		zap.Int("width", r.xSize), zap.Int("height", r.ySize),
		zap.Int("dt", int(bandStruct.DataType)), zap.Bool("nodata", r.nodata != nil))
	return
}

func (r *ClassRaster) GeoTransform() GeoTransform {
	return r.gt
}

func (r *ClassRaster) Size() (x, y int) {
	return r.xSize, r.ySize
}

// 栅格坐标系srid，未解析出时为0
func (r *ClassRaster) Srid() int {
	return r.srid
}

func (r *ClassRaster) NoData() (v float64, ok bool) {
	if r.nodata != nil {
		v, ok = *r.nodata, true
	}
	return
}

// 读取像元窗口。窗口可越界：只读取与栅格相交的部分，
// 并通过Valid子区标记，越界像元在后续掩膜组合中一律排除
func (r *ClassRaster) ReadWindow(win PixelWindow) (rw RasterWindow, err error) {
	rw = RasterWindow{
		Window: win,
		GT:     r.gt.Shifted(win.X, win.Y),
		NoData: r.nodata,
	}
	if win.Empty() {
		return
	}
	rw.Data = make([]int32, win.Size())
	ix0 := max(win.X, 0)
	iy0 := max(win.Y, 0)
	ix1 := min(win.X+win.W, r.xSize)
	iy1 := min(win.Y+win.H, r.ySize)
	if ix0 >= ix1 || iy0 >= iy1 {
		// 窗口与栅格无交集，Valid为空
		return
	}
	iw, ih := ix1-ix0, iy1-iy0
	buf := make([]int32, iw*ih)
	r.rLock.Lock()
	err = r.band.IO(gdal.IORead, ix0, iy0, buf, iw, ih)
	r.rLock.Unlock()
	if err != nil {
		log.Error(r.logTag+"read tif window failed", zap.Error(err))
		err = ErrTifReadFailed
		return
	}
	dx, dy := ix0-win.X, iy0-win.Y
	for row := 0; row < ih; row++ {
		off := (dy+row)*win.W + dx
		copy(rw.Data[off:off+iw], buf[row*iw:(row+1)*iw])
	}
	rw.Valid = PixelWindow{X: dx, Y: dy, W: iw, H: ih}
	return
}

func (r *ClassRaster) Close() {
	if r.ds != nil {
		r.ds.Close()
		r.ds = nil
	}
}

package zonalib

import "errors"

var (
	ErrGdalDriverOpen   = errors.New("gdal driver open err")
	ErrVoidSrid         = errors.New("gdal shp with void srid")
	ErrGdalWrongGeoType = errors.New("gdal wrong geo type")
	ErrInvalidWKB       = errors.New("invalid WKB")
	ErrInvalidTif       = errors.New("invalid tif")
	ErrWrongTif         = errors.New("wrong tif")
	ErrTifReadFailed    = errors.New("tif read failed")
	ErrVoidGeoTransform = errors.New("void geo transform")
	ErrWindowMismatch   = errors.New("window shape mismatch")
)

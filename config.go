package zonalib

const (
	SHP_DRIVER_NAME = "ESRI Shapefile"

	ErrColumnMissingTemplate = `shp文件中缺失【%s】字段`

	SHP_FIELD_HYDRO_ID = "HydroID"

	CSV_FIELD_FID    = "FID"
	CSV_FIELD_TOTAL  = "TotalPixels"
	CSV_CLASS_PREFIX = "lulc_"
	CSV_SEPARATOR    = '\t'

	TMP_CSV = "stats_*.csv"

	DefaultStatsCap = 128
)

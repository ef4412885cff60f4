package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/wgdzlh/zonalib"
	"github.com/wgdzlh/zonalib/log"
)

func main() {
	vector := flag.String("v", "", "Path to vector file.")
	raster := flag.String("r", "", "Path to raster file.")
	outCsv := flag.String("c", "", "Path to export csv file.")
	nodata := flag.String("nodata", "", "Raster nodata value override.")
	global := flag.Bool("global", false, "Read one raster window covering all features.")
	workers := flag.Int("workers", 1, "Concurrent feature processing in local-extent mode.")
	groups := flag.Bool("groups", false, "Append grouped class sums to the output.")
	gbk := flag.Bool("gbk", false, "Write GBK encoded csv.")
	quiet := flag.Bool("quiet", false, "Route gdal warnings to the log instead of stderr.")
	flag.Parse()

	if *vector == "" || *raster == "" || *outCsv == "" {
		flag.Usage()
		os.Exit(2)
	}
	defer log.Sync()

	ropt := zonalib.RasterOptions{QuietErrors: *quiet}
	if *nodata != "" {
		v, err := strconv.ParseFloat(*nodata, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad nodata value %q: %v\n", *nodata, err)
			os.Exit(2)
		}
		ropt.NoData = &v
	}

	g := zonalib.NewZonalToolbox()
	rs, err := g.OpenClassRaster(*raster, ropt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open raster failed: %v\n", err)
		os.Exit(1)
	}
	defer rs.Close()

	vs, err := g.OpenPolygonShapefile(*vector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open vector failed: %v\n", err)
		os.Exit(1)
	}

	res, err := g.ZonalStats(rs, vs, zonalib.ZonalOptions{
		GlobalExtent: *global,
		Workers:      *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "zonal stats failed: %v\n", err)
		os.Exit(1)
	}
	if err = g.ExportStatsCSV(*outCsv, res.Stats, zonalib.ExportOptions{
		WithGroups: *groups,
		GbkOutput:  *gbk,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "export csv failed: %v\n", err)
		os.Exit(1)
	}
	if len(res.Failed) > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d feature(s): %v\n", len(res.Failed), res.Failed)
	}
}

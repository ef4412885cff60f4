package zonalib

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wgdzlh/zonalib/log"
	"github.com/wgdzlh/zonalib/utils"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// 导出选项
type ExportOptions struct {
	WithGroups bool // 末尾追加8个分组列
	GbkOutput  bool // 输出GBK编码（兼容中文Excel）
}

// 将统计结果导出为制表符分隔文本。
// 列序固定：FID, HydroID, TotalPixels, 20个分类列（编码升序）, [8个分组列]；
// 先写临时文件再改名，避免留下半成品
func (g *ZonalToolbox) ExportStatsCSV(out string, stats []FeatureStats, opts ...ExportOptions) (err error) {
	var opt ExportOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	tmpDir := g.tmpDir
	if tmpDir == "" {
		tmpDir = filepath.Dir(out)
	}
	tmp := utils.TmpFileBeside(filepath.Join(tmpDir, filepath.Base(out)), TMP_CSV)
	f, err := os.Create(tmp)
	if err != nil {
		log.Error(g.logTag+"create csv failed", zap.String("path", tmp), zap.Error(err))
		return
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()
	var w *csv.Writer
	if opt.GbkOutput {
		w = csv.NewWriter(transform.NewWriter(f, simplifiedchinese.GBK.NewEncoder()))
	} else {
		w = csv.NewWriter(f)
	}
	w.Comma = CSV_SEPARATOR
	if err = w.Write(csvHeader(opt.WithGroups)); err != nil {
		return
	}
	row := make([]string, 0, 3+NumClassCodes+NumClassGroups)
	for i := range stats {
		s := &stats[i]
		row = row[:0]
		row = append(row, strconv.FormatInt(s.FID, 10), s.HydroID, strconv.Itoa(s.TotalPixels))
		for _, c := range s.Classes {
			row = append(row, strconv.Itoa(c))
		}
		if opt.WithGroups {
			for _, c := range s.Groups {
				row = append(row, strconv.Itoa(c))
			}
		}
		if err = w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return
	}
	if err = f.Close(); err != nil {
		return
	}
	if err = os.Rename(tmp, out); err != nil {
		return
	}
	log.Info(g.logTag+"csv exported", zap.String("out", out), zap.Int("rows", len(stats)),
		zap.Bool("groups", opt.WithGroups), zap.Bool("gbk", opt.GbkOutput))
	return
}

func csvHeader(withGroups bool) []string {
	h := make([]string, 0, 3+NumClassCodes+NumClassGroups)
	h = append(h, CSV_FIELD_FID, SHP_FIELD_HYDRO_ID, CSV_FIELD_TOTAL)
	for _, c := range ClassCodes {
		h = append(h, CSV_CLASS_PREFIX+strconv.Itoa(int(c)))
	}
	if withGroups {
		for _, d := range GroupDigits {
			h = append(h, CSV_CLASS_PREFIX+strconv.Itoa(int(d)))
		}
	}
	return h
}

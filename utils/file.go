package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	FILE_EXT_SHP = ".shp"
	FILE_EXT_CPG = ".cpg"

	UTF8  = "UTF8"
	UTF_8 = "UTF-8"
)

// 读取shp旁路cpg文件，判断属性表编码是否为UTF-8（缺失或其他值按GBK处理）
func ShpAttrsInUtf8(shp string) (utf8 bool) {
	cpg := strings.TrimSuffix(shp, FILE_EXT_SHP) + FILE_EXT_CPG
	enc, e := os.ReadFile(cpg)
	if e != nil || len(enc) == 0 {
		return
	}
	encStr := strings.ToUpper(strings.TrimSpace(B2S(enc)))
	utf8 = encStr == UTF_8 || encStr == UTF8
	return
}

// 在目标文件同目录下生成唯一临时文件名
func TmpFileBeside(path, pattern string) string {
	return filepath.Join(filepath.Dir(path), strings.Replace(pattern, "*", uuid.NewString(), 1))
}

package utils

import (
	"io"
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

func B2S(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// GBK string 转 UTF-8
func GbkStrToUtf8(s string) (d string, e error) {
	reader := transform.NewReader(strings.NewReader(s), simplifiedchinese.GBK.NewDecoder())
	t, e := io.ReadAll(reader)
	if e != nil {
		return
	}
	d = B2S(t)
	return
}

func PurifyForUtf8(s string) string {
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}

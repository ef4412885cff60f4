package zonalib

import (
	"testing"

	"github.com/paulmach/orb"
)

func countMask(mask []bool) (n int) {
	for _, b := range mask {
		if b {
			n++
		}
	}
	return
}

func TestRasterizeFullCover(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	mask, err := rasterizeGeometry(boxPolygon(0, 0, 10, 10), gt, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := countMask(mask); n != 100 {
		t.Fatalf("covered %d of 100", n)
	}
}

func TestRasterizePartialBox(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	mask, err := rasterizeGeometry(boxPolygon(2, 3, 7, 8), gt, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := countMask(mask); n != 25 {
		t.Fatalf("covered %d, want 25", n)
	}
	// 行2..6、列2..6为真（地理y 3..8 对应栅格行 10-8=2 起）
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := x >= 2 && x < 7 && y >= 2 && y < 7
			if mask[y*10+x] != want {
				t.Fatalf("pixel (%d,%d) = %v", x, y, mask[y*10+x])
			}
		}
	}
}

func TestRasterizeTriangle(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 4, 0, -1}
	tri := orb.Polygon{orb.Ring{{0, 0}, {4, 0}, {0, 4}, {0, 0}}}
	mask, err := rasterizeGeometry(tri, gt, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// 中心点规则：斜边上的像元中心不进掩膜
	if n := countMask(mask); n != 6 {
		t.Fatalf("covered %d, want 6", n)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := x < y
			if mask[y*4+x] != want {
				t.Fatalf("pixel (%d,%d) = %v", x, y, mask[y*4+x])
			}
		}
	}
}

func TestRasterizePolygonWithHole(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	poly := orb.Polygon{
		orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		orb.Ring{{3, 3}, {7, 3}, {7, 7}, {3, 7}, {3, 3}},
	}
	mask, err := rasterizeGeometry(poly, gt, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := countMask(mask); n != 84 {
		t.Fatalf("covered %d, want 84", n)
	}
	if mask[5*10+5] {
		t.Fatal("hole center should not be covered")
	}
	if !mask[1*10+1] {
		t.Fatal("outer ring interior should be covered")
	}
}

func TestRasterizeMultiPolygon(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	mp := orb.MultiPolygon{
		boxPolygon(0, 8, 2, 10),
		boxPolygon(8, 0, 10, 2),
	}
	mask, err := rasterizeGeometry(mp, gt, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := countMask(mask); n != 8 {
		t.Fatalf("covered %d, want 8", n)
	}
}

func TestRasterizeRejectsNonPolygon(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	if _, err := rasterizeGeometry(orb.LineString{{0, 0}, {5, 5}}, gt, 10, 10); err != ErrGdalWrongGeoType {
		t.Fatalf("err = %v", err)
	}
}

func TestRasterizeUnclosedRing(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	open := orb.Polygon{orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	mask, err := rasterizeGeometry(open, gt, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := countMask(mask); n != 100 {
		t.Fatalf("covered %d of 100", n)
	}
}

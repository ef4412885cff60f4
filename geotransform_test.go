package zonalib

import "testing"

func TestWindowOfPadding(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	win := gt.WindowOf(0, 10, 0, 10)
	if win.X != 0 || win.Y != 0 || win.W != 11 || win.H != 11 {
		t.Fatalf("got %+v", win)
	}
	win = gt.WindowOf(2.2, 4.8, 3.1, 6.9)
	if win.X != 2 || win.W != 3 {
		t.Fatalf("x span wrong: %+v", win)
	}
	if win.Y != 3 || win.H != 4 {
		t.Fatalf("y span wrong: %+v", win)
	}
}

func TestWindowOfTruncatesTowardZero(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	// 负相对偏移须向零截断而非向下取整
	win := gt.WindowOf(-0.5, 3, 0, 10)
	if win.X != 0 {
		t.Fatalf("trunc(-0.5) should be 0, got window %+v", win)
	}
	win = gt.WindowOf(-1.5, 3, 0, 10)
	if win.X != -1 {
		t.Fatalf("trunc(-1.5) should be -1, got window %+v", win)
	}
}

func TestWindowOfDegenerate(t *testing.T) {
	gt := GeoTransform{0, 1, 0, 10, 0, -1}
	// 点状bbox仍产出1x1窗口（+1补边），零尺寸由上游几何决定
	win := gt.WindowOf(3, 3, 5, 5)
	if win.Empty() {
		t.Fatalf("point bbox should give 1x1, got %+v", win)
	}
	if win.W != 1 || win.H != 1 {
		t.Fatalf("got %+v", win)
	}
}

func TestShifted(t *testing.T) {
	gt := GeoTransform{100, 0.5, 0, 200, 0, -0.5}
	sub := gt.Shifted(10, 4)
	if sub.OriginX() != 105 || sub.OriginY() != 198 {
		t.Fatalf("got %+v", sub)
	}
	if sub.PixelWidth() != 0.5 || sub.PixelHeight() != -0.5 {
		t.Fatalf("pixel size changed: %+v", sub)
	}
	if sub[2] != 0 || sub[4] != 0 {
		t.Fatalf("rotation not zeroed: %+v", sub)
	}
}

func TestGeoTransformValid(t *testing.T) {
	if (GeoTransform{0, 0, 0, 0, 0, -1}).Valid() {
		t.Fatal("zero pixel width accepted")
	}
	if (GeoTransform{0, 1, 0, 0, 0, 0}).Valid() {
		t.Fatal("zero pixel height accepted")
	}
	if !(GeoTransform{0, 1, 0, 0, 0, -1}).Valid() {
		t.Fatal("valid transform rejected")
	}
}

package zonalib

import "testing"

func TestComposeExclusion(t *testing.T) {
	rw := &RasterWindow{
		Data:   []int32{21, 0, 21, 21},
		Window: PixelWindow{W: 2, H: 2},
		Valid:  PixelWindow{W: 2, H: 2},
		NoData: fptr(0),
	}
	coverage := []bool{true, true, true, false}
	excl, err := composeExclusion(rw, coverage)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, false, true}
	for i := range want {
		if excl[i] != want[i] {
			t.Fatalf("excl[%d] = %v", i, excl[i])
		}
	}
}

func TestComposeExclusionNoNodata(t *testing.T) {
	rw := &RasterWindow{
		Data:   []int32{0, 0},
		Window: PixelWindow{W: 2, H: 1},
		Valid:  PixelWindow{W: 2, H: 1},
	}
	excl, err := composeExclusion(rw, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	if excl[0] || !excl[1] {
		t.Fatalf("got %v", excl)
	}
}

func TestComposeExclusionOutsideValid(t *testing.T) {
	// 3x3窗口只有左上2x2含源数据，其余越界像元必须被排除
	rw := &RasterWindow{
		Data:   make([]int32, 9),
		Window: PixelWindow{W: 3, H: 3},
		Valid:  PixelWindow{W: 2, H: 2},
	}
	coverage := make([]bool, 9)
	for i := range coverage {
		coverage[i] = true
	}
	excl, err := composeExclusion(rw, coverage)
	if err != nil {
		t.Fatal(err)
	}
	kept := 0
	for _, e := range excl {
		if !e {
			kept++
		}
	}
	if kept != 4 {
		t.Fatalf("kept %d, want 4", kept)
	}
	if !excl[2] || !excl[6] || !excl[8] {
		t.Fatalf("out-of-raster cells not excluded: %v", excl)
	}
}

func TestComposeExclusionShapeMismatch(t *testing.T) {
	rw := &RasterWindow{
		Data:   make([]int32, 4),
		Window: PixelWindow{W: 2, H: 2},
	}
	if _, err := composeExclusion(rw, make([]bool, 3)); err != ErrWindowMismatch {
		t.Fatalf("err = %v", err)
	}
}

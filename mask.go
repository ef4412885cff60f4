package zonalib

// 组合排除掩膜：excluded = 面未覆盖 ∪ nodata ∪ 窗口越界（无源数据）部分。
// 掩膜只被统计环节消费一次，不复用不修改
func composeExclusion(rw *RasterWindow, coverage []bool) (excluded []bool, err error) {
	n := rw.Window.Size()
	if len(rw.Data) != n || len(coverage) != n {
		err = ErrWindowMismatch
		return
	}
	var (
		nodata    float64
		hasNodata = rw.NoData != nil
		fullValid = rw.Valid.X == 0 && rw.Valid.Y == 0 &&
			rw.Valid.W == rw.Window.W && rw.Valid.H == rw.Window.H
	)
	if hasNodata {
		nodata = *rw.NoData
	}
	excluded = make([]bool, n)
	i := 0
	for y := 0; y < rw.Window.H; y++ {
		for x := 0; x < rw.Window.W; x++ {
			excl := !coverage[i]
			if !excl && hasNodata && float64(rw.Data[i]) == nodata {
				excl = true
			}
			if !excl && !fullValid && !rw.Valid.Contains(x, y) {
				excl = true
			}
			excluded[i] = excl
			i++
		}
	}
	return
}

package zonalib

// NLCD地物分类编码全集，升序排列
var ClassCodes = [...]int32{11, 12, 21, 22, 23, 24, 31, 41, 42, 43, 51, 52, 71, 72, 73, 74, 81, 82, 90, 95}

// 分组号为编码首位数字（NLCD无6组）
var GroupDigits = [...]int32{1, 2, 3, 4, 5, 7, 8, 9}

const (
	NumClassCodes  = len(ClassCodes)
	NumClassGroups = len(GroupDigits)

	classLutSize = 96 // 编码全集上界
)

var (
	classIdx   = map[int32]int{}
	groupIdx   = map[int32]int{}
	classGroup [NumClassCodes]int // 分类下标 → 分组下标

	classLut [classLutSize]int8 // 编码 → 分类下标+1，0为未归类
)

func init() {
	for i, d := range GroupDigits {
		groupIdx[d] = i
	}
	for i, c := range ClassCodes {
		classIdx[c] = i
		classGroup[i] = groupIdx[c/10]
		classLut[c] = int8(i + 1)
	}
}

// 单遍统计窗口内未被排除像元的分类计数。
// 未归类编码只计入TotalPixels，不进任何分类列或分组列（沿用既有口径）
func tabulate(rw *RasterWindow, excluded []bool, out *FeatureStats) {
	for i, v := range rw.Data {
		if excluded[i] {
			continue
		}
		out.TotalPixels++
		if v >= 0 && v < classLutSize {
			if ci := classLut[v]; ci > 0 {
				out.Classes[ci-1]++
			}
		}
	}
	for i, c := range out.Classes {
		out.Groups[classGroup[i]] += c
	}
}

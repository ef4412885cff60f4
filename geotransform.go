package zonalib

// 仿射地理变换系数 (originX, pixelWidth, rotX, originY, rotY, pixelHeight)
// 北向上栅格的pixelHeight为负值
type GeoTransform [6]float64

func (gt GeoTransform) OriginX() float64     { return gt[0] }
func (gt GeoTransform) PixelWidth() float64  { return gt[1] }
func (gt GeoTransform) OriginY() float64     { return gt[3] }
func (gt GeoTransform) PixelHeight() float64 { return gt[5] }

func (gt GeoTransform) Valid() bool {
	return gt[1] != 0 && gt[5] != 0
}

// 地理范围(minX,maxX,minY,maxY)转像元窗口。
// 坐标差与像元尺寸之商向零截断（Go的int转换即向零截断，与既有行为一致，勿改为向下取整），
// 上界再+1以覆盖部分重叠的边缘像元；不对源栅格自身范围做裁剪，窗口可能越界
func (gt GeoTransform) WindowOf(minX, maxX, minY, maxY float64) PixelWindow {
	x1 := int((minX - gt[0]) / gt[1])
	x2 := int((maxX-gt[0])/gt[1]) + 1
	y1 := int((maxY - gt[3]) / gt[5])
	y2 := int((minY-gt[3])/gt[5]) + 1
	return PixelWindow{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// 窗口子集的geotransform：原点平移至窗口偏移处，像元尺寸不变，旋转项置零
func (gt GeoTransform) Shifted(xOff, yOff int) GeoTransform {
	return GeoTransform{
		gt[0] + float64(xOff)*gt[1],
		gt[1],
		0,
		gt[3] + float64(yOff)*gt[5],
		0,
		gt[5],
	}
}

// 地理坐标转本变换下的像元坐标（浮点，不取整）
func (gt GeoTransform) PixelOf(x, y float64) (px, py float64) {
	px = (x - gt[0]) / gt[1]
	py = (y - gt[3]) / gt[5]
	return
}

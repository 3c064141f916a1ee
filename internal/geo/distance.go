package geo

import "math"

// 地球半径（km）
const earthRadiusKm = 6371.0

// Distance 计算两个经纬度坐标间的大圆距离（haversine，单位 km）
func Distance(x1, y1, x2, y2 float64) float64 {
	lat1 := x1 * math.Pi / 180
	lat2 := x2 * math.Pi / 180
	dLat := (x2 - x1) * math.Pi / 180
	dLon := (y2 - y1) * math.Pi / 180

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

package domain

// 校区默认坐标（AGH 主楼）
const (
	CampusX = 50.0687252
	CampusY = 19.9066193
)

type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

package handler

import "strings"

func missingParamsDetails(names []string) string {
	return "Missing following params: " + strings.Join(names, ", ")
}

func missingLocationDetails(names []string) string {
	return "Missing following params in location: " + strings.Join(names, ", ")
}

// locationBody 请求中的 {x, y} 子对象；指针区分缺省
type locationBody struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func (l *locationBody) missing() []string {
	var m []string
	if l.X == nil {
		m = append(m, "x")
	}
	if l.Y == nil {
		m = append(m, "y")
	}
	return m
}

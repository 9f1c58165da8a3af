package models

import (
	"fmt"
	"strconv"
)

const mapURLTemplate = "https://maps.google.com/?q=%s,%s"

// Location представляет координаты, переданные отправителем SOS
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapURL возвращает ссылку на карту с точкой по координатам
func (l Location) MapURL() string {
	return fmt.Sprintf(mapURLTemplate, formatCoordinate(l.Latitude), formatCoordinate(l.Longitude))
}

// formatCoordinate печатает число в кратчайшей точной форме: 12.9 -> "12.9", 77 -> "77"
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package models

// NoCycleLabel — отображаемое значение для культуры без привязанного цикла.
const NoCycleLabel = "—"

// Crop — культура из каталога с подставленным названием цикла роста.
// Если цикл не привязан, CycleName содержит NoCycleLabel.
type Crop struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CycleName string `json:"cycleName"`
}

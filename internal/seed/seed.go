// Package seed содержит стартовый каталог направлений, который загружается
// в пустую базу при первом запуске API.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"camtourvisor/internal/model"
)

//go:embed destinations.json
var destinationsJSON []byte

// Destinations возвращает стартовый каталог.
func Destinations() ([]model.Destination, error) {
	var list []model.Destination
	if err := json.Unmarshal(destinationsJSON, &list); err != nil {
		return nil, fmt.Errorf("ошибка разбора каталога направлений: %w", err)
	}
	return list, nil
}

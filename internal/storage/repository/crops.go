package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// ListCrops возвращает каталог культур с подставленным названием цикла роста.
// Культура без цикла получает метку models.NoCycleLabel вместо NULL.
func (s *Storage) ListCrops(ctx context.Context) ([]models.Crop, error) {
	const op = "storage.ListCrops"

	query := `SELECT c.id, c.type, cy.name
			  FROM crops c
			  LEFT JOIN cycles cy ON cy.id = c.cycle_id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Crop
	for rows.Next() {
		var c models.Crop
		var cycleName sql.NullString
		if err = rows.Scan(&c.ID, &c.Type, &cycleName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if cycleName.Valid {
			c.CycleName = cycleName.String
		} else {
			c.CycleName = models.NoCycleLabel
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

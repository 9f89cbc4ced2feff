package dbhelper

import (
	"database/sql"
	"errors"

	"github.com/PrinceMakavana/restaurant-order-management-system/database"
	"github.com/PrinceMakavana/restaurant-order-management-system/models"
)

// ErrMenuItemNotFound is returned when an id matches no catalog row.
var ErrMenuItemNotFound = errors.New("menu item not found")

func CreateMenuItem(input models.MenuItemInput) (models.MenuItem, error) {
	item := models.MenuItem{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	err := database.Bistro.QueryRow(`
		INSERT INTO menu_items (name, price, category, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		input.Name, input.Price, input.Category, input.Description, input.ImageURL).
		Scan(&item.ID)
	return item, err
}

// UpdateMenuItem merges the non-nil fields of the patch into an existing row.
func UpdateMenuItem(id string, patch models.MenuItemPatch) error {
	res, err := database.Bistro.Exec(`
		UPDATE menu_items SET
			name = COALESCE($2, name),
			price = COALESCE($3, price),
			category = COALESCE($4, category),
			description = COALESCE($5, description),
			image_url = COALESCE($6, image_url),
			updated_at = now()
		WHERE id = $1`,
		id, patch.Name, patch.Price, patch.Category, patch.Description, patch.ImageURL)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func DeleteMenuItem(id string) error {
	res, err := database.Bistro.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func ListMenuItems() ([]models.MenuItem, error) {
	rows, err := database.Bistro.Query(`
		SELECT id, name, price, category, description, image_url
		FROM menu_items
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Category, &it.Description, &it.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

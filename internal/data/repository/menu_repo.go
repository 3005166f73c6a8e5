package repository

import (
	"context"
	"fmt"

	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuFilter struct {
	Category  entity.MenuCategory
	Available *bool
}

type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindByName(ctx context.Context, name string) (*entity.MenuItem, error)
	FindAll(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

const menuColumns = `id, name, description, category, price, available, image, allergens, preparation_time, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Price,
		&item.Available,
		&item.Image,
		&item.Allergens,
		&item.PreparationTime,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, description, category, price, available, image, allergens, preparation_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.Price,
		item.Available,
		item.Image,
		item.Allergens,
		item.PreparationTime,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

func (r *menuRepository) FindByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE name = $1`

	item, err := scanMenuItem(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find menu item by name %s: %w", name, err)
	}

	return item, nil
}

func (r *menuRepository) FindAll(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		query += fmt.Sprintf(" AND available = $%d", len(args))
	}

	query += " ORDER BY category, name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list menu items", zap.Error(err))
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, category = $4, price = $5,
		    available = $6, image = $7, allergens = $8, preparation_time = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Category,
		item.Price,
		item.Available,
		item.Image,
		item.Allergens,
		item.PreparationTime,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_item_id", item.ID.String()),
		)
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", item.ID.String())
	}

	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return fmt.Errorf("delete menu item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s not found", id.String())
	}

	return nil
}

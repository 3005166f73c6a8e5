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

// LoungeFilter narrows and orders the lounge listing. Zero values mean no
// filtering on that field.
type LoungeFilter struct {
	Status      entity.LoungeStatus
	MinCapacity int
	MaxPrice    float64
	Sort        string // price_asc, price_desc, capacity_asc, capacity_desc, name
}

type LoungeRepository interface {
	Create(ctx context.Context, lounge *entity.Lounge) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lounge, error)
	FindByName(ctx context.Context, name string) (*entity.Lounge, error)
	FindAll(ctx context.Context, filter LoungeFilter) ([]*entity.Lounge, error)
	Update(ctx context.Context, lounge *entity.Lounge) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type loungeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLoungeRepository(db database.PgxIface, log *zap.Logger) LoungeRepository {
	return &loungeRepository{
		db:  db,
		log: log.With(zap.String("repository", "lounge")),
	}
}

const loungeColumns = `id, name, description, capacity, price_per_hour, amenities, images, status, location, floor, created_at, updated_at`

func scanLounge(row pgx.Row) (*entity.Lounge, error) {
	var lounge entity.Lounge
	err := row.Scan(
		&lounge.ID,
		&lounge.Name,
		&lounge.Description,
		&lounge.Capacity,
		&lounge.PricePerHour,
		&lounge.Amenities,
		&lounge.Images,
		&lounge.Status,
		&lounge.Location,
		&lounge.Floor,
		&lounge.CreatedAt,
		&lounge.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lounge, nil
}

func (r *loungeRepository) Create(ctx context.Context, lounge *entity.Lounge) error {
	query := `
		INSERT INTO lounges (id, name, description, capacity, price_per_hour, amenities, images, status, location, floor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		lounge.ID,
		lounge.Name,
		lounge.Description,
		lounge.Capacity,
		lounge.PricePerHour,
		lounge.Amenities,
		lounge.Images,
		lounge.Status,
		lounge.Location,
		lounge.Floor,
		lounge.CreatedAt,
		lounge.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lounge",
			zap.Error(err),
			zap.String("name", lounge.Name),
		)
		return fmt.Errorf("create lounge %s: %w", lounge.Name, err)
	}

	return nil
}

func (r *loungeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lounge, error) {
	query := `SELECT ` + loungeColumns + ` FROM lounges WHERE id = $1`

	lounge, err := scanLounge(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lounge by ID",
			zap.Error(err),
			zap.String("lounge_id", id.String()),
		)
		return nil, fmt.Errorf("find lounge by ID %s: %w", id.String(), err)
	}

	return lounge, nil
}

func (r *loungeRepository) FindByName(ctx context.Context, name string) (*entity.Lounge, error) {
	query := `SELECT ` + loungeColumns + ` FROM lounges WHERE name = $1`

	lounge, err := scanLounge(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lounge by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find lounge by name %s: %w", name, err)
	}

	return lounge, nil
}

func (r *loungeRepository) FindAll(ctx context.Context, filter LoungeFilter) ([]*entity.Lounge, error) {
	query := `SELECT ` + loungeColumns + ` FROM lounges WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.MinCapacity > 0 {
		args = append(args, filter.MinCapacity)
		query += fmt.Sprintf(" AND capacity >= $%d", len(args))
	}
	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(" AND price_per_hour <= $%d", len(args))
	}

	switch filter.Sort {
	case "price_asc":
		query += " ORDER BY price_per_hour ASC"
	case "price_desc":
		query += " ORDER BY price_per_hour DESC"
	case "capacity_asc":
		query += " ORDER BY capacity ASC"
	case "capacity_desc":
		query += " ORDER BY capacity DESC"
	case "name":
		query += " ORDER BY name ASC"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list lounges", zap.Error(err))
		return nil, fmt.Errorf("list lounges: %w", err)
	}
	defer rows.Close()

	var lounges []*entity.Lounge
	for rows.Next() {
		lounge, err := scanLounge(rows)
		if err != nil {
			r.log.Error("Failed to scan lounge row", zap.Error(err))
			return nil, fmt.Errorf("scan lounge row: %w", err)
		}
		lounges = append(lounges, lounge)
	}

	return lounges, nil
}

func (r *loungeRepository) Update(ctx context.Context, lounge *entity.Lounge) error {
	query := `
		UPDATE lounges
		SET name = $2, description = $3, capacity = $4, price_per_hour = $5,
		    amenities = $6, images = $7, status = $8, location = $9, floor = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		lounge.ID,
		lounge.Name,
		lounge.Description,
		lounge.Capacity,
		lounge.PricePerHour,
		lounge.Amenities,
		lounge.Images,
		lounge.Status,
		lounge.Location,
		lounge.Floor,
		lounge.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update lounge",
			zap.Error(err),
			zap.String("lounge_id", lounge.ID.String()),
		)
		return fmt.Errorf("update lounge %s: %w", lounge.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lounge %s not found", lounge.ID.String())
	}

	return nil
}

func (r *loungeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM lounges WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete lounge",
			zap.Error(err),
			zap.String("lounge_id", id.String()),
		)
		return fmt.Errorf("delete lounge %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lounge %s not found", id.String())
	}

	r.log.Info("Lounge deleted", zap.String("lounge_id", id.String()))
	return nil
}

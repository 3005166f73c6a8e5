package repository

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FeedbackFilter struct {
	Rating      int
	HasResponse *bool
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	FindByLoungeID(ctx context.Context, loungeID uuid.UUID) ([]*entity.Feedback, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error)
	FindAll(ctx context.Context, filter FeedbackFilter) ([]*entity.Feedback, error)
	UpdateResponse(ctx context.Context, id uuid.UUID, response string, respondedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

const feedbackColumns = `id, user_id, lounge_id, booking_id, rating, service_rating, cleanliness_rating, comment, response, responded_at, created_at`

func scanFeedback(row pgx.Row) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.UserID,
		&feedback.LoungeID,
		&feedback.BookingID,
		&feedback.Rating,
		&feedback.ServiceRating,
		&feedback.CleanlinessRating,
		&feedback.Comment,
		&feedback.Response,
		&feedback.RespondedAt,
		&feedback.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func collectFeedback(rows pgx.Rows) ([]*entity.Feedback, error) {
	defer rows.Close()

	var entries []*entity.Feedback
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		entries = append(entries, feedback)
	}
	return entries, nil
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, user_id, lounge_id, booking_id, rating, service_rating, cleanliness_rating, comment, response, responded_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		feedback.ID,
		feedback.UserID,
		feedback.LoungeID,
		feedback.BookingID,
		feedback.Rating,
		feedback.ServiceRating,
		feedback.CleanlinessRating,
		feedback.Comment,
		feedback.Response,
		feedback.RespondedAt,
		feedback.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("user_id", feedback.UserID.String()),
			zap.String("lounge_id", feedback.LoungeID.String()),
		)
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`

	feedback, err := scanFeedback(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feedback by ID",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return nil, fmt.Errorf("find feedback by ID %s: %w", id.String(), err)
	}

	return feedback, nil
}

func (r *feedbackRepository) FindByLoungeID(ctx context.Context, loungeID uuid.UUID) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE lounge_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, loungeID)
	if err != nil {
		r.log.Error("Failed to find feedback by lounge ID",
			zap.Error(err),
			zap.String("lounge_id", loungeID.String()),
		)
		return nil, fmt.Errorf("find feedback by lounge ID %s: %w", loungeID.String(), err)
	}

	return collectFeedback(rows)
}

func (r *feedbackRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find feedback by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find feedback by user ID %s: %w", userID.String(), err)
	}

	return collectFeedback(rows)
}

func (r *feedbackRepository) FindAll(ctx context.Context, filter FeedbackFilter) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE 1=1`
	args := []any{}

	if filter.Rating > 0 {
		args = append(args, filter.Rating)
		query += fmt.Sprintf(" AND rating = $%d", len(args))
	}
	if filter.HasResponse != nil {
		if *filter.HasResponse {
			query += " AND response IS NOT NULL"
		} else {
			query += " AND response IS NULL"
		}
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return collectFeedback(rows)
}

func (r *feedbackRepository) UpdateResponse(ctx context.Context, id uuid.UUID, response string, respondedAt time.Time) error {
	query := `UPDATE feedback SET response = $2, responded_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, response, respondedAt)
	if err != nil {
		r.log.Error("Failed to update feedback response",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return fmt.Errorf("update feedback response %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feedback %s not found", id.String())
	}

	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM feedback WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete feedback",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return fmt.Errorf("delete feedback %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feedback %s not found", id.String())
	}

	return nil
}

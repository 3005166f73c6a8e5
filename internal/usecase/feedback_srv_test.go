package usecase

import (
	"context"
	"testing"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFeedbackRepo struct {
	repository.FeedbackRepository
	feedback *entity.Feedback
	deleted  []uuid.UUID
}

func (f *fakeFeedbackRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	if f.feedback != nil && f.feedback.ID == id {
		return f.feedback, nil
	}
	return nil, nil
}

func (f *fakeFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestFeedbackServiceDeleteFeedback(t *testing.T) {
	author := uuid.New()
	feedback := &entity.Feedback{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     author,
		LoungeID:   uuid.New(),
		Rating:     4,
	}

	newService := func(entries *fakeFeedbackRepo) FeedbackService {
		return NewFeedbackService(&repository.Repository{Feedback: entries}, zap.NewNop())
	}

	t.Run("admin deletes feedback", func(t *testing.T) {
		entries := &fakeFeedbackRepo{feedback: feedback}
		svc := newService(entries)

		err := svc.DeleteFeedback(context.Background(), uuid.New(), entity.RoleAdmin, feedback.ID.String())

		require.NoError(t, err)
		require.Len(t, entries.deleted, 1)
		assert.Equal(t, feedback.ID, entries.deleted[0])
	})

	t.Run("author cannot delete own feedback", func(t *testing.T) {
		entries := &fakeFeedbackRepo{feedback: feedback}
		svc := newService(entries)

		err := svc.DeleteFeedback(context.Background(), author, entity.RoleCustomer, feedback.ID.String())

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, entries.deleted)
	})

	t.Run("staff cannot delete feedback", func(t *testing.T) {
		entries := &fakeFeedbackRepo{feedback: feedback}
		svc := newService(entries)

		err := svc.DeleteFeedback(context.Background(), uuid.New(), entity.RoleStaff, feedback.ID.String())

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, entries.deleted)
	})

	t.Run("unknown feedback is not found", func(t *testing.T) {
		entries := &fakeFeedbackRepo{feedback: feedback}
		svc := newService(entries)

		err := svc.DeleteFeedback(context.Background(), uuid.New(), entity.RoleAdmin, uuid.New().String())

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

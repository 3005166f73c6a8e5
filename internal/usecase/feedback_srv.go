package usecase

import (
	"context"
	"fmt"
	"time"

	"lounge-booking/internal/data/entity"
	"lounge-booking/internal/data/repository"
	"lounge-booking/internal/dto/request"
	"lounge-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID uuid.UUID, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error)
	GetMyFeedback(ctx context.Context, userID uuid.UUID) (*response.FeedbackListResponse, error)
	GetLoungeFeedback(ctx context.Context, loungeID string) (*response.LoungeFeedbackResponse, error)

	// Staff endpoints
	ListFeedback(ctx context.Context, rating int, hasResponse *bool) (*response.FeedbackListResponse, error)
	RespondFeedback(ctx context.Context, feedbackID string, req *request.RespondFeedbackRequest) (*response.FeedbackResponse, error)

	// Admin endpoints
	DeleteFeedback(ctx context.Context, userID uuid.UUID, role entity.UserRole, feedbackID string) error
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, userID uuid.UUID, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	loungeID, err := uuid.Parse(req.LoungeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
	}

	lounge, err := s.repo.Lounge.FindByID(ctx, loungeID)
	if err != nil {
		s.log.Error("Failed to find lounge", zap.Error(err), zap.String("lounge_id", req.LoungeID))
		return nil, fmt.Errorf("find lounge: %w", err)
	}
	if lounge == nil {
		return nil, fmt.Errorf("%w: lounge %s", ErrNotFound, req.LoungeID)
	}

	var bookingID *uuid.UUID
	if req.BookingID != nil {
		id, err := uuid.Parse(*req.BookingID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid booking ID format", ErrInvalidInput)
		}

		booking, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find booking: %w", err)
		}
		if booking == nil {
			return nil, fmt.Errorf("%w: booking %s", ErrNotFound, *req.BookingID)
		}
		if booking.UserID != userID {
			return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		bookingID = &id
	}

	feedback := &entity.Feedback{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:            userID,
		LoungeID:          loungeID,
		BookingID:         bookingID,
		Rating:            req.Rating,
		ServiceRating:     req.ServiceRating,
		CleanlinessRating: req.CleanlinessRating,
		Comment:           req.Comment,
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		s.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("lounge_id", req.LoungeID),
		)
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.log.Info("Feedback created",
		zap.String("feedback_id", feedback.ID.String()),
		zap.String("lounge_id", req.LoungeID),
		zap.Int("rating", req.Rating),
	)

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) GetMyFeedback(ctx context.Context, userID uuid.UUID) (*response.FeedbackListResponse, error) {
	entries, err := s.repo.Feedback.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user feedback", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user feedback: %w", err)
	}

	resp := response.FeedbackEntriesToResponse(entries)
	return &resp, nil
}

// GetLoungeFeedback returns a lounge's feedback along with rating averages
// computed over all of its entries.
func (s *feedbackService) GetLoungeFeedback(ctx context.Context, loungeID string) (*response.LoungeFeedbackResponse, error) {
	id, err := uuid.Parse(loungeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
	}

	lounge, err := s.repo.Lounge.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find lounge: %w", err)
	}
	if lounge == nil {
		return nil, fmt.Errorf("%w: lounge %s", ErrNotFound, loungeID)
	}

	entries, err := s.repo.Feedback.FindByLoungeID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get lounge feedback", zap.Error(err), zap.String("lounge_id", loungeID))
		return nil, fmt.Errorf("get lounge feedback: %w", err)
	}

	list := response.FeedbackEntriesToResponse(entries)

	return &response.LoungeFeedbackResponse{
		Feedback:   list.Entries,
		Statistics: buildStatistics(entries),
	}, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context, rating int, hasResponse *bool) (*response.FeedbackListResponse, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating filter must be 1-5", ErrInvalidInput)
	}

	entries, err := s.repo.Feedback.FindAll(ctx, repository.FeedbackFilter{
		Rating:      rating,
		HasResponse: hasResponse,
	})
	if err != nil {
		s.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	resp := response.FeedbackEntriesToResponse(entries)
	return &resp, nil
}

func (s *feedbackService) RespondFeedback(ctx context.Context, feedbackID string, req *request.RespondFeedbackRequest) (*response.FeedbackResponse, error) {
	feedback, err := s.findFeedback(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.Feedback.UpdateResponse(ctx, feedback.ID, req.Response, now); err != nil {
		s.log.Error("Failed to respond to feedback", zap.Error(err), zap.String("feedback_id", feedbackID))
		return nil, fmt.Errorf("respond to feedback: %w", err)
	}

	feedback.Response = &req.Response
	feedback.RespondedAt = &now

	s.log.Info("Feedback responded", zap.String("feedback_id", feedbackID))

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

// DeleteFeedback removes an entry. Only administrators may delete feedback,
// including the entry's own author.
func (s *feedbackService) DeleteFeedback(ctx context.Context, userID uuid.UUID, role entity.UserRole, feedbackID string) error {
	if role != entity.RoleAdmin {
		return fmt.Errorf("%w: only administrators can delete feedback", ErrForbidden)
	}

	feedback, err := s.findFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}

	if err := s.repo.Feedback.Delete(ctx, feedback.ID); err != nil {
		s.log.Error("Failed to delete feedback", zap.Error(err), zap.String("feedback_id", feedbackID))
		return fmt.Errorf("delete feedback: %w", err)
	}

	s.log.Info("Feedback deleted",
		zap.String("feedback_id", feedbackID),
		zap.String("deleted_by", userID.String()))
	return nil
}

func (s *feedbackService) findFeedback(ctx context.Context, feedbackID string) (*entity.Feedback, error) {
	id, err := uuid.Parse(feedbackID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid feedback ID format", ErrInvalidInput)
	}

	feedback, err := s.repo.Feedback.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find feedback", zap.Error(err), zap.String("feedback_id", feedbackID))
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	if feedback == nil {
		return nil, fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
	}

	return feedback, nil
}

func buildStatistics(entries []*entity.Feedback) response.FeedbackStatistics {
	stats := response.FeedbackStatistics{Count: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	var ratingSum, serviceSum, cleanSum int
	var serviceCount, cleanCount int
	for _, feedback := range entries {
		ratingSum += feedback.Rating
		if feedback.ServiceRating != nil {
			serviceSum += *feedback.ServiceRating
			serviceCount++
		}
		if feedback.CleanlinessRating != nil {
			cleanSum += *feedback.CleanlinessRating
			cleanCount++
		}
	}

	stats.AverageRating = float64(ratingSum) / float64(len(entries))
	if serviceCount > 0 {
		stats.AvgService = float64(serviceSum) / float64(serviceCount)
	}
	if cleanCount > 0 {
		stats.AvgCleanliness = float64(cleanSum) / float64(cleanCount)
	}

	return stats
}

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

type LoungeService interface {
	ListLounges(ctx context.Context, query *request.LoungeListQuery) (*response.LoungeListResponse, error)
	GetLounge(ctx context.Context, loungeID string) (*response.LoungeResponse, error)
	CheckAvailability(ctx context.Context, loungeID, startStr, endStr string) (*response.AvailabilityResponse, error)

	// Admin endpoints
	CreateLounge(ctx context.Context, req *request.CreateLoungeRequest) (*response.LoungeResponse, error)
	UpdateLounge(ctx context.Context, loungeID string, req *request.UpdateLoungeRequest) (*response.LoungeResponse, error)
	DeleteLounge(ctx context.Context, loungeID string) error
}

type loungeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLoungeService(repo *repository.Repository, log *zap.Logger) LoungeService {
	return &loungeService{
		repo: repo,
		log:  log.With(zap.String("service", "lounge")),
	}
}

func (s *loungeService) ListLounges(ctx context.Context, query *request.LoungeListQuery) (*response.LoungeListResponse, error) {
	if query.Status != "" && !entity.LoungeStatus(query.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown lounge status %s", ErrInvalidInput, query.Status)
	}

	lounges, err := s.repo.Lounge.FindAll(ctx, repository.LoungeFilter{
		Status:      entity.LoungeStatus(query.Status),
		MinCapacity: query.MinCapacity,
		MaxPrice:    query.MaxPrice,
		Sort:        query.Sort,
	})
	if err != nil {
		s.log.Error("Failed to list lounges", zap.Error(err))
		return nil, fmt.Errorf("list lounges: %w", err)
	}

	resp := response.LoungesToResponse(lounges)
	return &resp, nil
}

func (s *loungeService) GetLounge(ctx context.Context, loungeID string) (*response.LoungeResponse, error) {
	lounge, err := s.findLounge(ctx, loungeID)
	if err != nil {
		return nil, err
	}

	resp := response.LoungeToResponse(lounge)
	return &resp, nil
}

// CheckAvailability answers whether a lounge is free over [start, end) and
// lists blocking bookings when it is not.
func (s *loungeService) CheckAvailability(ctx context.Context, loungeID, startStr, endStr string) (*response.AvailabilityResponse, error) {
	lounge, err := s.findLounge(ctx, loungeID)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_time, expected RFC3339", ErrInvalidInput)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_time, expected RFC3339", ErrInvalidInput)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}

	conflicts, err := s.repo.Booking.FindOverlapping(ctx, lounge.ID, start, end, uuid.Nil)
	if err != nil {
		s.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("lounge_id", loungeID),
		)
		return nil, fmt.Errorf("check availability: %w", err)
	}

	conflictResp := response.BookingsToResponse(conflicts)

	return &response.AvailabilityResponse{
		Available: lounge.IsBookable() && len(conflicts) == 0,
		Lounge:    response.LoungeToResponse(lounge),
		Conflicts: conflictResp.Bookings,
	}, nil
}

func (s *loungeService) CreateLounge(ctx context.Context, req *request.CreateLoungeRequest) (*response.LoungeResponse, error) {
	existing, err := s.repo.Lounge.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check lounge name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check lounge name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: lounge name already in use", ErrConflict)
	}

	status := entity.LoungeStatusAvailable
	if req.Status != "" {
		status = entity.LoungeStatus(req.Status)
	}

	now := time.Now()
	lounge := &entity.Lounge{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Amenities:    req.Amenities,
		Images:       req.Images,
		Status:       status,
		Location:     req.Location,
		Floor:        req.Floor,
	}

	if err := s.repo.Lounge.Create(ctx, lounge); err != nil {
		s.log.Error("Failed to create lounge", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create lounge: %w", err)
	}

	s.log.Info("Lounge created",
		zap.String("lounge_id", lounge.ID.String()),
		zap.String("name", lounge.Name))

	resp := response.LoungeToResponse(lounge)
	return &resp, nil
}

func (s *loungeService) UpdateLounge(ctx context.Context, loungeID string, req *request.UpdateLoungeRequest) (*response.LoungeResponse, error) {
	lounge, err := s.findLounge(ctx, loungeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != lounge.Name {
		existing, err := s.repo.Lounge.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("check lounge name: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: lounge name already in use", ErrConflict)
		}
		lounge.Name = *req.Name
	}
	if req.Description != nil {
		lounge.Description = req.Description
	}
	if req.Capacity != nil {
		lounge.Capacity = *req.Capacity
	}
	if req.PricePerHour != nil {
		lounge.PricePerHour = *req.PricePerHour
	}
	if req.Amenities != nil {
		lounge.Amenities = req.Amenities
	}
	if req.Images != nil {
		lounge.Images = req.Images
	}
	if req.Status != nil {
		lounge.Status = entity.LoungeStatus(*req.Status)
	}
	if req.Location != nil {
		lounge.Location = req.Location
	}
	if req.Floor != nil {
		lounge.Floor = req.Floor
	}
	lounge.UpdatedAt = time.Now()

	if err := s.repo.Lounge.Update(ctx, lounge); err != nil {
		s.log.Error("Failed to update lounge", zap.Error(err), zap.String("lounge_id", loungeID))
		return nil, fmt.Errorf("update lounge: %w", err)
	}

	s.log.Info("Lounge updated", zap.String("lounge_id", loungeID))

	resp := response.LoungeToResponse(lounge)
	return &resp, nil
}

// DeleteLounge refuses to remove a lounge that still has upcoming pending or
// confirmed bookings.
func (s *loungeService) DeleteLounge(ctx context.Context, loungeID string) error {
	lounge, err := s.findLounge(ctx, loungeID)
	if err != nil {
		return err
	}

	active, err := s.repo.Booking.CountFutureActive(ctx, lounge.ID, time.Now())
	if err != nil {
		s.log.Error("Failed to count future bookings", zap.Error(err), zap.String("lounge_id", loungeID))
		return fmt.Errorf("count future bookings: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("%w: lounge has %d upcoming booking(s)", ErrConflict, active)
	}

	if err := s.repo.Lounge.Delete(ctx, lounge.ID); err != nil {
		s.log.Error("Failed to delete lounge", zap.Error(err), zap.String("lounge_id", loungeID))
		return fmt.Errorf("delete lounge: %w", err)
	}

	s.log.Info("Lounge deleted", zap.String("lounge_id", loungeID))
	return nil
}

func (s *loungeService) findLounge(ctx context.Context, loungeID string) (*entity.Lounge, error) {
	id, err := uuid.Parse(loungeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid lounge ID format", ErrInvalidInput)
	}

	lounge, err := s.repo.Lounge.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find lounge", zap.Error(err), zap.String("lounge_id", loungeID))
		return nil, fmt.Errorf("find lounge: %w", err)
	}
	if lounge == nil {
		return nil, fmt.Errorf("%w: lounge %s", ErrNotFound, loungeID)
	}

	return lounge, nil
}

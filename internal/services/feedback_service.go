package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type FeedbackServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error)
	FindAll(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	repo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(repo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.ErrInvalidRating
	}
	if req.Comment == "" {
		return nil, utils.ErrMissingFields
	}
	rec := &db_models.Feedback{
		ParentID: parentID,
		Comment:  req.Comment,
		Rating:   req.Rating,
	}
	if err := s.repo.CreateFeedback(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *FeedbackService) FindAll(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	feedbacks, err := s.repo.ListFeedback(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return feedbacks, nil
}

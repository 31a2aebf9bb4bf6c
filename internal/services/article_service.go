package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type ArticleServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateArticleRequest) (*db_models.Article, error)
	FindAll(ctx context.Context) ([]db_models.Article, error)
	FindByAuthor(ctx context.Context, author string) ([]db_models.Article, error)
	FindOne(ctx context.Context, id uuid.UUID) (*db_models.Article, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateArticleRequest) (*db_models.Article, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type ArticleService struct {
	repo repositories.ArticleRepository
}

func NewArticleService(repo repositories.ArticleRepository) ArticleServiceInterface {
	return &ArticleService{repo: repo}
}

func (s *ArticleService) Create(ctx context.Context, req request_models.CreateArticleRequest) (*db_models.Article, error) {
	if req.Title == "" || req.Content == "" {
		return nil, utils.ErrMissingFields
	}
	rec := &db_models.Article{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Image:   req.Image,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *ArticleService) FindAll(ctx context.Context) ([]db_models.Article, error) {
	articles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return articles, nil
}

func (s *ArticleService) FindByAuthor(ctx context.Context, author string) ([]db_models.Article, error) {
	articles, err := s.repo.ListByAuthor(ctx, author)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return articles, nil
}

func (s *ArticleService) FindOne(ctx context.Context, id uuid.UUID) (*db_models.Article, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrArticleNotFound
	}
	return rec, nil
}

func (s *ArticleService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateArticleRequest) (*db_models.Article, error) {
	rec, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return rec, nil
	}
	if req.Title != nil && *req.Title == "" {
		return nil, utils.ErrMissingFields
	}
	if req.Content != nil && *req.Content == "" {
		return nil, utils.ErrMissingFields
	}
	if err := s.repo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ArticleService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

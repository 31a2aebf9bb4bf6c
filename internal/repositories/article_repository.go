package repositories

import (
	"context"

	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type ArticleRepository interface {
	CatalogRepository[db_models.Article]
	// ListByAuthor matches the author case-insensitively, deleted
	// articles excluded.
	ListByAuthor(ctx context.Context, author string) ([]db_models.Article, error)
}

type articleRepository struct {
	CatalogRepository[db_models.Article]
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		CatalogRepository: NewCatalogRepository[db_models.Article](db),
		db:                db,
	}
}

func (r *articleRepository) ListByAuthor(ctx context.Context, author string) ([]db_models.Article, error) {
	var articles []db_models.Article
	err := r.db.WithContext(ctx).
		Where("LOWER(author) = LOWER(?) AND is_deleted = ?", author, false).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

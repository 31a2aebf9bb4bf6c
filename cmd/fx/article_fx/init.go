package article_fx

import (
	"go.uber.org/fx"

	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	repositories.NewArticleRepository,
	provideArticleService)

func provideArticleService(repo repositories.ArticleRepository) services.ArticleServiceInterface {
	return services.NewArticleService(repo)
}

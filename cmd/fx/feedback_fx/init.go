package feedback_fx

import (
	"go.uber.org/fx"

	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	repositories.NewFeedbackRepository,
	provideFeedbackService)

func provideFeedbackService(repo repositories.FeedbackRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(repo)
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestling/internal/models/request_models"
	"nestling/internal/models/response_models"
	"nestling/internal/repositories"
	"nestling/pkg/logger"
	"nestling/pkg/memcache"
	"nestling/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AuthServiceInterface interface {
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	// Refresh validates and rotates the refresh token. A token that does
	// not match the stored hash is rejected even when its signature is good.
	Refresh(ctx context.Context, req request_models.RefreshRequest) (*response_models.TokenPairResponse, error)
	ForgotPassword(ctx context.Context, req request_models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
	Logout(ctx context.Context, parentID uuid.UUID) error
}

type AuthService struct {
	parentRepo  repositories.ParentRepository
	guard       GuardianServiceInterface
	resetTokens memcache.ResetTokenStore
	mail        MailServiceInterface
}

func NewAuthService(
	parentRepo repositories.ParentRepository,
	guard GuardianServiceInterface,
	resetTokens memcache.ResetTokenStore,
	mail MailServiceInterface,
) AuthServiceInterface {
	return &AuthService{
		parentRepo:  parentRepo,
		guard:       guard,
		resetTokens: resetTokens,
		mail:        mail,
	}
}

func (s *AuthService) issueTokens(ctx context.Context, parentID uuid.UUID) (string, string, error) {
	accessToken, err := utils.CreateAccessToken(parentID)
	if err != nil {
		return "", "", utils.ErrDatabaseError
	}
	refreshToken, err := utils.CreateRefreshToken(parentID)
	if err != nil {
		return "", "", utils.ErrDatabaseError
	}

	refreshHash := utils.HashToken(refreshToken)
	if err := s.parentRepo.ApplyPatch(ctx, parentID, map[string]any{"refresh_token_hash": refreshHash}); err != nil {
		return "", "", utils.ErrDatabaseError
	}
	return accessToken, refreshToken, nil
}

func (s *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	parent, err := s.parentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(parent.Password, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, parent.ID)
	if err != nil {
		return nil, err
	}

	relations, err := s.guard.ActiveChildren(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	children := make([]response_models.ChildSummary, 0, len(relations))
	for _, relation := range relations {
		children = append(children, response_models.ChildSummary{
			ChildID:   relation.ChildID.String(),
			FirstName: relation.Child.FirstName,
			LastName:  relation.Child.LastName,
		})
	}

	return &response_models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Children:     children,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, req request_models.RefreshRequest) (*response_models.TokenPairResponse, error) {
	claims, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, utils.ErrInvalidRefreshToken
	}
	parentID, err := uuid.Parse(claims.ParentID)
	if err != nil {
		return nil, utils.ErrInvalidRefreshToken
	}

	parent, err := s.parentRepo.FindByID(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil || parent.RefreshTokenHash == "" {
		return nil, utils.ErrInvalidRefreshToken
	}
	if err := utils.CompareTokens(parent.RefreshTokenHash, req.RefreshToken); err != nil {
		return nil, utils.ErrInvalidRefreshToken
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, parent.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, req request_models.ForgotPasswordRequest) error {
	parent, err := s.parentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// the response never reveals whether the account exists
	if parent == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	s.resetTokens.Set(token, parent.Email, resetTokenTTL)

	if err := s.mail.SendPasswordReset(parent.Email, token); err != nil {
		logger.GetLogger().Error("reset mail failed",
			zap.String("email", parent.Email), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := s.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	parent, err := s.parentRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if parent == nil {
		return utils.ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// changing the password also invalidates the outstanding refresh token
	patch := map[string]any{
		"password":           hashed,
		"refresh_token_hash": "",
	}
	if err := s.parentRepo.ApplyPatch(ctx, parent.ID, patch); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AuthService) Logout(ctx context.Context, parentID uuid.UUID) error {
	if err := s.parentRepo.ApplyPatch(ctx, parentID, map[string]any{"refresh_token_hash": ""}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

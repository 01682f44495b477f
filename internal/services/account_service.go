package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"shinkai/internal/models/db_models"
	"shinkai/internal/models/request_models"
	"shinkai/internal/models/response_models"
	"shinkai/internal/repositories"
	"shinkai/pkg/utils"
)

const DefaultRole = "user"

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	Register(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("find account", zap.Error(err))
		return response_models.AccountLoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountLoginResponse{}, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Role)
	if err != nil {
		a.logger.Error("sign token", zap.Error(err))
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	a.logger.Debug("login", zap.String("account_id", account.ID.String()), zap.Duration("took", time.Since(startTime)))
	return response_models.AccountLoginResponse{Token: token}, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		a.logger.Error("find account", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.logger.Error("hash password", zap.Error(err))
		return utils.ErrInvalidInput
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        strings.TrimSpace(request.Email),
		PasswordHash: hashedPassword,
		Role:         DefaultRole,
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		a.logger.Error("insert account", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

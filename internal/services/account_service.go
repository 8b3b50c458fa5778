package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"progulka/internal/models/db_models"
	"progulka/internal/models/request_models"
	"progulka/internal/models/response_models"
	"progulka/internal/repositories"
	"progulka/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.SugaredLogger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.SugaredLogger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         "user",
	}
	if err := a.accountRepo.InsertTx(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Infow("account created", "email", req.Email)
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.TokenPair, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	access, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	refresh, err := utils.CreateRefreshToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil || claims.Subject != "refresh" {
		return "", utils.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(userID, claims.Role)
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

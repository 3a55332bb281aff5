package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

// authService registers users and exchanges credentials for session tokens.
// Passwords are stored as Argon2id hashes.
type authService struct {
	userRepository store.UserRepository
	tokens         TokenService

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] over the given repository and
// token service.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - a [ValueError] of kind ErrDuplicateValue if the login is taken.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Login: credentials.Login, Password: hash})
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user creation ended with error")
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, duplicateError(credentials.Login, err)
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns:
//   - a [ValueError] of kind ErrNoValueFound if the login is unknown.
//   - ErrAuthorization if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		log.Error().Str("login", credentials.Login).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, notFoundError(credentials.Login, err)
		}
		return models.Token{}, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := utils.VerifyPassword(credentials.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.Token{}, ErrAuthorization
	}
	if !ok {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.Token{}, ErrAuthorization
	}

	return a.tokens.IssueSessionToken(foundUser.UserID)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// DeleteUser lets a user delete only their own account.
func (s *userService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	log := logger.FromContext(ctx)

	if callerID != userID {
		log.Warn().Int64("caller_id", callerID).Int64("user_id", userID).Msg("attempt to delete another user")
		return ownershipError(SubjectUser, userID)
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error deleting user")
		if errors.Is(err, store.ErrUserNotFound) {
			return notFoundError(userID, err)
		}
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
	"travelsuzBack/utils"
)

// RevocationList is the write side of the refresh token blacklist.
type RevocationList interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

type UserService struct {
	UserRepo     *repositories.UserRepository
	Blacklist    RevocationList
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.Tokens, error) {
	access, err := s.TokenManager.NewAccessToken(user.ID, user.Role(), s.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role(),
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) Register(ctx context.Context, user models.User, password string) (models.AuthResponse, error) {
	taken, err := s.UserRepo.UsernameTaken(ctx, user.Username, 0)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if taken {
		return models.AuthResponse{}, models.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthResponse{}, err
	}
	user.Password = string(hashedPassword)

	user, err = s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Tokens: tokens, User: &user}, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (models.AuthResponse, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.AuthResponse{}, models.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}
	return models.AuthResponse{Tokens: tokens, Message: "Signed in successfully"}, nil
}

// Logout drops the session and blacklists the refresh token for the rest of
// its lifetime, so it can no longer mint access tokens.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if err := s.UserRepo.DeleteSessionByToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.Blacklist.Revoke(ctx, refreshToken, time.Until(session.ExpiresAt))
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

// UpdateUser persists the merged record. A non-empty newPassword is re-hashed;
// a username change is checked unique against every other account.
func (s *UserService) UpdateUser(ctx context.Context, user models.User, newPassword string) (models.User, error) {
	taken, err := s.UserRepo.UsernameTaken(ctx, user.Username, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, models.ErrDuplicateUsername
	}

	if newPassword != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hashedPassword)
	}
	return s.UserRepo.UpdateUser(ctx, user)
}

// DeleteUser removes the target account. Callers can never delete themselves,
// admins included.
func (s *UserService) DeleteUser(ctx context.Context, callerID, targetID int) error {
	if callerID == targetID {
		return models.ErrSelfDelete
	}
	if err := s.UserRepo.DeleteUser(ctx, targetID); err != nil {
		return err
	}
	return s.UserRepo.DeleteSessionsByUser(ctx, targetID)
}

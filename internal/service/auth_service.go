// Package service holds the application's business logic, between the
// HTTP handlers and the repositories.
package service

import (
	"context"
	"strings"

	"campusnet/internal/models"
	"campusnet/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	University string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account. A taken email or username is
// rejected up front; the unique constraints backstop races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Tous les champs sont requis")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, models.NewValidationError("Adresse email invalide")
	}
	if len(in.Password) < 6 {
		return nil, models.NewValidationError("Le mot de passe doit contenir au moins 6 caractères")
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if existing, err = s.userRepo.GetByUsername(ctx, in.Username); err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, models.NewConflictError("Email ou nom d'utilisateur déjà utilisé")
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = in.Username
	}
	university := strings.TrimSpace(in.University)
	if university == "" {
		university = "Non spécifié"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Username:   in.Username,
		Email:      in.Email,
		Password:   string(hash),
		FullName:   fullName,
		University: university,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password return
// the same error so the response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email et mot de passe requis")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Email ou mot de passe incorrect")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Email ou mot de passe incorrect")
	}
	return user, nil
}

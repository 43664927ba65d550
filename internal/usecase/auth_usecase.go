package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/user"
	"job-board/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists           = errors.New("user already exists")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
)

// FieldError reports the first missing registration field, in the order
// name, email, mobile, password.
type FieldError struct {
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// AuthResult carries the stored name and a freshly issued token.
type AuthResult struct {
	Name     string
	JwtToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthService struct {
	users  user.Repository
	tokens jwt.Service
	logger *log.Logger

	now func() time.Time
}

func NewAuthService(users user.Repository, tokens jwt.Service, logger *log.Logger) *AuthService {
	if logger == nil {
		logger = log.Default()
	}
	return &AuthService{users: users, tokens: tokens, logger: logger, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	if strings.TrimSpace(in.Name) == "" {
		return AuthResult{}, &FieldError{Message: "Name is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return AuthResult{}, &FieldError{Message: "Email is required"}
	}
	if strings.TrimSpace(in.Mobile) == "" {
		return AuthResult{}, &FieldError{Message: "Mobile is required"}
	}
	if in.Password == "" {
		return AuthResult{}, &FieldError{Message: "Password is required"}
	}

	email := strings.TrimSpace(in.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Printf("[Auth] existing-user lookup failed: %v", err)
		return AuthResult{}, ErrInternal
	}
	if exists {
		return AuthResult{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Printf("[Auth] password hashing failed: %v", err)
		return AuthResult{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Mobile:       strings.TrimSpace(in.Mobile),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Printf("[Auth] user create failed: %v", err)
		return AuthResult{}, ErrInternal
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		s.logger.Printf("[Auth] token issue failed: %v", err)
		return AuthResult{}, ErrInternal
	}

	return AuthResult{Name: u.Name, JwtToken: token}, nil
}

// Login does not reveal whether the email exists; an unknown email and a
// wrong password produce the same result.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrIncorrectCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthResult{}, ErrIncorrectCredentials
		}
		s.logger.Printf("[Auth] user lookup failed: %v", err)
		return AuthResult{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		s.logger.Printf("[Auth] token issue failed: %v", err)
		return AuthResult{}, ErrInternal
	}

	return AuthResult{Name: u.Name, JwtToken: token}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"social_workspace/dto"
	"social_workspace/internal/audit"
	"social_workspace/internal/models"
	"social_workspace/internal/repository"
	"social_workspace/internal/token"
)

const maxPasswordBytes = 72

type AuthResult struct {
	UserID string
	Email  string
	Token  string
}

type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
	cost   int
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:  users,
		tokens: tokens,
		cost:   bcryptCost,
		now:    time.Now,
	}
}

// Signup registers a new user and returns a bearer token for it.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupReq) (*AuthResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("signup lookup: %w", err)
	}

	// the validator counts runes, bcrypt counts bytes
	if len(req.Password) > maxPasswordBytes {
		return nil, &ValidationError{Message: invalidInputMsg, Fields: []string{"password"}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ValidationError{Message: invalidInputMsg, Fields: []string{"password"}}
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.NewUser(req.Email, string(hash), s.now().UTC())
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent signup; the unique index decides
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	audit.Log(ctx, audit.ActionSignup, u.ID.Hex(), "user signed up")
	return &AuthResult{UserID: u.ID.Hex(), Email: u.Email, Token: tok}, nil
}

// Login checks credentials. Unknown email and wrong password fail the same
// way and both pay for one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, req dto.LoginReq) (*AuthResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		s.burnCompare(req.Password)
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.burnCompare(req.Password)
			audit.Log(ctx, audit.ActionLoginFailed, "", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		audit.Log(ctx, audit.ActionLoginFailed, u.ID.Hex(), "wrong password")
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	audit.Log(ctx, audit.ActionLogin, u.ID.Hex(), "user logged in")
	return &AuthResult{UserID: u.ID.Hex(), Email: u.Email, Token: tok}, nil
}

// burnCompare runs a comparison against a fixed hash of the configured cost.
func (s *AuthService) burnCompare(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), s.cost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}

package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	pkgAuth "github.com/vitrinepdv/vitrine/internal/pkg/auth"
)

// AuthUseCase handles staff account lifecycle and token management.
type AuthUseCase struct {
	staff  repository.StaffRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(staff repository.StaffRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{staff: staff, hasher: hasher, tokens: strategy}
}

// Register creates a new staff account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string, role model.StaffRole) (*model.Staff, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if role != model.StaffRoleAdmin && role != model.StaffRoleSeller {
		role = model.StaffRoleSeller
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	member, err := u.staff.Create(ctx, login, hash, role)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(member.ID, string(member.Role))
	if err != nil {
		return nil, "", err
	}

	return member, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Staff, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	member, err := u.staff.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(member.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(member.ID, string(member.Role))
	if err != nil {
		return nil, "", err
	}

	return member, token, nil
}

// ParseToken extracts the staff id and role from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, model.StaffRole, error) {
	if token == "" {
		return 0, "", pkgAuth.ErrInvalidToken
	}
	id, role, err := u.tokens.ParseToken(token)
	if err != nil {
		return 0, "", err
	}
	return id, model.StaffRole(role), nil
}

// GetByID fetches a staff member by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	return u.staff.GetByID(ctx, id)
}

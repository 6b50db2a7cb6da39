package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asistencia-sv/asistencia-backend-go/internal/domain/user"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/pagination"
	"github.com/asistencia-sv/asistencia-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	tx       database.Transactor
	userRepo user.UserRepository
	roleRepo user.RoleRepository
}

func NewUserService(tx database.Transactor, userRepo user.UserRepository, roleRepo user.RoleRepository) user.UserService {
	return &UserServiceImpl{
		tx:       tx,
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// resolveRoles maps role codes onto catalogue ids. Unknown codes are a
// validation error on the roles field.
func (s *UserServiceImpl) resolveRoles(ctx context.Context, codes []string) ([]int64, error) {
	if len(codes) == 0 {
		return []int64{}, nil
	}
	trimmed := make([]string, 0, len(codes))
	for _, c := range codes {
		trimmed = append(trimmed, strings.TrimSpace(c))
	}

	roles, err := s.roleRepo.GetByCodes(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	known := make(map[string]int64, len(roles))
	for _, r := range roles {
		known[string(r.Code)] = r.ID
	}

	ids := make([]int64, 0, len(roles))
	seen := make(map[int64]bool, len(roles))
	for _, c := range trimmed {
		id, ok := known[c]
		if !ok {
			return nil, validator.ValidationErrors{{Field: "roles", Message: fmt.Sprintf("el rol %q no existe", c)}}
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	roleIDs, err := s.resolveRoles(ctx, req.Roles)
	if err != nil {
		return user.UserResponse{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	var created user.User
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		newUser, err := s.userRepo.Create(txCtx, user.User{
			Username:     strings.TrimSpace(req.Username),
			FirstName:    strings.TrimSpace(req.FirstName),
			LastName:     strings.TrimSpace(req.LastName),
			Department:   validator.TrimToNil(req.Department),
			EmployeeCode: validator.TrimToNil(req.EmployeeCode),
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		if err := s.userRepo.SyncRoles(txCtx, newUser.ID, roleIDs); err != nil {
			return err
		}
		created, err = s.userRepo.GetByID(txCtx, newUser.ID)
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	var roleIDs []int64
	if req.Roles != nil {
		ids, err := s.resolveRoles(ctx, req.Roles)
		if err != nil {
			return user.UserResponse{}, err
		}
		roleIDs = ids
	}

	var hash string
	if req.Password != "" {
		h, err := hashPassword(req.Password)
		if err != nil {
			return user.UserResponse{}, err
		}
		hash = h
	}

	var updated user.User
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		u, err := s.userRepo.Update(txCtx, user.User{
			ID:           req.ID,
			Username:     strings.TrimSpace(req.Username),
			FirstName:    strings.TrimSpace(req.FirstName),
			LastName:     strings.TrimSpace(req.LastName),
			Department:   validator.TrimToNil(req.Department),
			EmployeeCode: validator.TrimToNil(req.EmployeeCode),
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		if req.Roles == nil {
			updated = u
			return nil
		}
		if err := s.userRepo.SyncRoles(txCtx, u.ID, roleIDs); err != nil {
			return err
		}
		updated, err = s.userRepo.GetByID(txCtx, u.ID)
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(updated), nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	if p, ok := user.PrincipalFromContext(ctx); ok && p.UserID == id {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	filter.Search = validator.TrimToNil(filter.Search)
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, err
	}

	resp := user.ListUserResponse{
		Users:      make([]user.UserResponse, 0, len(users)),
		Pagination: pagination.NewPage(filter.Params, total, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, user.ToUserResponse(u))
	}
	return resp, nil
}

func (s *UserServiceImpl) ListRoles(ctx context.Context) ([]user.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]user.RoleResponse, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, user.RoleResponse{Code: string(r.Code), Name: r.Name})
	}
	return resp, nil
}

// EnsureUser implements user.UserService. An existing account is left as is.
func (s *UserServiceImpl) EnsureUser(ctx context.Context, username, password string, roles ...user.Role) (bool, error) {
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return false, err
	}

	codes := make([]string, 0, len(roles))
	for _, r := range roles {
		codes = append(codes, string(r))
	}

	_, err = s.Create(ctx, user.CreateUserRequest{
		Username:        username,
		FirstName:       username,
		LastName:        username,
		Password:        password,
		ConfirmPassword: password,
		Roles:           codes,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			return false, nil
		}
		return false, err
	}
	slog.Info("Bootstrap user created", "username", username, "roles", codes)
	return true, nil
}

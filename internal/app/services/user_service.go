package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/safatanc/admin-console/internal/app/errors"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/app/pkg"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"gorm.io/gorm"
)

type UserService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewUserService(db *gorm.DB, validator *infrastructures.Validator) *UserService {
	return &UserService{
		db:        db,
		validator: validator,
	}
}

func (s *UserService) ListUsers(ctx context.Context, query models.ListQuery) (*models.ListResponse[models.User], error) {
	return List[models.User](ctx, s.db, UserResource, query)
}

func (s *UserService) CreateUser(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hashed, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hashed,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, userWriteError(err, "Failed to create user")
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userId string) (*models.User, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		// a malformed id cannot name an existing user
		return nil, errors.NewNotFoundError()
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("id = ?", userUUID).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError()
		}
		return nil, errors.NewInternalServerError(err, "Failed to get user")
	}

	return &user, nil
}

// UpdateUser applies the non-empty fields of req.
func (s *UserService) UpdateUser(ctx context.Context, userId string, req *models.UserUpdateRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	if present(req.Username) && *req.Username != user.Username {
		if err := s.ensureUsernameFree(ctx, *req.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *req.Username
	}
	if present(req.Name) {
		user.Name = *req.Name
	}
	if present(req.Password) {
		hashed, err := pkg.HashPassword(*req.Password)
		if err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to hash password")
		}
		user.PasswordHash = hashed
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, userWriteError(err, "Failed to update user")
	}

	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userId string, req *models.PasswordChangeRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	user, err := s.GetUser(ctx, userId)
	if err != nil {
		return err
	}

	hashed, err := pkg.HashPassword(req.Password)
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to hash password")
	}

	err = s.db.WithContext(ctx).Model(user).Update("password", hashed).Error
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to change password")
	}

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userId string) error {
	user, err := s.GetUser(ctx, userId)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(user).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete user")
	}

	return nil
}

// EnsureUser creates the user unless one with the same username exists.
// An existing user is returned unchanged.
func (s *UserService) EnsureUser(ctx context.Context, req *models.UserCreateRequest) (*models.User, bool, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, errors.NewInternalServerError(err, "Failed to get user")
	}

	user, err := s.CreateUser(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string, except uuid.UUID) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, except).
		Count(&count).Error
	if err != nil {
		return errors.NewInternalServerError(err, "Failed to check username")
	}
	if count > 0 {
		return errors.NewBadRequestError("Username already exists")
	}
	return nil
}

// userWriteError maps a failed user write. The unique index on username
// rejects a concurrent write that passed ensureUsernameFree.
func userWriteError(err error, message string) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.NewBadRequestError("Username already exists")
	}
	return errors.NewInternalServerError(err, message)
}

func present(s *string) bool {
	return s != nil && *s != ""
}

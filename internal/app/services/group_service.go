package services

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/safatanc/admin-console/internal/app/errors"
	"github.com/safatanc/admin-console/internal/app/models"
	"github.com/safatanc/admin-console/internal/infrastructures"
	"gorm.io/gorm"
)

type GroupService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewGroupService(db *gorm.DB, validator *infrastructures.Validator) *GroupService {
	return &GroupService{
		db:        db,
		validator: validator,
	}
}

func (s *GroupService) ListGroups(ctx context.Context, query models.ListQuery) (*models.ListResponse[models.Group], error) {
	return List[models.Group](ctx, s.db, GroupResource, query)
}

func (s *GroupService) CreateGroup(ctx context.Context, req *models.GroupCreateRequest) (*models.Group, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	group := &models.Group{
		Name: req.Name,
	}

	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create group")
	}

	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, groupId string) (*models.Group, error) {
	groupUUID, err := uuid.Parse(groupId)
	if err != nil {
		return nil, errors.NewNotFoundError()
	}

	var group models.Group
	err = s.db.WithContext(ctx).Where("id = ?", groupUUID).First(&group).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError()
		}
		return nil, errors.NewInternalServerError(err, "Failed to get group")
	}

	return &group, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, groupId string, req *models.GroupUpdateRequest) (*models.Group, error) {
	group, err := s.GetGroup(ctx, groupId)
	if err != nil {
		return nil, err
	}

	if present(req.Name) {
		group.Name = *req.Name
	}

	if err := s.db.WithContext(ctx).Save(group).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update group")
	}

	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupId string) error {
	group, err := s.GetGroup(ctx, groupId)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(group).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete group")
	}

	return nil
}

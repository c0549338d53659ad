package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/logger"
)

// ParentService handles parent profile and moderation operations
type ParentService struct {
	parents repositories.ParentStore

	newID func() string
}

// NewParentService creates a new parent service instance
func NewParentService(parents repositories.ParentStore) *ParentService {
	return &ParentService{
		parents: parents,
		newID:   func() string { return uuid.New().String() },
	}
}

// GetParent retrieves a parent profile with its children
func (s *ParentService) GetParent(ctx context.Context, id string) (*models.Parent, error) {
	return s.parents.GetByID(ctx, id)
}

// UpdateProfile updates a parent's own name fields
func (s *ParentService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateParentProfileRequest) (*models.Parent, error) {
	parent, err := s.parents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parent.FirstName = req.FirstName
	parent.LastName = req.LastName

	if err := s.parents.Update(ctx, parent); err != nil {
		return nil, err
	}

	return s.parents.GetByID(ctx, id)
}

// UpdateChildren replaces the parent's children list, keeping the given order
func (s *ParentService) UpdateChildren(ctx context.Context, id string, req *dto.UpdateChildrenRequest) (*models.Parent, error) {
	if _, err := s.parents.GetByID(ctx, id); err != nil {
		return nil, err
	}

	children := make([]models.Child, 0, len(req.Children))
	for _, child := range req.Children {
		children = append(children, models.Child{
			ID:       s.newID(),
			ParentID: id,
			Name:     child.Name,
			Age:      child.Age,
			Grade:    child.Grade,
		})
	}

	if err := s.parents.ReplaceChildren(ctx, id, children); err != nil {
		return nil, err
	}

	return s.parents.GetByID(ctx, id)
}

// UpdateStatus applies an admin moderation decision to a parent account
func (s *ParentService) UpdateStatus(ctx context.Context, id string, status models.ParentStatus) (*models.Parent, error) {
	if err := s.parents.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	logger.Info().Str("parentId", id).Str("status", string(status)).Msg("Parent status updated")

	return s.parents.GetByID(ctx, id)
}

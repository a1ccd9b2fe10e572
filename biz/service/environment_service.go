package service

import (
	"context"
	"errors"

	"github.com/atarrias/envault/biz/dal/model"
	"github.com/atarrias/envault/pkg/common"
	"github.com/atarrias/envault/pkg/validator"
	"gorm.io/gorm"
)

// CreateEnvironmentRequest carries the client-supplied fields for a new
// environment.
type CreateEnvironmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateEnvironmentRequest carries the updatable fields of an environment.
// The name is immutable through updates; only the description can change.
// A nil Description keeps the current value.
type UpdateEnvironmentRequest struct {
	Description *string `json:"description"`
}

// EnvironmentPage is one page of environments plus pagination totals.
type EnvironmentPage struct {
	TotalItems   int64               `json:"total_items"`
	TotalPages   int                 `json:"total_pages"`
	CurrentPage  int                 `json:"current_page"`
	Environments []model.Environment `json:"environments"`
}

// ListEnvironments returns a page of environments ordered by name.
func (s *Service) ListEnvironments(ctx context.Context, page common.PageParams) (*EnvironmentPage, error) {
	entities, total, err := s.logic.environmentDAO.List(ctx, s.logic.db, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []model.Environment{}
	}
	return &EnvironmentPage{
		TotalItems:   total,
		TotalPages:   common.TotalPages(total, page.Limit),
		CurrentPage:  page.Page,
		Environments: entities,
	}, nil
}

// CreateEnvironment normalizes the name and persists a new environment.
// The unique index is the duplicate detector; a case-variant of an existing
// name collides because both normalize to the same stored form.
func (s *Service) CreateEnvironment(ctx context.Context, req CreateEnvironmentRequest) (*model.Environment, error) {
	name := validator.NormalizeEnvironmentName(req.Name)
	if err := validator.ValidateName(name); err != nil {
		return nil, err
	}

	entity := &model.Environment{
		Name:        name,
		Description: req.Description,
	}
	if err := s.logic.environmentDAO.Create(ctx, s.logic.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEnvironmentExists
		}
		return nil, err
	}
	return entity, nil
}

// GetEnvironment looks an environment up by name, case-insensitively.
func (s *Service) GetEnvironment(ctx context.Context, name string) (*model.Environment, error) {
	normalized := validator.NormalizeEnvironmentName(name)
	if normalized == "" {
		return nil, ErrEnvironmentNotFound
	}

	entity, err := s.logic.environmentDAO.GetByName(ctx, s.logic.db, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		return nil, err
	}
	return entity, nil
}

// UpdateEnvironment replaces the environment's description. Both full and
// partial updates share this path: a request without a description keeps
// the current one, and the name never changes.
func (s *Service) UpdateEnvironment(ctx context.Context, name string, req UpdateEnvironmentRequest) (*model.Environment, error) {
	entity, err := s.GetEnvironment(ctx, name)
	if err != nil {
		return nil, err
	}

	if req.Description == nil {
		return entity, nil
	}

	if err := s.logic.environmentDAO.UpdateDescription(ctx, s.logic.db, entity.Name, *req.Description); err != nil {
		return nil, err
	}
	// Re-read so the response carries the stored timestamps, not the
	// pre-update ones held by the in-memory struct.
	return s.logic.environmentDAO.GetByName(ctx, s.logic.db, entity.Name)
}

// DeleteEnvironment removes an environment and, transitively, every
// variable it owns. Irreversible.
func (s *Service) DeleteEnvironment(ctx context.Context, name string) error {
	entity, err := s.GetEnvironment(ctx, name)
	if err != nil {
		return err
	}
	return s.logic.environmentDAO.Delete(ctx, s.logic.db, entity)
}

package service

import (
	"context"
	"errors"

	"github.com/atarrias/envault/biz/dal/model"
	"github.com/atarrias/envault/pkg/common"
	"github.com/atarrias/envault/pkg/validator"
	"gorm.io/gorm"
)

// CreateVariableRequest carries the client-supplied fields for a new
// variable.
type CreateVariableRequest struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
	IsSensitive bool   `json:"is_sensitive"`
}

// UpdateVariableRequest carries the updatable fields of a variable. Nil
// fields keep their current value, which makes PUT a merge rather than a
// replace: an omitted field defaults to what is stored, it is not cleared.
// That contract is intentional. PATCH uses the same semantics with only
// the supplied fields present.
type UpdateVariableRequest struct {
	Name        *string `json:"name"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
	IsSensitive *bool   `json:"is_sensitive"`
}

// VariablePage is one page of an environment's variables plus totals.
type VariablePage struct {
	EnvironmentName string           `json:"environment_name"`
	TotalItems      int64            `json:"total_items"`
	TotalPages      int              `json:"total_pages"`
	CurrentPage     int              `json:"current_page"`
	Variables       []model.Variable `json:"variables"`
}

// ListVariables returns a page of the named environment's variables
// ordered by name.
func (s *Service) ListVariables(ctx context.Context, envName string, page common.PageParams) (*VariablePage, error) {
	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}

	entities, total, err := s.logic.variableDAO.List(ctx, s.logic.db, env.ID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []model.Variable{}
	}
	return &VariablePage{
		EnvironmentName: env.Name,
		TotalItems:      total,
		TotalPages:      common.TotalPages(total, page.Limit),
		CurrentPage:     page.Page,
		Variables:       entities,
	}, nil
}

// CreateVariable persists a new variable under the named environment. The
// composite unique index on (environment_id, name) is the duplicate
// detector.
func (s *Service) CreateVariable(ctx context.Context, envName string, req CreateVariableRequest) (*model.Variable, error) {
	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}

	if err := validator.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if req.Value == "" {
		return nil, ErrValueRequired
	}

	entity := &model.Variable{
		EnvironmentID: env.ID,
		Name:          req.Name,
		Value:         req.Value,
		Description:   req.Description,
		IsSensitive:   req.IsSensitive,
	}
	if err := s.logic.variableDAO.Create(ctx, s.logic.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVariableExists
		}
		return nil, err
	}
	return entity, nil
}

// GetVariable fetches a variable by exact name within the named
// environment.
func (s *Service) GetVariable(ctx context.Context, envName, varName string) (*model.Variable, error) {
	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}
	return s.getVariableIn(ctx, env, varName)
}

func (s *Service) getVariableIn(ctx context.Context, env *model.Environment, varName string) (*model.Variable, error) {
	entity, err := s.logic.variableDAO.GetByName(ctx, s.logic.db, env.ID, varName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariableNotFound
		}
		return nil, err
	}
	return entity, nil
}

// UpdateVariable merges the supplied fields into the stored variable and
// writes the result. Fields absent from the request keep their current
// values; present fields are applied even when they carry zero values
// (empty description, is_sensitive false).
func (s *Service) UpdateVariable(ctx context.Context, envName, varName string, req UpdateVariableRequest) (*model.Variable, error) {
	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}
	entity, err := s.getVariableIn(ctx, env, varName)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validator.ValidateName(*req.Name); err != nil {
			return nil, err
		}
		entity.Name = *req.Name
	}
	if req.Value != nil {
		if *req.Value == "" {
			return nil, ErrValueRequired
		}
		entity.Value = *req.Value
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.IsSensitive != nil {
		entity.IsSensitive = *req.IsSensitive
	}

	if err := s.logic.variableDAO.Update(ctx, s.logic.db, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrVariableExists
		}
		return nil, err
	}
	// Re-read so the response carries the stored timestamps, not the
	// pre-update ones held by the in-memory struct.
	return s.getVariableIn(ctx, env, entity.Name)
}

// DeleteVariable removes a single variable from the named environment.
func (s *Service) DeleteVariable(ctx context.Context, envName, varName string) error {
	entity, err := s.GetVariable(ctx, envName, varName)
	if err != nil {
		return err
	}
	return s.logic.variableDAO.Delete(ctx, s.logic.db, entity.ID)
}

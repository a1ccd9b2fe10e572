package db

import (
	"context"
	"errors"

	"github.com/atarrias/envault/biz/dal/model"
	"gorm.io/gorm"
)

// EnvironmentDAO wraps basic CRUD operations for environment entities.
// Callers pass names already normalized; no casing logic lives here.
type EnvironmentDAO struct{}

func NewEnvironmentDAO() *EnvironmentDAO { return &EnvironmentDAO{} }

// Create persists a new environment. A duplicate name surfaces as
// gorm.ErrDuplicatedKey via the unique index on environments.name.
func (dao *EnvironmentDAO) Create(ctx context.Context, db *gorm.DB, entity *model.Environment) error {
	if entity == nil {
		return errors.New("environment must not be nil")
	}
	if entity.Name == "" {
		return errors.New("name is required")
	}
	return db.WithContext(ctx).Create(entity).Error
}

// UpdateDescription replaces the description of the environment with the
// given name. The name itself is immutable through update endpoints to keep
// resource URLs stable.
func (dao *EnvironmentDAO) UpdateDescription(ctx context.Context, db *gorm.DB, name, description string) error {
	return db.WithContext(ctx).
		Model(&model.Environment{}).
		Where("name = ?", name).
		Update("description", description).
		Error
}

// Delete removes the environment and all variables it owns in a single
// transaction, so the cascade is atomic from the caller's point of view.
func (dao *EnvironmentDAO) Delete(ctx context.Context, db *gorm.DB, entity *model.Environment) error {
	if entity == nil {
		return errors.New("environment must not be nil")
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("environment_id = ?", entity.ID).Delete(&model.Variable{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Environment{}, entity.ID).Error
	})
}

// GetByName fetches a single environment by its (normalized) name.
func (dao *EnvironmentDAO) GetByName(ctx context.Context, db *gorm.DB, name string) (*model.Environment, error) {
	var entity model.Environment
	if err := db.WithContext(ctx).
		Where("name = ?", name).
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// List returns a page of environments ordered by name, plus the total row
// count for pagination arithmetic.
func (dao *EnvironmentDAO) List(ctx context.Context, db *gorm.DB, offset, limit int) ([]model.Environment, int64, error) {
	var total int64
	if err := db.WithContext(ctx).
		Model(&model.Environment{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []model.Environment
	if err := db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&entities).Error; err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

package db

import (
	"context"
	"errors"

	"github.com/atarrias/envault/biz/dal/model"
	"gorm.io/gorm"
)

// VariableDAO wraps basic CRUD operations for variable entities. Variable
// names are matched exactly within their owning environment.
type VariableDAO struct{}

func NewVariableDAO() *VariableDAO { return &VariableDAO{} }

// Create persists a new variable. A duplicate (environment_id, name) pair
// surfaces as gorm.ErrDuplicatedKey via the composite unique index.
func (dao *VariableDAO) Create(ctx context.Context, db *gorm.DB, entity *model.Variable) error {
	if entity == nil {
		return errors.New("variable must not be nil")
	}
	if entity.Name == "" {
		return errors.New("name is required")
	}
	if entity.EnvironmentID == 0 {
		return errors.New("environment_id is required")
	}
	return db.WithContext(ctx).Create(entity).Error
}

// Update writes the mutable columns of an existing variable. The entity
// carries the full merged state; selecting the columns explicitly makes
// zero values (empty description, is_sensitive false) stick.
func (dao *VariableDAO) Update(ctx context.Context, db *gorm.DB, entity *model.Variable) error {
	if entity == nil {
		return errors.New("variable must not be nil")
	}
	if entity.ID == 0 {
		return errors.New("variable id is required")
	}
	return db.WithContext(ctx).
		Model(&model.Variable{}).
		Where("id = ?", entity.ID).
		Select("name", "value", "description", "is_sensitive").
		Updates(entity).
		Error
}

// Delete removes a single variable row. No cascading effects.
func (dao *VariableDAO) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&model.Variable{}, id).Error
}

// GetByName fetches a variable by exact name within an environment.
func (dao *VariableDAO) GetByName(ctx context.Context, db *gorm.DB, environmentID uint, name string) (*model.Variable, error) {
	var entity model.Variable
	if err := db.WithContext(ctx).
		Where("environment_id = ? AND name = ?", environmentID, name).
		First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// List returns a page of an environment's variables ordered by name, plus
// the total count scoped to that environment.
func (dao *VariableDAO) List(ctx context.Context, db *gorm.DB, environmentID uint, offset, limit int) ([]model.Variable, int64, error) {
	var total int64
	if err := db.WithContext(ctx).
		Model(&model.Variable{}).
		Where("environment_id = ?", environmentID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entities []model.Variable
	if err := db.WithContext(ctx).
		Where("environment_id = ?", environmentID).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&entities).Error; err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// ListAll returns every variable owned by an environment, unpaginated. Used
// by the flattened dump.
func (dao *VariableDAO) ListAll(ctx context.Context, db *gorm.DB, environmentID uint) ([]model.Variable, error) {
	var entities []model.Variable
	if err := db.WithContext(ctx).
		Where("environment_id = ?", environmentID).
		Order("name ASC").
		Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// CountByEnvironment returns the number of variables owned by an
// environment.
func (dao *VariableDAO) CountByEnvironment(ctx context.Context, db *gorm.DB, environmentID uint) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.Variable{}).
		Where("environment_id = ?", environmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

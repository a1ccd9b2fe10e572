package service

import (
	"errors"

	"github.com/atarrias/envault/biz/dal/db"
	"github.com/atarrias/envault/pkg/storage"
	"github.com/atarrias/envault/pkg/validator"
	"gorm.io/gorm"
)

var (
	ErrEnvironmentNotFound = errors.New("environment not found")
	ErrEnvironmentExists   = errors.New("environment name already exists")
	ErrVariableNotFound    = errors.New("variable not found")
	ErrVariableExists      = errors.New("variable name already exists in this environment")
	ErrValueRequired       = errors.New("value is required")
)

// Logic contains business rules on top of data persistence.
type Logic struct {
	db             *gorm.DB
	environmentDAO *db.EnvironmentDAO
	variableDAO    *db.VariableDAO
}

func NewLogic(dbConn *gorm.DB) *Logic {
	return &Logic{
		db:             dbConn,
		environmentDAO: db.NewEnvironmentDAO(),
		variableDAO:    db.NewVariableDAO(),
	}
}

// Service orchestrates environment and variable operations using Logic.
// The storage backend receives exported configuration snapshots; it may be
// nil when exports are not configured.
type Service struct {
	logic *Logic
	store storage.Storage
}

func NewService(dbConn *gorm.DB, store storage.Storage) *Service {
	return &Service{
		logic: NewLogic(dbConn),
		store: store,
	}
}

// IsValidation reports whether err belongs to the validation taxonomy
// (missing required field, length bound, uniqueness violation). Handlers
// map these to 400; not-found sentinels map to 404; everything else is 500.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEnvironmentExists) ||
		errors.Is(err, ErrVariableExists) ||
		errors.Is(err, ErrValueRequired) ||
		errors.Is(err, validator.ErrNameRequired) ||
		errors.Is(err, validator.ErrNameTooLong) ||
		errors.Is(err, validator.ErrNameInvalid)
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEnvironmentNotFound) ||
		errors.Is(err, ErrVariableNotFound)
}

package db

import (
	"context"
	"testing"

	"github.com/atarrias/envault/biz/dal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Environment{},
		&model.Variable{},
	); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	return db
}

// CleanupTestDB closes the database connection.
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close DB: %v", err)
	}
}

// CreateTestEnvironment creates an environment with default values. The
// name is stored as given; pass it upper-cased where normalization matters.
func CreateTestEnvironment(t *testing.T, db *gorm.DB, name string) *model.Environment {
	t.Helper()
	dao := NewEnvironmentDAO()
	env := &model.Environment{
		Name:        name,
		Description: "Test environment",
	}
	if err := dao.Create(context.Background(), db, env); err != nil {
		t.Fatalf("Failed to create test environment: %v", err)
	}
	return env
}

// CreateTestVariable creates a variable under the given environment.
func CreateTestVariable(t *testing.T, db *gorm.DB, environmentID uint, name, value string) *model.Variable {
	t.Helper()
	dao := NewVariableDAO()
	v := &model.Variable{
		EnvironmentID: environmentID,
		Name:          name,
		Value:         value,
		Description:   "Test variable",
	}
	if err := dao.Create(context.Background(), db, v); err != nil {
		t.Fatalf("Failed to create test variable: %v", err)
	}
	return v
}

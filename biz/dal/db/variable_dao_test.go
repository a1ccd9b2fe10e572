package db

import (
	"context"
	"errors"
	"testing"

	"github.com/atarrias/envault/biz/dal/model"
	"gorm.io/gorm"
)

func TestVariableDAO_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewVariableDAO()
	ctx := context.Background()

	env := CreateTestEnvironment(t, db, "PROD")
	other := CreateTestEnvironment(t, db, "STAGING")

	t.Run("Success", func(t *testing.T) {
		v := &model.Variable{
			EnvironmentID: env.ID,
			Name:          "DB_URL",
			Value:         "postgres://prod",
			IsSensitive:   true,
		}
		if err := dao.Create(ctx, db, v); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if v.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}
	})

	t.Run("SameNameDifferentEnvironment", func(t *testing.T) {
		v := &model.Variable{
			EnvironmentID: other.ID,
			Name:          "DB_URL",
			Value:         "postgres://staging",
		}
		if err := dao.Create(ctx, db, v); err != nil {
			t.Fatalf("Create failed for different environment: %v", err)
		}
	})

	t.Run("DuplicateWithinEnvironment", func(t *testing.T) {
		v := &model.Variable{
			EnvironmentID: env.ID,
			Name:          "DB_URL",
			Value:         "postgres://again",
		}
		err := dao.Create(ctx, db, v)
		if err == nil {
			t.Fatal("Expected error for duplicate (environment, name) pair")
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("Expected ErrDuplicatedKey, got: %v", err)
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		if err := dao.Create(ctx, db, nil); err == nil {
			t.Error("Expected error for nil entity")
		}
	})

	t.Run("MissingEnvironment", func(t *testing.T) {
		v := &model.Variable{Name: "ORPHAN", Value: "x"}
		if err := dao.Create(ctx, db, v); err == nil {
			t.Error("Expected error for missing environment_id")
		}
	})
}

func TestVariableDAO_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewVariableDAO()
	ctx := context.Background()

	env := CreateTestEnvironment(t, db, "PROD")

	t.Run("WritesZeroValues", func(t *testing.T) {
		v := &model.Variable{
			EnvironmentID: env.ID,
			Name:          "FEATURE_FLAG",
			Value:         "on",
			Description:   "temporary",
			IsSensitive:   true,
		}
		if err := dao.Create(ctx, db, v); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		v.Description = ""
		v.IsSensitive = false
		v.Value = "off"
		if err := dao.Update(ctx, db, v); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := dao.GetByName(ctx, db, env.ID, "FEATURE_FLAG")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if found.Value != "off" {
			t.Errorf("Expected value off, got %q", found.Value)
		}
		if found.Description != "" {
			t.Errorf("Expected cleared description, got %q", found.Description)
		}
		if found.IsSensitive {
			t.Error("Expected is_sensitive false after update")
		}
	})

	t.Run("Rename", func(t *testing.T) {
		v := CreateTestVariable(t, db, env.ID, "OLD_NAME", "v")
		v.Name = "NEW_NAME"
		if err := dao.Update(ctx, db, v); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if _, err := dao.GetByName(ctx, db, env.ID, "OLD_NAME"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected old name gone, got: %v", err)
		}
		if _, err := dao.GetByName(ctx, db, env.ID, "NEW_NAME"); err != nil {
			t.Errorf("Expected new name present, got: %v", err)
		}
	})

	t.Run("RenameToExistingName", func(t *testing.T) {
		CreateTestVariable(t, db, env.ID, "TAKEN", "v1")
		v := CreateTestVariable(t, db, env.ID, "FREE", "v2")

		v.Name = "TAKEN"
		err := dao.Update(ctx, db, v)
		if err == nil {
			t.Fatal("Expected error renaming onto an existing name")
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("Expected ErrDuplicatedKey, got: %v", err)
		}
	})

	t.Run("MissingID", func(t *testing.T) {
		if err := dao.Update(ctx, db, &model.Variable{Name: "X", Value: "y"}); err == nil {
			t.Error("Expected error for missing id")
		}
	})
}

func TestVariableDAO_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewVariableDAO()
	ctx := context.Background()

	env := CreateTestEnvironment(t, db, "PROD")
	v := CreateTestVariable(t, db, env.ID, "DOOMED", "x")
	CreateTestVariable(t, db, env.ID, "SURVIVOR", "y")

	if err := dao.Delete(ctx, db, v.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := dao.GetByName(ctx, db, env.ID, "DOOMED"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got: %v", err)
	}
	if _, err := dao.GetByName(ctx, db, env.ID, "SURVIVOR"); err != nil {
		t.Errorf("Sibling variable should survive, got: %v", err)
	}
}

func TestVariableDAO_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewVariableDAO()
	ctx := context.Background()

	env := CreateTestEnvironment(t, db, "PROD")
	other := CreateTestEnvironment(t, db, "STAGING")
	for _, name := range []string{"ZULU", "ALPHA", "MIKE"} {
		CreateTestVariable(t, db, env.ID, name, "v")
	}
	CreateTestVariable(t, db, other.ID, "OTHER", "v")

	t.Run("ScopedAndOrdered", func(t *testing.T) {
		vars, total, err := dao.List(ctx, db, env.ID, 0, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 {
			t.Errorf("Expected total 3, got %d", total)
		}
		want := []string{"ALPHA", "MIKE", "ZULU"}
		if len(vars) != len(want) {
			t.Fatalf("Expected %d variables, got %d", len(want), len(vars))
		}
		for i, name := range want {
			if vars[i].Name != name {
				t.Errorf("Position %d: expected %s, got %s", i, name, vars[i].Name)
			}
		}
	})

	t.Run("ListAll", func(t *testing.T) {
		vars, err := dao.ListAll(ctx, db, env.ID)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(vars) != 3 {
			t.Errorf("Expected 3 variables, got %d", len(vars))
		}
	})

	t.Run("EmptyEnvironment", func(t *testing.T) {
		empty := CreateTestEnvironment(t, db, "EMPTY")
		vars, total, err := dao.List(ctx, db, empty.ID, 0, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 0 || len(vars) != 0 {
			t.Errorf("Expected empty page, got total=%d len=%d", total, len(vars))
		}
	})
}

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/atarrias/envault/biz/dal/model"
	"gorm.io/gorm"
)

func TestEnvironmentDAO_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewEnvironmentDAO()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		env := &model.Environment{
			Name:        "PRODUCTION",
			Description: "Primary deployment target",
		}

		err := dao.Create(ctx, db, env)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if env.ID == 0 {
			t.Error("Expected ID to be set after creation")
		}

		found, err := dao.GetByName(ctx, db, "PRODUCTION")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if found.Description != "Primary deployment target" {
			t.Errorf("Unexpected description: %q", found.Description)
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		err := dao.Create(ctx, db, nil)
		if err == nil {
			t.Error("Expected error for nil entity")
		}
	})

	t.Run("EmptyName", func(t *testing.T) {
		err := dao.Create(ctx, db, &model.Environment{Description: "no name"})
		if err == nil {
			t.Error("Expected error for empty name")
		}
	})

	t.Run("DuplicateName", func(t *testing.T) {
		if err := dao.Create(ctx, db, &model.Environment{Name: "STAGING"}); err != nil {
			t.Fatalf("First create failed: %v", err)
		}

		err := dao.Create(ctx, db, &model.Environment{Name: "STAGING"})
		if err == nil {
			t.Fatal("Expected error for duplicate name")
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Errorf("Expected ErrDuplicatedKey, got: %v", err)
		}
	})
}

func TestEnvironmentDAO_UpdateDescription(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewEnvironmentDAO()
	ctx := context.Background()

	CreateTestEnvironment(t, db, "QA")

	t.Run("Success", func(t *testing.T) {
		if err := dao.UpdateDescription(ctx, db, "QA", "Updated description"); err != nil {
			t.Fatalf("UpdateDescription failed: %v", err)
		}

		found, err := dao.GetByName(ctx, db, "QA")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if found.Description != "Updated description" {
			t.Errorf("Expected updated description, got %q", found.Description)
		}
		if found.Name != "QA" {
			t.Errorf("Name must not change on update, got %q", found.Name)
		}
	})

	t.Run("ClearDescription", func(t *testing.T) {
		if err := dao.UpdateDescription(ctx, db, "QA", ""); err != nil {
			t.Fatalf("UpdateDescription failed: %v", err)
		}
		found, err := dao.GetByName(ctx, db, "QA")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if found.Description != "" {
			t.Errorf("Expected empty description, got %q", found.Description)
		}
	})

	t.Run("NonExistent", func(t *testing.T) {
		// 0 rows affected, no error
		if err := dao.UpdateDescription(ctx, db, "MISSING", "x"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestEnvironmentDAO_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewEnvironmentDAO()
	varDAO := NewVariableDAO()
	ctx := context.Background()

	t.Run("CascadesToVariables", func(t *testing.T) {
		env := CreateTestEnvironment(t, db, "DOOMED")
		CreateTestVariable(t, db, env.ID, "DB_URL", "postgres://doomed")
		CreateTestVariable(t, db, env.ID, "API_KEY", "abc123")
		CreateTestVariable(t, db, env.ID, "TIMEOUT", "30")

		if err := dao.Delete(ctx, db, env); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		if _, err := dao.GetByName(ctx, db, "DOOMED"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound for deleted environment, got: %v", err)
		}

		count, err := varDAO.CountByEnvironment(ctx, db, env.ID)
		if err != nil {
			t.Fatalf("CountByEnvironment failed: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected 0 remaining variables, got %d", count)
		}

		if _, err := varDAO.GetByName(ctx, db, env.ID, "DB_URL"); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound for cascaded variable, got: %v", err)
		}
	})

	t.Run("LeavesOtherEnvironmentsAlone", func(t *testing.T) {
		keep := CreateTestEnvironment(t, db, "KEEP")
		CreateTestVariable(t, db, keep.ID, "DB_URL", "postgres://keep")
		gone := CreateTestEnvironment(t, db, "GONE")
		CreateTestVariable(t, db, gone.ID, "DB_URL", "postgres://gone")

		if err := dao.Delete(ctx, db, gone); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		v, err := varDAO.GetByName(ctx, db, keep.ID, "DB_URL")
		if err != nil {
			t.Fatalf("Surviving variable lookup failed: %v", err)
		}
		if v.Value != "postgres://keep" {
			t.Errorf("Unexpected value: %q", v.Value)
		}
	})

	t.Run("NilEntity", func(t *testing.T) {
		if err := dao.Delete(ctx, db, nil); err == nil {
			t.Error("Expected error for nil entity")
		}
	})
}

func TestEnvironmentDAO_GetByName(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewEnvironmentDAO()
	ctx := context.Background()

	CreateTestEnvironment(t, db, "PROD")

	t.Run("Success", func(t *testing.T) {
		found, err := dao.GetByName(ctx, db, "PROD")
		if err != nil {
			t.Fatalf("GetByName failed: %v", err)
		}
		if found.Name != "PROD" {
			t.Errorf("Expected name PROD, got %q", found.Name)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := dao.GetByName(ctx, db, "NOPE")
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got: %v", err)
		}
	})
}

func TestEnvironmentDAO_List(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewEnvironmentDAO()
	ctx := context.Background()

	for _, name := range []string{"CHARLIE", "ALPHA", "BRAVO"} {
		CreateTestEnvironment(t, db, name)
	}

	t.Run("OrderedByName", func(t *testing.T) {
		envs, total, err := dao.List(ctx, db, 0, 10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 {
			t.Errorf("Expected total 3, got %d", total)
		}
		if len(envs) != 3 {
			t.Fatalf("Expected 3 environments, got %d", len(envs))
		}
		want := []string{"ALPHA", "BRAVO", "CHARLIE"}
		for i, name := range want {
			if envs[i].Name != name {
				t.Errorf("Position %d: expected %s, got %s", i, name, envs[i].Name)
			}
		}
	})

	t.Run("Paged", func(t *testing.T) {
		envs, total, err := dao.List(ctx, db, 2, 2)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 3 {
			t.Errorf("Expected total 3, got %d", total)
		}
		if len(envs) != 1 {
			t.Fatalf("Expected 1 environment on second page, got %d", len(envs))
		}
		if envs[0].Name != "CHARLIE" {
			t.Errorf("Expected CHARLIE, got %s", envs[0].Name)
		}
	})
}

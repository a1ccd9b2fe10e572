package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrStorageDisabled is returned when an export is requested but no
// storage backend was configured.
var ErrStorageDisabled = errors.New("snapshot storage is not configured")

// FlattenEnvironment returns all variables of the named environment as a
// flat name→value object. Metadata (description, sensitivity flag,
// timestamps) is discarded; this is the bulk-consumption read used by
// deployment tooling to hydrate runtime configuration.
func (s *Service) FlattenEnvironment(ctx context.Context, envName string) (map[string]string, error) {
	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}

	entities, err := s.logic.variableDAO.ListAll(ctx, s.logic.db, env.ID)
	if err != nil {
		return nil, err
	}

	flat := make(map[string]string, len(entities))
	for _, v := range entities {
		flat[v.Name] = v.Value
	}
	return flat, nil
}

// ExportResult describes where a configuration snapshot was written.
type ExportResult struct {
	EnvironmentName string `json:"environment_name"`
	Key             string `json:"key"`
	Backend         string `json:"backend"`
	VariableCount   int    `json:"variable_count"`
}

// ExportEnvironment writes the flattened dump of the named environment to
// the configured storage backend and returns the object key.
func (s *Service) ExportEnvironment(ctx context.Context, envName string) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	env, err := s.GetEnvironment(ctx, envName)
	if err != nil {
		return nil, err
	}

	flat, err := s.FlattenEnvironment(ctx, env.Name)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s/%s-%s.json",
		env.Name,
		time.Now().UTC().Format("20060102T150405Z"),
		uuid.NewString(),
	)
	if err := s.store.PutObject(ctx, key, bytes.NewReader(payload), "application/json", int64(len(payload))); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	return &ExportResult{
		EnvironmentName: env.Name,
		Key:             key,
		Backend:         s.store.Type(),
		VariableCount:   len(flat),
	}, nil
}

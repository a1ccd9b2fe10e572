package model

import "time"

// Variable is a single configuration key/value pair scoped to one
// environment. The (environment_id, name) pair is unique; the same name may
// exist under different environments. Values are stored verbatim as text.
type Variable struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	EnvironmentID uint      `gorm:"column:environment_id;not null;uniqueIndex:uk_variable_env_name,priority:1;index:idx_variable_env" json:"environment_id"`
	Name          string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_variable_env_name,priority:2" json:"name"`
	Value         string    `gorm:"column:value;type:text;not null" json:"value"`
	Description   string    `gorm:"column:description;type:varchar(512)" json:"description,omitempty"`
	// IsSensitive marks values that consumers should mask or audit. It is
	// stored and returned as-is; no masking happens here.
	IsSensitive bool `gorm:"column:is_sensitive;default:false" json:"is_sensitive"`
}

// TableName overrides gorm to use the variables table.
func (Variable) TableName() string {
	return "variables"
}

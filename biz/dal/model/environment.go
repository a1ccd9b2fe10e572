package model

import "time"

// Environment is a named namespace of configuration variables. Names are
// stored upper-cased, so lookups are case-insensitive by construction.
type Environment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Name        string     `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uk_environment_name" json:"name"`
	Description string     `gorm:"column:description;type:varchar(512)" json:"description,omitempty"`
	Variables   []Variable `gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides gorm to use the environments table.
func (Environment) TableName() string {
	return "environments"
}

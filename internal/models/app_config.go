package models

import (
	"time"
)

// AppConfig is a singleton-style key/value table; the "version" key holds
// the client-visible app version string.
type AppConfig struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (AppConfig) TableName() string {
	return "app_config"
}

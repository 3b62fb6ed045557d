package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio is a named collection of transactions owned by exactly one user.
// Only the owner may read or append to it.
type Portfolio struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID    string    `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	Name      string    `json:"name" gorm:"column:name;type:varchar(100);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for the Portfolio model
func (Portfolio) TableName() string {
	return "portfolios"
}

// BeforeCreate assigns a UUID primary key when none is set
func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Validate validates the portfolio data
func (p *Portfolio) Validate() error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

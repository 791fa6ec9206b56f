package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID        uuid.UUID  `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"admin_id"`
	AdminName      string     `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail     string     `gorm:"column:admin_email;type:varchar(255);uniqueIndex;not null" json:"admin_email"`
	AdminPassword  string     `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`
	AdminCreatedAt time.Time  `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt *time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at,omitempty"`
}

func (AdminModel) TableName() string {
	return "admins"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an organizational identity. The geography FKs are stamped onto
// every ledger fact the user submits, at write time.
type User struct {
	UserID         uuid.UUID      `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName       string         `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail      string         `gorm:"column:user_email;type:varchar(100);not null;uniqueIndex" json:"user_email"`
	UserPassword   string         `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserPhone      string         `gorm:"column:user_phone;type:varchar(20)" json:"user_phone"`
	UserRole       string         `gorm:"column:user_role;type:varchar(20);not null;default:USER" json:"user_role"`
	UserStateID    uint           `gorm:"column:user_state_id;not null;default:0;index" json:"user_state_id"`
	UserRangeID    uint           `gorm:"column:user_range_id;not null;default:0;index" json:"user_range_id"`
	UserDistrictID uint           `gorm:"column:user_district_id;not null;default:0;index" json:"user_district_id"`
	UserIsActive   bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

type TokenBlacklist struct {
	TokenBlacklistID uint           `gorm:"column:token_blacklist_id;primaryKey" json:"token_blacklist_id"`
	Token            string         `gorm:"column:token;type:text;not null;index" json:"token"`
	ExpiredAt        time.Time      `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklists"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OtpChallenge gates the month finalize. Delivery (SMS gateway) is an
// external collaborator; only issuance and verification live here.
type OtpChallenge struct {
	OtpID         uuid.UUID  `gorm:"column:otp_id;type:uuid;primaryKey" json:"otp_id"`
	OtpUserID     uuid.UUID  `gorm:"column:otp_user_id;type:uuid;not null;index" json:"otp_user_id"`
	OtpCode       string     `gorm:"column:otp_code;type:varchar(6);not null" json:"-"`
	OtpExpiresAt  time.Time  `gorm:"column:otp_expires_at;not null" json:"otp_expires_at"`
	OtpConsumedAt *time.Time `gorm:"column:otp_consumed_at" json:"otp_consumed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OtpChallenge) TableName() string {
	return "otp_challenges"
}

func (o *OtpChallenge) BeforeCreate(tx *gorm.DB) error {
	if o.OtpID == uuid.Nil {
		o.OtpID = uuid.New()
	}
	return nil
}

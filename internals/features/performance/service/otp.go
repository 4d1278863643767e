package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polstat_backend/internals/features/performance/model"
)

// OtpService gates the month finalize behind a one-time code. Delivery goes
// through the SMS gateway (external); here the code is issued, verified and,
// on success, the user's INPROGRESS rows for the month flip to SUCCESS in one
// bulk update.
type OtpService struct {
	DB     *gorm.DB
	Clock  Clock
	Bypass bool // non-production: any 6-digit code verifies
	TTL    time.Duration
}

func NewOtpService(db *gorm.DB, clock Clock, bypass bool) *OtpService {
	if clock == nil {
		clock = time.Now
	}
	return &OtpService{DB: db, Clock: clock, Bypass: bypass, TTL: 5 * time.Minute}
}

// SendOtp issues a fresh challenge and voids any pending one for the user.
func (s *OtpService) SendOtp(ctx context.Context, userID uuid.UUID) (*model.OtpChallenge, error) {
	now := s.Clock()
	code, err := randomOtpCode()
	if err != nil {
		return nil, err
	}

	challenge := model.OtpChallenge{
		OtpUserID:    userID,
		OtpCode:      code,
		OtpExpiresAt: now.Add(s.TTL),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.OtpChallenge{}).
			Where("otp_user_id = ? AND otp_consumed_at IS NULL", userID).
			Update("otp_consumed_at", now).Error; err != nil {
			return err
		}
		return tx.Create(&challenge).Error
	})
	if err != nil {
		return nil, err
	}

	// SMS dispatch is an external collaborator; the issuance is only logged.
	log.Printf("[INFO] OTP issued user=%s otp_id=%s expires=%s", userID, challenge.OtpID, challenge.OtpExpiresAt.Format(time.RFC3339))
	return &challenge, nil
}

// VerifyOtp validates the code and finalizes the current reporting month:
// every INPROGRESS row of this user for the month (and only those) becomes
// SUCCESS. Returns the number of finalized rows.
func (s *OtpService) VerifyOtp(ctx context.Context, userID uuid.UUID, code string) (int64, error) {
	if !isSixDigits(code) {
		return 0, ErrInvalidOtp
	}
	now := s.Clock()
	period := NewPeriod(s.Clock)
	db := s.DB.WithContext(ctx)

	if !s.Bypass {
		var challenge model.OtpChallenge
		err := db.Where("otp_user_id = ? AND otp_code = ? AND otp_consumed_at IS NULL AND otp_expires_at > ?",
			userID, code, now).
			Order("created_at DESC").
			First(&challenge).Error
		if err != nil {
			return 0, ErrInvalidOtp
		}
		if err := db.Model(&challenge).Update("otp_consumed_at", now).Error; err != nil {
			return 0, err
		}
	}

	res := db.Model(&model.PerformanceStatistic{}).
		Where("statistic_user_id = ? AND statistic_month_year = ? AND statistic_status = ? AND statistic_is_active = ?",
			userID, period.Current, model.StatusInProgress, true).
		Update("statistic_status", model.StatusSuccess)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func randomOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func isSixDigits(code string) bool {
	if len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

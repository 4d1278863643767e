package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/performance/dto"
	"polstat_backend/internals/features/performance/service"
	reportsService "polstat_backend/internals/features/reports/service"
	helper "polstat_backend/internals/helpers"
)

type PerformanceController struct {
	Form       *service.FormService
	Ledger     *service.LedgerService
	Otp        *service.OtpService
	Aggregator *reportsService.AggregatorService
	Clock      service.Clock
	validate   *validator.Validate
}

func NewPerformanceController(db *gorm.DB, form *service.FormService, ledger *service.LedgerService, otp *service.OtpService, clock service.Clock) *PerformanceController {
	return &PerformanceController{
		Form:       form,
		Ledger:     ledger,
		Otp:        otp,
		Aggregator: reportsService.NewAggregatorService(db),
		Clock:      clock,
		validate:   validator.New(),
	}
}

// GetPerformanceForm answers GET /performance?modulePathId=&topicPathId=.
func (ctrl *PerformanceController) GetPerformanceForm(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	modulePathID := c.QueryInt("modulePathId", -1)
	topicPathID := c.QueryInt("topicPathId", -1)
	if modulePathID < 0 || topicPathID < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "modulePathId and topicPathId are required")
	}

	form, err := ctrl.Form.GetPerformanceForm(c.UserContext(), userID, modulePathID, topicPathID)
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) || errors.Is(err, service.ErrTopicNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Performance form assembled", form)
}

// SaveStatistics answers POST /save-statistics with a per-item result list.
func (ctrl *PerformanceController) SaveStatistics(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.SaveStatisticsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	results, err := ctrl.Ledger.SaveStatistics(c.UserContext(), userID, req.PerformanceStatistics)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonInternal(c, err)
		}
	}
	return helper.JsonOK(c, "Statistics saved", fiber.Map{"items": results})
}

func (ctrl *PerformanceController) SentOtp(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	challenge, err := ctrl.Otp.SendOtp(c.UserContext(), userID)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "OTP sent", fiber.Map{
		"otp_id":     challenge.OtpID,
		"expires_at": challenge.OtpExpiresAt,
	})
}

// VerifyOtp finalizes the reporting month: all of the caller's INPROGRESS
// rows for the month flip to SUCCESS.
func (ctrl *PerformanceController) VerifyOtp(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.VerifyOtpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	finalized, err := ctrl.Otp.VerifyOtp(c.UserContext(), userID, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOtp) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Month finalized", fiber.Map{"finalized": finalized})
}

// Summary reports the caller's current-month progress per module.
func (ctrl *PerformanceController) Summary(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	period := service.NewPeriod(ctrl.Clock)
	summary, err := ctrl.Aggregator.SummaryForUser(c.UserContext(), userID, period.Current)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Summary for "+period.Current, summary)
}

// Labels lists the months where the caller has finalized data.
func (ctrl *PerformanceController) Labels(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	labels, err := ctrl.Aggregator.LabelsForUser(c.UserContext(), userID)
	if err != nil {
		return helper.JsonInternal(c, err)
	}
	return helper.JsonOK(c, "Available labels", labels)
}

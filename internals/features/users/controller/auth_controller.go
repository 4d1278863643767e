package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"polstat_backend/internals/configs"
	"polstat_backend/internals/constants"
	"polstat_backend/internals/features/users/dto"
	"polstat_backend/internals/features/users/model"
	"polstat_backend/internals/features/users/service"
	helper "polstat_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	user := model.User{
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		UserPassword:   string(hash),
		UserPhone:      req.UserPhone,
		UserRole:       constants.RoleUser,
		UserStateID:    req.UserStateID,
		UserRangeID:    req.UserRangeID,
		UserDistrictID: req.UserDistrictID,
		UserIsActive:   true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonInternal(c, err)
	}
	return helper.JsonCreated(c, "User registered", toProfile(user))
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.User
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&user, "user_email = ?", req.UserEmail).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, expiresAt, err := service.IssueToken(user, configs.JWTSecret)
	if err != nil {
		return helper.JsonInternal(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{Token: token, User: toProfile(user)})
}

// Logout blacklists the presented token until it would have expired anyway.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token_string").(string)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entry := model.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().Add(12 * time.Hour),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logged out", nil)
}

func toProfile(user model.User) dto.UserProfile {
	return dto.UserProfile{
		UserID:         user.UserID,
		UserName:       user.UserName,
		UserEmail:      user.UserEmail,
		UserPhone:      user.UserPhone,
		UserRole:       user.UserRole,
		UserStateID:    user.UserStateID,
		UserRangeID:    user.UserRangeID,
		UserDistrictID: user.UserDistrictID,
	}
}

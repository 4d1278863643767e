package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"polstat_backend/internals/features/users/model"
	helper "polstat_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.UserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.User
	if err := ctrl.DB.WithContext(c.UserContext()).
		Take(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "Profile fetched", toProfile(user))
}

// List is the admin view of reporting units, filterable down the geography.
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.User{})
	if stateID := c.QueryInt("state_id", 0); stateID > 0 {
		q = q.Where("user_state_id = ?", stateID)
	}
	if rangeID := c.QueryInt("range_id", 0); rangeID > 0 {
		q = q.Where("user_range_id = ?", rangeID)
	}
	if districtID := c.QueryInt("district_id", 0); districtID > 0 {
		q = q.Where("user_district_id = ?", districtID)
	}
	if name := c.Query("name"); name != "" {
		q = q.Where("user_name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	var users []model.User
	if err := q.Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonInternal(c, err)
	}

	profiles := make([]interface{}, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}
	return helper.JsonList(c, "Users fetched", profiles, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

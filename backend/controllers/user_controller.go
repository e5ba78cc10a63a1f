package controllers

import (
	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/payment"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Gateway payment.Gateway
}

func NewUserController(db *gorm.DB, cfg *config.Config, gateway payment.Gateway) *UserController {
	return &UserController{DB: db, Cfg: cfg, Gateway: gateway}
}

// MyProfile godoc
// @Summary Get authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/me [get]
func (uc *UserController) MyProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// MyCourses возвращает купленные курсы пользователя
func (uc *UserController) MyCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var courses []models.Course
	if err := uc.DB.
		Joins("JOIN subscriptions ON subscriptions.course_id = courses.id").
		Where("subscriptions.user_id = ?", user.ID).
		Find(&courses).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"usercourses": courses,
	})
}

type CheckoutInput struct {
	ID uint `json:"id" validate:"required"`
}

// Checkout godoc
// @Summary Create a payment order for a course
// @Tags payment
// @Accept json
// @Produce json
// @Param request body CheckoutInput true "Course to purchase"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/checkout [post]
func (uc *UserController) Checkout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.BadRequest(c, "Please Enter All Details")
	}

	var course models.Course
	if err := uc.DB.First(&course, input.ID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	if uc.isSubscribed(user.ID, course.ID) {
		return utils.Forbidden(c, "You Already Have this Course")
	}

	// Amount is in minor currency units
	order, err := uc.Gateway.CreateOrder(c.Context(), int64(course.Price)*100, "INR")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":  order,
		"course": course,
	})
}

type VerificationInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// PaymentVerification godoc
// @Summary Verify a provider-signed payment callback and grant the course
// @Tags payment
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body VerificationInput true "Provider callback fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/verification/{id} [post]
func (uc *UserController) PaymentVerification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input VerificationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.BadRequest(c, "Please Enter All Details")
	}

	if !payment.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature, uc.Cfg.RazorpaySecret) {
		return utils.BadRequest(c, "Payment Failed")
	}

	var course models.Course
	if err := uc.DB.First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		record := models.Payment{
			RazorpayOrderID:   input.RazorpayOrderID,
			RazorpayPaymentID: input.RazorpayPaymentID,
			RazorpaySignature: input.RazorpaySignature,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return err
		}

		// Single insert keyed on (user_id, course_id), so verifying the
		// same payment twice can never grant the course twice.
		sub := models.Subscription{UserID: user.ID, CourseID: course.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&sub).Error
	})
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"message": "Course Purchased Successfully",
	})
}

// GetAllUsers возвращает всех пользователей (только для администратора)
func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}

func (uc *UserController) isSubscribed(userID, courseID uint) bool {
	var count int64
	uc.DB.Model(&models.Subscription{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count)
	return count > 0
}

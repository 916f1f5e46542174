package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/discounts/dto"
	"edukasiku_backend/internals/features/discounts/model"
	"edukasiku_backend/internals/features/discounts/service"
	helper "edukasiku_backend/internals/helpers"
)

var validateDiscount = validator.New()

type DiscountCodePublicController struct {
	DB *gorm.DB
}

func NewDiscountCodePublicController(db *gorm.DB) *DiscountCodePublicController {
	return &DiscountCodePublicController{DB: db}
}

// =============================
// ✅ Validate code (checkout)
// =============================
// Response bukan envelope standar: checkout butuh shape
// {valid, discount_amount, final_amount, discount_code, message?} apa adanya.
func (ctrl *DiscountCodePublicController) Validate(c *fiber.Ctx) error {
	var body dto.ValidateDiscountRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscount.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	code := strings.ToUpper(strings.TrimSpace(body.Code))

	var dc model.DiscountCodeModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("discount_code_code = ?", code).
		First(&dc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(service.Evaluation{
				Valid:        false,
				FinalAmount:  body.Amount,
				DiscountCode: code,
				Message:      "Kode diskon tidak ditemukan",
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate discount code")
	}

	eval := service.Evaluate(dc, body.Amount, body.ProductType, body.ProductID, time.Now())
	return c.Status(fiber.StatusOK).JSON(eval)
}

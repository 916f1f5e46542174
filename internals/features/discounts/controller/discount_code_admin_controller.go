package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/discounts/dto"
	"edukasiku_backend/internals/features/discounts/model"
	helper "edukasiku_backend/internals/helpers"
)

type DiscountCodeAdminController struct {
	DB *gorm.DB
}

func NewDiscountCodeAdminController(db *gorm.DB) *DiscountCodeAdminController {
	return &DiscountCodeAdminController{DB: db}
}

// =============================
// ➕ Create discount code
// =============================
func (ctrl *DiscountCodeAdminController) Create(c *fiber.Ctx) error {
	var body dto.CreateDiscountCodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscount.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}
	if body.Type == model.DiscountTypePercent && body.Value > 100 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Percent value cannot exceed 100")
	}

	rec := model.DiscountCodeModel{
		DiscountCodeCode:         strings.ToUpper(strings.TrimSpace(body.Code)),
		DiscountCodeType:         body.Type,
		DiscountCodeValue:        body.Value,
		DiscountCodeMaxUses:      body.MaxUses,
		DiscountCodeMinAmount:    body.MinAmount,
		DiscountCodeProductTypes: pq.StringArray(body.ProductTypes),
		DiscountCodeProductID:    body.ProductID,
		DiscountCodeStartsAt:     body.StartsAt,
		DiscountCodeExpiresAt:    body.ExpiresAt,
		DiscountCodeIsActive:     true,
	}
	if body.IsActive != nil {
		rec.DiscountCodeIsActive = *body.IsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create discount code")
	}
	return helper.JsonCreated(c, "Discount code created", rec)
}

// =============================
// 📄 List discount codes
// =============================
func (ctrl *DiscountCodeAdminController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.WithContext(c.UserContext()).Model(&model.DiscountCodeModel{})
	if active := c.Query("active"); active == "true" {
		tx = tx.Where("discount_code_is_active = TRUE")
	} else if active == "false" {
		tx = tx.Where("discount_code_is_active = FALSE")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count discount codes")
	}

	var rows []model.DiscountCodeModel
	if err := tx.
		Order("discount_code_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch discount codes")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Discount codes fetched", rows, &pagination)
}

// =============================
// ✏️ Update discount code (partial)
// =============================
func (ctrl *DiscountCodeAdminController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateDiscountCodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscount.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	updates := map[string]any{}
	if body.Value != nil {
		updates["discount_code_value"] = *body.Value
	}
	if body.MaxUses != nil {
		updates["discount_code_max_uses"] = *body.MaxUses
	}
	if body.MinAmount != nil {
		updates["discount_code_min_amount"] = *body.MinAmount
	}
	if body.ExpiresAt != nil {
		updates["discount_code_expires_at"] = *body.ExpiresAt
	}
	if body.IsActive != nil {
		updates["discount_code_is_active"] = *body.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	db := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.DiscountCodeModel{}).
		Where("discount_code_id = ?", id).
		Updates(updates)
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update discount code")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Discount code not found")
	}
	return helper.JsonUpdated(c, "Discount code updated", fiber.Map{"discount_code_id": id})
}

// =============================
// 🗑️ Delete discount code (soft)
// =============================
func (ctrl *DiscountCodeAdminController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	db := ctrl.DB.WithContext(c.UserContext()).Delete(&model.DiscountCodeModel{}, "discount_code_id = ?", id)
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete discount code")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Discount code not found")
	}
	return helper.JsonDeleted(c, "Discount code deleted", fiber.Map{"discount_code_id": id})
}

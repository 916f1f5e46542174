package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/catalog/dto"
	"edukasiku_backend/internals/features/catalog/model"
	helper "edukasiku_backend/internals/helpers"
)

var validateCatalog = validator.New()

type CatalogAdminController struct {
	DB *gorm.DB
}

func NewCatalogAdminController(db *gorm.DB) *CatalogAdminController {
	return &CatalogAdminController{DB: db}
}

// =============================
// ➕ Create course
// =============================
func (ctrl *CatalogAdminController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	rec := model.CourseModel{
		CourseTitle:       body.CourseTitle,
		CourseSlug:        strings.ToLower(strings.TrimSpace(body.CourseSlug)),
		CourseSummary:     body.CourseSummary,
		CoursePrice:       body.CoursePrice,
		CourseTags:        pq.StringArray(body.CourseTags),
		CourseProductType: body.CourseProductType,
		CourseIsPublished: body.CourseIsPublished,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already used")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", rec)
}

// =============================
// ✏️ Update course (partial)
// =============================
func (ctrl *CatalogAdminController) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	updates := map[string]any{}
	if body.CourseTitle != nil {
		updates["course_title"] = *body.CourseTitle
	}
	if body.CourseSummary != nil {
		updates["course_summary"] = *body.CourseSummary
	}
	if body.CoursePrice != nil {
		updates["course_price"] = *body.CoursePrice
	}
	if body.CourseTags != nil {
		updates["course_tags"] = pq.StringArray(body.CourseTags)
	}
	if body.CourseIsPublished != nil {
		updates["course_is_published"] = *body.CourseIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	db := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModel{}).
		Where("course_id = ?", id).
		Updates(updates)
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonUpdated(c, "Course updated", fiber.Map{"course_id": id})
}

// =============================
// 🗑️ Delete course (soft)
// =============================
func (ctrl *CatalogAdminController) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	db := ctrl.DB.WithContext(c.UserContext()).Delete(&model.CourseModel{}, "course_id = ?", id)
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}

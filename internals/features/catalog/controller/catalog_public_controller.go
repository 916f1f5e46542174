package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/catalog/model"
	helper "edukasiku_backend/internals/helpers"
)

type CatalogPublicController struct {
	DB *gorm.DB
}

func NewCatalogPublicController(db *gorm.DB) *CatalogPublicController {
	return &CatalogPublicController{DB: db}
}

// =============================
// 📄 List courses (public, paginated, ?tag= & ?type=)
// =============================
func (ctrl *CatalogPublicController) GetCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.CourseModel{}).
		Where("course_is_published = TRUE")
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(course_tags)", tag)
	}
	if ptype := strings.TrimSpace(c.Query("type")); ptype != "" {
		q = q.Where("course_product_type = ?", ptype)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := q.
		Order("course_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve courses")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &p)
}

// =============================
// 🔍 Detail by slug
// =============================
func (ctrl *CatalogPublicController) GetCourseBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "slug is required")
	}

	var rec model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&rec, "course_slug = ? AND course_is_published = TRUE", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve course")
	}
	return helper.JsonOK(c, "", rec)
}

package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogModel "edukasiku_backend/internals/features/catalog/model"
	quizModel "edukasiku_backend/internals/features/quiz/quizzes/model"
	"edukasiku_backend/internals/features/search/dto"
	helper "edukasiku_backend/internals/helpers"
)

const (
	minQueryLength = 2
	perTypeLimit   = 10
	maxQueryLength = 100
)

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// normalizeQuery memangkas spasi dan memotong per rune, bukan per byte,
// supaya pattern ILIKE selalu UTF-8 valid.
func normalizeQuery(raw string) (string, bool) {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) < minQueryLength {
		return "", false
	}
	if len(runes) > maxQueryLength {
		runes = runes[:maxQueryLength]
	}
	return string(runes), true
}

// =============================
// 🔍 Search lintas konten
// =============================
// GET /api/public/search?q=...
// Hanya konten published. Hasil dikelompokkan per tipe, max 10 per tipe.
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	q, ok := normalizeQuery(c.Query("q"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query minimal 2 karakter")
	}
	pattern := "%" + q + "%"

	db := ctrl.DB.WithContext(c.UserContext())
	result := dto.SearchResultDTO{
		Query:    q,
		Courses:  []dto.SearchHit{},
		Articles: []dto.SearchHit{},
		Webinars: []dto.SearchHit{},
		Quizzes:  []dto.SearchHit{},
	}

	var courses []catalogModel.CourseModel
	if err := db.
		Where("course_is_published = TRUE").
		Where("course_title ILIKE ?", pattern).
		Order("course_created_at DESC").
		Limit(perTypeLimit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, m := range courses {
		result.Courses = append(result.Courses, dto.SearchHit{
			ID:      m.CourseID,
			Type:    m.CourseProductType,
			Title:   m.CourseTitle,
			Slug:    m.CourseSlug,
			Summary: m.CourseSummary,
		})
	}

	var articles []catalogModel.ArticleModel
	if err := db.
		Where("article_is_published = TRUE").
		Where("article_title ILIKE ?", pattern).
		Order("article_created_at DESC").
		Limit(perTypeLimit).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, m := range articles {
		result.Articles = append(result.Articles, dto.SearchHit{
			ID:      m.ArticleID,
			Type:    "article",
			Title:   m.ArticleTitle,
			Slug:    m.ArticleSlug,
			Summary: m.ArticleSummary,
		})
	}

	var webinars []catalogModel.WebinarModel
	if err := db.
		Where("webinar_is_published = TRUE").
		Where("webinar_title ILIKE ?", pattern).
		Order("webinar_start_at DESC").
		Limit(perTypeLimit).
		Find(&webinars).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, m := range webinars {
		result.Webinars = append(result.Webinars, dto.SearchHit{
			ID:      m.WebinarID,
			Type:    "webinar",
			Title:   m.WebinarTitle,
			Slug:    m.WebinarSlug,
			Summary: m.WebinarSummary,
		})
	}

	var quizzes []quizModel.QuizModel
	if err := db.
		Where("quiz_is_published = TRUE").
		Where("quiz_title ILIKE ?", pattern).
		Order("quiz_created_at DESC").
		Limit(perTypeLimit).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}
	for _, m := range quizzes {
		result.Quizzes = append(result.Quizzes, dto.SearchHit{
			ID:    m.QuizID,
			Type:  "quiz",
			Title: m.QuizTitle,
		})
	}

	result.Total = len(result.Courses) + len(result.Articles) + len(result.Webinars) + len(result.Quizzes)
	return helper.JsonOK(c, "Search results", result)
}

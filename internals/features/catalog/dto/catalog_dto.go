package dto

// ============================
// Create / Update Request DTO
// ============================

type CreateCourseRequest struct {
	CourseTitle       string   `json:"course_title" validate:"required,max=255"`
	CourseSlug        string   `json:"course_slug" validate:"required,max=255"`
	CourseSummary     *string  `json:"course_summary,omitempty"`
	CoursePrice       float64  `json:"course_price" validate:"gte=0"`
	CourseTags        []string `json:"course_tags,omitempty" validate:"omitempty,dive,required"`
	CourseProductType string   `json:"course_product_type" validate:"required,oneof=course bootcamp partnership"`
	CourseIsPublished bool     `json:"course_is_published"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string  `json:"course_title,omitempty" validate:"omitempty,max=255"`
	CourseSummary     *string  `json:"course_summary,omitempty"`
	CoursePrice       *float64 `json:"course_price,omitempty" validate:"omitempty,gte=0"`
	CourseTags        []string `json:"course_tags,omitempty" validate:"omitempty,dive,required"`
	CourseIsPublished *bool    `json:"course_is_published,omitempty"`
}

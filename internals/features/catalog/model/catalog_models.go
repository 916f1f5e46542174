package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Tipe produk yang dikenal checkout & kode diskon.
const (
	ProductTypeCourse      = "course"
	ProductTypeBootcamp    = "bootcamp"
	ProductTypeWebinar     = "webinar"
	ProductTypeArticle     = "article"
	ProductTypePartnership = "partnership"
)

type CourseModel struct {
	CourseID      string         `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	CourseTitle   string         `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseSlug    string         `gorm:"column:course_slug;type:varchar(255);not null;uniqueIndex" json:"course_slug"`
	CourseSummary *string        `gorm:"column:course_summary;type:text" json:"course_summary,omitempty"`
	CoursePrice   float64        `gorm:"column:course_price;not null;default:0" json:"course_price"`
	CourseTags    pq.StringArray `gorm:"column:course_tags;type:text[]" json:"course_tags,omitempty"`
	// course | bootcamp | partnership — bootcamp dan produk kemitraan
	// berbagi tabel karena strukturnya sama persis
	CourseProductType string `gorm:"column:course_product_type;type:varchar(20);not null;default:'course'" json:"course_product_type"`

	CourseIsPublished bool `gorm:"column:course_is_published;not null;default:false" json:"course_is_published"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "catalog_courses"
}

type ArticleModel struct {
	ArticleID      string  `gorm:"column:article_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"article_id"`
	ArticleTitle   string  `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleSlug    string  `gorm:"column:article_slug;type:varchar(255);not null;uniqueIndex" json:"article_slug"`
	ArticleSummary *string `gorm:"column:article_summary;type:text" json:"article_summary,omitempty"`

	ArticleIsPublished bool `gorm:"column:article_is_published;not null;default:false" json:"article_is_published"`

	ArticleCreatedAt time.Time      `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt time.Time      `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`
	ArticleDeletedAt gorm.DeletedAt `gorm:"column:article_deleted_at;index" json:"-"`
}

func (ArticleModel) TableName() string {
	return "catalog_articles"
}

type WebinarModel struct {
	WebinarID      string    `gorm:"column:webinar_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"webinar_id"`
	WebinarTitle   string    `gorm:"column:webinar_title;type:varchar(255);not null" json:"webinar_title"`
	WebinarSlug    string    `gorm:"column:webinar_slug;type:varchar(255);not null;uniqueIndex" json:"webinar_slug"`
	WebinarSummary *string   `gorm:"column:webinar_summary;type:text" json:"webinar_summary,omitempty"`
	WebinarPrice   float64   `gorm:"column:webinar_price;not null;default:0" json:"webinar_price"`
	WebinarStartAt time.Time `gorm:"column:webinar_start_at;not null" json:"webinar_start_at"`

	WebinarIsPublished bool `gorm:"column:webinar_is_published;not null;default:false" json:"webinar_is_published"`

	WebinarCreatedAt time.Time      `gorm:"column:webinar_created_at;autoCreateTime" json:"webinar_created_at"`
	WebinarUpdatedAt time.Time      `gorm:"column:webinar_updated_at;autoUpdateTime" json:"webinar_updated_at"`
	WebinarDeletedAt gorm.DeletedAt `gorm:"column:webinar_deleted_at;index" json:"-"`
}

func (WebinarModel) TableName() string {
	return "catalog_webinars"
}

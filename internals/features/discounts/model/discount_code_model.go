package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

type DiscountCodeModel struct {
	DiscountCodeID   string `gorm:"column:discount_code_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"discount_code_id"`
	DiscountCodeCode string `gorm:"column:discount_code_code;type:varchar(64);not null;uniqueIndex" json:"discount_code_code"`

	DiscountCodeType  string  `gorm:"column:discount_code_type;type:varchar(10);not null" json:"discount_code_type"` // percent | fixed
	DiscountCodeValue float64 `gorm:"column:discount_code_value;not null" json:"discount_code_value"`

	// 0 = tanpa batas pemakaian
	DiscountCodeMaxUses   int     `gorm:"column:discount_code_max_uses;not null;default:0" json:"discount_code_max_uses"`
	DiscountCodeUsedCount int     `gorm:"column:discount_code_used_count;not null;default:0" json:"discount_code_used_count"`
	DiscountCodeMinAmount float64 `gorm:"column:discount_code_min_amount;not null;default:0" json:"discount_code_min_amount"`

	// kosong = berlaku untuk semua tipe produk
	DiscountCodeProductTypes pq.StringArray `gorm:"column:discount_code_product_types;type:text[]" json:"discount_code_product_types,omitempty"`
	// nil = berlaku untuk produk apa pun dalam tipe tsb
	DiscountCodeProductID *string `gorm:"column:discount_code_product_id;type:uuid" json:"discount_code_product_id,omitempty"`

	DiscountCodeStartsAt  *time.Time `gorm:"column:discount_code_starts_at" json:"discount_code_starts_at,omitempty"`
	DiscountCodeExpiresAt *time.Time `gorm:"column:discount_code_expires_at" json:"discount_code_expires_at,omitempty"`

	DiscountCodeIsActive bool `gorm:"column:discount_code_is_active;not null;default:true" json:"discount_code_is_active"`

	DiscountCodeCreatedAt time.Time      `gorm:"column:discount_code_created_at;autoCreateTime" json:"discount_code_created_at"`
	DiscountCodeUpdatedAt time.Time      `gorm:"column:discount_code_updated_at;autoUpdateTime" json:"discount_code_updated_at"`
	DiscountCodeDeletedAt gorm.DeletedAt `gorm:"column:discount_code_deleted_at;index" json:"-"`
}

func (DiscountCodeModel) TableName() string {
	return "discount_codes"
}

package dto

import "time"

// ============================
// Validate Request DTO (checkout)
// ============================

type ValidateDiscountRequest struct {
	Code        string  `json:"code" validate:"required,max=64"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	ProductType string  `json:"product_type" validate:"required,oneof=course bootcamp webinar article partnership"`
	ProductID   string  `json:"product_id" validate:"required,uuid"`
}

// ============================
// Admin Create / Update DTO
// ============================

type CreateDiscountCodeRequest struct {
	Code         string     `json:"code" validate:"required,max=64"`
	Type         string     `json:"type" validate:"required,oneof=percent fixed"`
	Value        float64    `json:"value" validate:"required,gt=0"`
	MaxUses      int        `json:"max_uses" validate:"gte=0"`
	MinAmount    float64    `json:"min_amount" validate:"gte=0"`
	ProductTypes []string   `json:"product_types,omitempty" validate:"omitempty,dive,oneof=course bootcamp webinar article partnership"`
	ProductID    *string    `json:"product_id,omitempty" validate:"omitempty,uuid"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

type UpdateDiscountCodeRequest struct {
	Value     *float64   `json:"value,omitempty" validate:"omitempty,gt=0"`
	MaxUses   *int       `json:"max_uses,omitempty" validate:"omitempty,gte=0"`
	MinAmount *float64   `json:"min_amount,omitempty" validate:"omitempty,gte=0"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

package service

import (
	"math"
	"time"

	"edukasiku_backend/internals/features/discounts/model"
)

// Evaluation adalah hasil cek kode diskon terhadap satu calon transaksi.
// Shape ini yang dikembalikan endpoint validate ke checkout.
type Evaluation struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	DiscountCode   string  `json:"discount_code"`
	Message        string  `json:"message,omitempty"`
}

func invalid(code, message string, amount float64) Evaluation {
	return Evaluation{
		Valid:        false,
		FinalAmount:  amount,
		DiscountCode: code,
		Message:      message,
	}
}

// Evaluate menilai kode terhadap (amount, product_type, product_id) pada
// waktu tertentu. Pure function: seluruh matriks aturan bisa ditest tanpa
// DB.
func Evaluate(dc model.DiscountCodeModel, amount float64, productType, productID string, now time.Time) Evaluation {
	code := dc.DiscountCodeCode

	if !dc.DiscountCodeIsActive {
		return invalid(code, "Kode diskon sudah tidak aktif", amount)
	}
	if dc.DiscountCodeStartsAt != nil && now.Before(*dc.DiscountCodeStartsAt) {
		return invalid(code, "Kode diskon belum berlaku", amount)
	}
	if dc.DiscountCodeExpiresAt != nil && now.After(*dc.DiscountCodeExpiresAt) {
		return invalid(code, "Kode diskon sudah kedaluwarsa", amount)
	}
	if dc.DiscountCodeMaxUses > 0 && dc.DiscountCodeUsedCount >= dc.DiscountCodeMaxUses {
		return invalid(code, "Kuota pemakaian kode sudah habis", amount)
	}
	if amount < dc.DiscountCodeMinAmount {
		return invalid(code, "Jumlah transaksi belum memenuhi minimum", amount)
	}
	if len(dc.DiscountCodeProductTypes) > 0 && !containsString(dc.DiscountCodeProductTypes, productType) {
		return invalid(code, "Kode tidak berlaku untuk tipe produk ini", amount)
	}
	if dc.DiscountCodeProductID != nil && *dc.DiscountCodeProductID != productID {
		return invalid(code, "Kode tidak berlaku untuk produk ini", amount)
	}

	var discount float64
	switch dc.DiscountCodeType {
	case model.DiscountTypePercent:
		discount = amount * dc.DiscountCodeValue / 100
	case model.DiscountTypeFixed:
		discount = dc.DiscountCodeValue
	default:
		return invalid(code, "Tipe diskon tidak dikenal", amount)
	}
	if discount > amount {
		discount = amount
	}
	discount = round2(discount)

	return Evaluation{
		Valid:          true,
		DiscountAmount: discount,
		FinalAmount:    round2(amount - discount),
		DiscountCode:   code,
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

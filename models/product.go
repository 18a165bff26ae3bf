package models

import (
	"gorm.io/gorm"
)

const (
	CategoryMealPlan   = "meal-plan"
	CategorySupplement = "supplement"
	CategoryGuide      = "guide"
	CategoryBundle     = "bundle"
)

type Product struct {
	gorm.Model
	SKU         string   `gorm:"uniqueIndex;not null" json:"sku"`
	Name        string   `gorm:"not null;index" json:"name"`
	Description string   `gorm:"not null" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Currency    string   `gorm:"not null;default:USD" json:"currency"`
	Features    []string `gorm:"serializer:json" json:"features"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `gorm:"not null;index" json:"category"`
	Stock       int      `gorm:"not null;default:0" json:"stock"`
	IsActive    bool     `gorm:"not null;default:true;index" json:"isActive"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

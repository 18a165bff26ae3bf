package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/BakhatBug/Keto-Slim/models"

	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductFilters narrows the catalog listing. Zero values mean "no filter";
// IsActive defaults to showing active products only.
type ProductFilters struct {
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	InStock   *bool
	IsActive  *bool
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (s *ProductService) CreateProduct(product models.Product) (*models.Product, error) {
	if err := s.db.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Message: "product SKU already exists"}
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetProducts(f ProductFilters) ([]models.Product, int64, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}

	q := s.db.Model(&models.Product{}).Where("is_active = ?", active)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.InStock != nil {
		if *f.InStock {
			q = q.Where("stock > 0")
		} else {
			q = q.Where("stock = 0")
		}
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	sortBy := f.SortBy
	switch sortBy {
	case "price", "name", "stock", "created_at":
	default:
		sortBy = "created_at"
	}
	order := "desc"
	if f.SortOrder == "asc" {
		order = "asc"
	}

	var products []models.Product
	err := q.Order(fmt.Sprintf("%s %s", sortBy, order)).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, 0, err
	}

	pages := int(math.Ceil(float64(total) / float64(f.Limit)))
	return products, total, pages, nil
}

func (s *ProductService) GetProductByID(productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "product"}
		}
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies the given column updates and returns the fresh row.
func (s *ProductService) UpdateProduct(productID uint, updates map[string]interface{}) (*models.Product, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProductByID(productID)
}

// DeleteProduct deactivates the product so existing orders keep resolving.
func (s *ProductService) DeleteProduct(productID uint) error {
	res := s.db.Model(&models.Product{}).Where("id = ?", productID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "product"}
	}
	return nil
}

func (s *ProductService) HardDeleteProduct(productID uint) error {
	res := s.db.Unscoped().Delete(&models.Product{}, productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Resource: "product"}
	}
	return nil
}

// AdjustStock adds quantityChange (negative to consume) to the product's
// stock. The guard in the WHERE clause makes the adjustment atomic: two
// concurrent orders can't both take the last unit.
func (s *ProductService) AdjustStock(productID uint, quantityChange int) (*models.Product, error) {
	res := s.db.Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", productID, quantityChange).
		Update("stock", gorm.Expr("stock + ?", quantityChange))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing product from an insufficient-stock reject.
		if _, err := s.GetProductByID(productID); err != nil {
			return nil, err
		}
		return nil, &ValidationError{Message: "insufficient stock available"}
	}
	return s.GetProductByID(productID)
}

func (s *ProductService) CheckStock(productID uint, quantity int) (bool, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return false, err
	}
	return product.Stock >= quantity, nil
}

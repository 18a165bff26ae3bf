package controllers

import (
	"net/http"
	"strconv"

	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/services"
	"github.com/BakhatBug/Keto-Slim/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

type CreateProductInput struct {
	SKU         string   `json:"sku" binding:"required"`
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"required,max=2000"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Currency    string   `json:"currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD"`
	Features    []string `json:"features" binding:"max=20"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category" binding:"required,oneof=meal-plan supplement guide bundle"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	product, err := pc.products.CreateProduct(models.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Currency:    currency,
		Features:    input.Features,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Stock:       *input.Stock,
		IsActive:    true,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	filters := services.ProductFilters{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MaxPrice = &f
		}
	}
	if v := c.Query("inStock"); v != "" {
		b := v == "true"
		filters.InStock = &b
	}

	products, total, pages, err := pc.products.GetProducts(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"pages":    pages,
	})
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := pc.products.GetProductByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

type UpdateProductInput struct {
	Name        *string   `json:"name" binding:"omitempty,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Currency    *string   `json:"currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD"`
	Features    *[]string `json:"features"`
	ImageURL    *string   `json:"imageUrl"`
	Category    *string   `json:"category" binding:"omitempty,oneof=meal-plan supplement guide bundle"`
	Stock       *int      `json:"stock" binding:"omitempty,gte=0"`
	IsActive    *bool     `json:"isActive"`
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Currency != nil {
		updates["currency"] = *input.Currency
	}
	if input.Features != nil {
		updates["features"] = *input.Features
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	product, err := pc.products.UpdateProduct(id, updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.products.DeleteProduct(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deactivated"})
}

type UpdateStockInput struct {
	QuantityChange *int `json:"quantityChange" binding:"required"`
}

func (pc *ProductController) UpdateStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.products.AdjustStock(id, *input.QuantityChange)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

type UploadImageInput struct {
	Image string `json:"image" binding:"required"`
}

// UploadImage stores a base64-encoded product image in S3 and saves its URL.
func (pc *ProductController) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.products.GetProductByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	url, err := utils.UploadProductImage(input.Image, product.SKU)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err = pc.products.UpdateProduct(id, map[string]interface{}{"image_url": url})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/BakhatBug/Keto-Slim/middlewares"
	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type OrderItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

type ShippingInfoInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type CreateOrderInput struct {
	Items         []OrderItemInput  `json:"items" binding:"required,min=1,dive"`
	Currency      string            `json:"currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=credit-card paypal stripe cash-on-delivery"`
	ShippingInfo  ShippingInfoInput `json:"shippingInfo" binding:"required"`
	Notes         string            `json:"notes" binding:"max=500"`
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]services.OrderItemInput, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, services.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := oc.orders.CreateOrder(services.CreateOrderInput{
		Items:         items,
		Currency:      input.Currency,
		PaymentMethod: input.PaymentMethod,
		ShippingInfo: models.ShippingInfo{
			FullName: input.ShippingInfo.FullName,
			Email:    input.ShippingInfo.Email,
			Phone:    input.ShippingInfo.Phone,
			Address:  input.ShippingInfo.Address,
			City:     input.ShippingInfo.City,
			State:    input.ShippingInfo.State,
			ZipCode:  input.ShippingInfo.ZipCode,
			Country:  input.ShippingInfo.Country,
		},
		Notes: input.Notes,
	}, middlewares.CurrentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// canAccessOrder allows the order's owner and admins. Guest orders carry no
// owner and stay reachable by order number instead.
func canAccessOrder(c *gin.Context, order *models.Order) bool {
	if order.UserID == nil {
		return true
	}
	userID := middlewares.CurrentUserID(c)
	if userID != nil && *userID == *order.UserID {
		return true
	}
	return middlewares.HasRole(c, models.RoleAdmin)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.orders.GetOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canAccessOrder(c, order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (oc *OrderController) GetOrderByNumber(c *gin.Context) {
	order, err := oc.orders.GetOrderByNumber(c.Param("orderNumber"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	filters := services.OrderFilters{Status: c.Query("status")}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, pages, err := oc.orders.GetUserOrders(*userID, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total, "pages": pages})
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	filters := services.OrderFilters{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, pages, err := oc.orders.GetAllOrders(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total, "pages": pages})
}

type UpdateOrderStatusInput struct {
	Status        string `json:"status" binding:"required,oneof=pending paid processing shipped delivered cancelled refunded"`
	PaymentStatus string `json:"paymentStatus" binding:"omitempty,oneof=pending completed failed refunded"`
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := oc.orders.UpdateOrderStatus(id, input.Status, input.PaymentStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (oc *OrderController) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := oc.orders.GetOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canAccessOrder(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	order, err := oc.orders.CancelOrder(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

type ProcessPaymentInput struct {
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,oneof=credit-card paypal stripe cash-on-delivery"`
}

// ProcessPayment runs the mock gateway. A declined payment is a 200 with
// success=false, matching the storefront's expectations.
func (oc *OrderController) ProcessPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := oc.orders.GetOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canAccessOrder(c, existing) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}

	var input ProcessPaymentInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := oc.orders.ProcessPayment(id, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

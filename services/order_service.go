package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/utils"

	"gorm.io/gorm"
)

var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"CAD": true,
	"AUD": true,
}

// mockPaymentFailureThreshold: the fake gateway declines anything at or above
// this total. No real payment provider is integrated.
const mockPaymentFailureThreshold = 1000.0

type OrderService struct {
	db       *gorm.DB
	products *ProductService
	hub      *OrderHub
}

// NewOrderService wires the order workflow. hub may be nil when no realtime
// feed is running (tests, seed tool).
func NewOrderService(db *gorm.DB, products *ProductService, hub *OrderHub) *OrderService {
	return &OrderService{db: db, products: products, hub: hub}
}

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateOrderInput struct {
	Items         []OrderItemInput
	Currency      string
	PaymentMethod string
	ShippingInfo  models.ShippingInfo
	Notes         string
}

type OrderFilters struct {
	Status        string
	PaymentStatus string
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
}

// CreateOrder prices each line against the current catalog, rejects inactive
// products, currency mismatches and missing stock, then stores the order and
// decrements stock.
func (s *OrderService) CreateOrder(input CreateOrderInput, userID *uint) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, &ValidationError{Message: "order must have at least one item"}
	}
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	if !supportedCurrencies[currency] {
		return nil, &ValidationError{Message: "unsupported currency: " + currency}
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	var totalAmount float64

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, &ValidationError{Message: "item quantity must be at least 1"}
		}
		product, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive {
			return nil, &ValidationError{Message: fmt.Sprintf("product %q is no longer available", product.Name)}
		}
		if product.Currency != currency {
			return nil, &ValidationError{Message: fmt.Sprintf(
				"currency mismatch: product %q is priced in %s, but order is in %s",
				product.Name, product.Currency, currency)}
		}
		if product.Stock < item.Quantity {
			return nil, &ValidationError{Message: fmt.Sprintf(
				"insufficient stock for product %q, available: %d", product.Name, product.Stock)}
		}

		subtotal := round2(product.Price * float64(item.Quantity))
		totalAmount += subtotal
		items = append(items, models.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
			Subtotal:        subtotal,
		})
	}

	order := models.Order{
		UserID:        userID,
		OrderNumber:   newOrderNumber(),
		Items:         items,
		TotalAmount:   round2(totalAmount),
		Currency:      currency,
		Status:        models.OrderPending,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		ShippingInfo:  input.ShippingInfo,
		Notes:         input.Notes,
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if _, err := s.products.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			return nil, err
		}
	}

	s.emit("order.created", &order)
	return &order, nil
}

func (s *OrderService) GetOrderByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order"}
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "order"}
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) GetUserOrders(userID uint, f OrderFilters) ([]models.Order, int64, int, error) {
	q := s.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return s.listOrders(q, f)
}

func (s *OrderService) GetAllOrders(f OrderFilters) ([]models.Order, int64, int, error) {
	q := s.db.Model(&models.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	return s.listOrders(q, f)
}

func (s *OrderService) listOrders(q *gorm.DB, f OrderFilters) ([]models.Order, int64, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	sortBy := f.SortBy
	switch sortBy {
	case "total_amount", "status", "created_at":
	default:
		sortBy = "created_at"
	}
	order := "desc"
	if f.SortOrder == "asc" {
		order = "asc"
	}

	var orders []models.Order
	err := q.Order(fmt.Sprintf("%s %s", sortBy, order)).
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, 0, err
	}

	pages := int(math.Ceil(float64(total) / float64(f.Limit)))
	return orders, total, pages, nil
}

// UpdateOrderStatus transitions an order; cancelling or refunding puts the
// reserved stock back.
func (s *OrderService) UpdateOrderStatus(orderID uint, status, paymentStatus string) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if paymentStatus != "" {
		updates["payment_status"] = paymentStatus
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.Status = status
	if paymentStatus != "" {
		order.PaymentStatus = paymentStatus
	}

	if status == models.OrderCancelled || status == models.OrderRefunded {
		for _, item := range order.Items {
			if _, err := s.products.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
	}

	s.emit("order.status_changed", order)
	return order, nil
}

func (s *OrderService) CancelOrder(orderID uint) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderPending {
		return nil, &ValidationError{Message: "only pending orders can be cancelled"}
	}
	return s.UpdateOrderStatus(orderID, models.OrderCancelled, "")
}

type PaymentResult struct {
	Success       bool          `json:"success"`
	Order         *models.Order `json:"order"`
	TransactionID string        `json:"transactionId,omitempty"`
	Message       string        `json:"message"`
}

// ProcessPayment runs the mock gateway against a pending order. Totals at or
// above the failure threshold are declined; everything else succeeds and gets
// a transaction reference.
func (s *OrderService) ProcessPayment(orderID uint, paymentMethod string) (*PaymentResult, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == models.PaymentCompleted {
		return nil, &ValidationError{Message: "order has already been paid"}
	}
	if order.Status == models.OrderCancelled || order.Status == models.OrderRefunded {
		return nil, &ValidationError{Message: "cannot pay for a cancelled or refunded order"}
	}

	if order.TotalAmount >= mockPaymentFailureThreshold {
		if err := s.db.Model(order).Update("payment_status", models.PaymentFailed).Error; err != nil {
			return nil, err
		}
		order.PaymentStatus = models.PaymentFailed
		return &PaymentResult{
			Success: false,
			Order:   order,
			Message: "Payment failed. Please check your payment details and try again.",
		}, nil
	}

	transactionID := fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), utils.GenerateRandomToken(6))

	updates := map[string]interface{}{
		"payment_status": models.PaymentCompleted,
		"status":         models.OrderPaid,
		"payment_ref":    transactionID,
	}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	if err := s.db.Model(order).Updates(updates).Error; err != nil {
		return nil, err
	}
	order.PaymentStatus = models.PaymentCompleted
	order.Status = models.OrderPaid
	order.PaymentRef = transactionID
	if paymentMethod != "" {
		order.PaymentMethod = paymentMethod
	}

	utils.SendOrderConfirmationEmail(order.ShippingInfo.Email, order.OrderNumber, order.TotalAmount, order.Currency)
	s.emit("order.paid", order)

	return &PaymentResult{
		Success:       true,
		Order:         order,
		TransactionID: transactionID,
		Message:       "Payment processed successfully",
	}, nil
}

func (s *OrderService) emit(event string, order *models.Order) {
	if s.hub != nil {
		s.hub.Broadcast(event, order)
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), utils.GenerateRandomToken(7))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package services

import (
	"strings"
	"testing"

	"github.com/BakhatBug/Keto-Slim/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName: "Jess Tester",
		Email:    "jess@test.com",
		Phone:    "555-0100",
		Address:  "1 Test Way",
		City:     "Testville",
		State:    "TS",
		ZipCode:  "00000",
		Country:  "USA",
	}
}

func newOrderService(t *testing.T) (*OrderService, *ProductService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	products := NewProductService(db)
	return NewOrderService(db, products, nil), products, db
}

func TestCreateOrder(t *testing.T) {
	orders, _, db := newOrderService(t)

	a := createProduct(t, db, "PLAN-A", 29.99, 10)
	b := createProduct(t, db, "PLAN-B", 14.99, 10)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: a.ID, Quantity: 2},
			{ProductID: b.ID, Quantity: 1},
		},
		PaymentMethod: "credit-card",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	require.Equal(t, models.OrderPending, order.Status)
	require.Equal(t, models.PaymentPending, order.PaymentStatus)
	require.Equal(t, "USD", order.Currency)
	require.InDelta(t, 74.97, order.TotalAmount, 0.001)

	require.Len(t, order.Items, 2)
	require.Equal(t, a.Name, order.Items[0].ProductName)
	require.Equal(t, 29.99, order.Items[0].PriceAtPurchase)
	require.InDelta(t, 59.98, order.Items[0].Subtotal, 0.001)

	// Stock reserved immediately.
	productA, err := NewProductService(db).GetProductByID(a.ID)
	require.NoError(t, err)
	require.Equal(t, 8, productA.Stock)
}

func TestCreateOrder_Rejections(t *testing.T) {
	orders, products, db := newOrderService(t)

	active := createProduct(t, db, "ACTIVE", 10, 1)
	inactive := createProduct(t, db, "INACTIVE", 10, 5)
	require.NoError(t, products.DeleteProduct(inactive.ID))

	cases := []struct {
		name  string
		input CreateOrderInput
	}{
		{"no items", CreateOrderInput{PaymentMethod: "paypal", ShippingInfo: testShipping()}},
		{"inactive product", CreateOrderInput{
			Items:         []OrderItemInput{{ProductID: inactive.ID, Quantity: 1}},
			PaymentMethod: "paypal",
			ShippingInfo:  testShipping(),
		}},
		{"insufficient stock", CreateOrderInput{
			Items:         []OrderItemInput{{ProductID: active.ID, Quantity: 2}},
			PaymentMethod: "paypal",
			ShippingInfo:  testShipping(),
		}},
		{"currency mismatch", CreateOrderInput{
			Items:         []OrderItemInput{{ProductID: active.ID, Quantity: 1}},
			Currency:      "EUR",
			PaymentMethod: "paypal",
			ShippingInfo:  testShipping(),
		}},
		{"unsupported currency", CreateOrderInput{
			Items:         []OrderItemInput{{ProductID: active.ID, Quantity: 1}},
			Currency:      "JPY",
			PaymentMethod: "paypal",
			ShippingInfo:  testShipping(),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orders.CreateOrder(tc.input, nil)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestCancelOrder_RestoresStock(t *testing.T) {
	orders, products, db := newOrderService(t)
	product := createProduct(t, db, "CANCEL", 10, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 3}},
		PaymentMethod: "stripe",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	cancelled, err := orders.CancelOrder(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderCancelled, cancelled.Status)

	restocked, err := products.GetProductByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 5, restocked.Stock)
}

func TestCancelOrder_OnlyPending(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "PAIDCXL", 10, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "stripe",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	_, err = orders.ProcessPayment(order.ID, "")
	require.NoError(t, err)

	_, err = orders.CancelOrder(order.ID)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestProcessPayment_Success(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "PAYOK", 49.99, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "credit-card",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	result, err := orders.ProcessPayment(order.ID, "")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, strings.HasPrefix(result.TransactionID, "TXN-"))

	paid, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.OrderPaid, paid.Status)
	require.Equal(t, models.PaymentCompleted, paid.PaymentStatus)
	require.Equal(t, result.TransactionID, paid.PaymentRef)
}

// The mock gateway declines totals at or above the failure threshold.
func TestProcessPayment_DeclinesLargeTotals(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "PAYBIG", 500, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
		PaymentMethod: "credit-card",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	result, err := orders.ProcessPayment(order.ID, "")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Empty(t, result.TransactionID)

	declined, err := orders.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Equal(t, models.PaymentFailed, declined.PaymentStatus)
	require.Equal(t, models.OrderPending, declined.Status)
}

func TestProcessPayment_AlreadyPaid(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "REPAY", 10, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "paypal",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	_, err = orders.ProcessPayment(order.ID, "")
	require.NoError(t, err)

	_, err = orders.ProcessPayment(order.ID, "")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateOrderStatus_RefundRestocks(t *testing.T) {
	orders, products, db := newOrderService(t)
	product := createProduct(t, db, "REFUND", 20, 4)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 4}},
		PaymentMethod: "stripe",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	_, err = orders.ProcessPayment(order.ID, "")
	require.NoError(t, err)

	_, err = orders.UpdateOrderStatus(order.ID, models.OrderRefunded, models.PaymentRefunded)
	require.NoError(t, err)

	restocked, err := products.GetProductByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 4, restocked.Stock)
}

func TestGetOrderByNumber(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "BYNUM", 10, 5)

	order, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "paypal",
		ShippingInfo:  testShipping(),
	}, nil)
	require.NoError(t, err)

	found, err := orders.GetOrderByNumber(order.OrderNumber)
	require.NoError(t, err)
	require.Equal(t, order.ID, found.ID)

	_, err = orders.GetOrderByNumber("ORD-MISSING")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetUserOrders_FiltersByStatus(t *testing.T) {
	orders, _, db := newOrderService(t)
	product := createProduct(t, db, "MINE", 10, 10)

	user := models.User{Email: "buyer@test.com", PasswordHash: "x", Name: "Buyer", Roles: []string{models.RoleUser}}
	require.NoError(t, db.Create(&user).Error)

	first, err := orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "paypal",
		ShippingInfo:  testShipping(),
	}, &user.ID)
	require.NoError(t, err)
	_, err = orders.CreateOrder(CreateOrderInput{
		Items:         []OrderItemInput{{ProductID: product.ID, Quantity: 1}},
		PaymentMethod: "paypal",
		ShippingInfo:  testShipping(),
	}, &user.ID)
	require.NoError(t, err)

	_, err = orders.CancelOrder(first.ID)
	require.NoError(t, err)

	cancelled, total, _, err := orders.GetUserOrders(user.ID, OrderFilters{Status: models.OrderCancelled})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, first.ID, cancelled[0].ID)

	_, total, _, err = orders.GetUserOrders(user.ID, OrderFilters{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

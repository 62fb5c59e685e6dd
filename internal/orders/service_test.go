package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/angelmondragon/stockroom/internal/alerts"
	"github.com/angelmondragon/stockroom/internal/stock"
	"github.com/angelmondragon/stockroom/internal/suppliers"
	"github.com/angelmondragon/stockroom/pkg/db/models"
	"github.com/angelmondragon/stockroom/pkg/enums"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)

	statements := []string{`
CREATE TABLE IF NOT EXISTS items (
  item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  quantity INTEGER NOT NULL,
  price NUMERIC(10,2) NOT NULL,
  threshold INTEGER NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS suppliers (
  supplier_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  contact TEXT,
  phone TEXT,
  email TEXT
);`, `
CREATE TABLE IF NOT EXISTS orders (
  order_id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier_id INTEGER NOT NULL REFERENCES suppliers(supplier_id),
  item_id INTEGER NOT NULL REFERENCES items(item_id),
  quantity INTEGER NOT NULL,
  order_date DATETIME NOT NULL,
  status TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS alerts (
  alert_id INTEGER PRIMARY KEY AUTOINCREMENT,
  item_id INTEGER NOT NULL REFERENCES items(item_id),
  message TEXT NOT NULL,
  alert_date DATETIME NOT NULL,
  status TEXT NOT NULL
);`}
	for _, stmt := range statements {
		require.NoError(t, conn.Exec(stmt).Error)
	}
	return conn
}

type gormTransactor struct {
	db *gorm.DB
}

func (g gormTransactor) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

type fixture struct {
	conn   *gorm.DB
	orders Service
	stock  stock.Service
	sups   suppliers.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn := setupOrdersTestDB(t)

	alertsService, err := alerts.NewService(alerts.NewRepository(conn))
	require.NoError(t, err)
	stockService, err := stock.NewService(stock.NewRepository(conn), alertsService)
	require.NoError(t, err)
	suppliersService, err := suppliers.NewService(suppliers.NewRepository(conn))
	require.NoError(t, err)

	ordersService, err := NewService(ServiceParams{
		Repo:       NewRepository(conn),
		Transactor: gormTransactor{db: conn},
		Receipts:   stockService,
		Items:      stockService,
		Suppliers:  suppliersService,
	})
	require.NoError(t, err)

	return &fixture{conn: conn, orders: ordersService, stock: stockService, sups: suppliersService}
}

func (f *fixture) newItem(t *testing.T, name string, qty, threshold int) *models.Item {
	t.Helper()
	item, err := f.stock.CreateItem(context.Background(), stock.CreateItemInput{
		Name:      name,
		Quantity:  qty,
		Price:     decimal.NewFromInt(5),
		Threshold: threshold,
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) newSupplier(t *testing.T, name string) *models.Supplier {
	t.Helper()
	supplier, err := f.sups.Create(context.Background(), suppliers.CreateSupplierInput{Name: name})
	require.NoError(t, err)
	return supplier
}

func (f *fixture) itemQuantity(t *testing.T, itemID int) int {
	t.Helper()
	item, err := f.stock.FindItem(context.Background(), itemID)
	require.NoError(t, err)
	return item.Quantity
}

func TestUpdateStatus_receiptAppliesExactlyOnce(t *testing.T) {
	f := newFixture(t)

	item := f.newItem(t, "X", 10, 0)
	supplier := f.newSupplier(t, "Acme")

	order, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   5,
		Status:     enums.OrderStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, f.itemQuantity(t, item.ID))

	_, err = f.orders.UpdateStatus(context.Background(), order.ID, enums.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, 15, f.itemQuantity(t, item.ID))

	// Re-saving an already-Received order must not re-apply the receipt.
	_, err = f.orders.UpdateStatus(context.Background(), order.ID, enums.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, 15, f.itemQuantity(t, item.ID))
}

func TestCreate_receivedStatusAppliesReceiptImmediately(t *testing.T) {
	f := newFixture(t)

	item := f.newItem(t, "X", 10, 0)
	supplier := f.newSupplier(t, "Acme")

	order, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   7,
		Status:     enums.OrderStatusReceived,
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, 17, f.itemQuantity(t, item.ID))
}

func TestCreate_widgetScenario(t *testing.T) {
	f := newFixture(t)

	widget := f.newItem(t, "Widget", 10, 5)
	supplier := f.newSupplier(t, "Acme")

	order, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     widget.ID,
		SupplierID: supplier.ID,
		Quantity:   20,
		Status:     enums.OrderStatusPending,
	})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(context.Background(), order.ID, enums.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, 30, f.itemQuantity(t, widget.ID))

	created, err := f.stock.EvaluateLowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, created, "30 > 5, no alert expected")
}

func TestCreate_missingReferences(t *testing.T) {
	f := newFixture(t)

	item := f.newItem(t, "X", 1, 0)
	supplier := f.newSupplier(t, "Acme")

	_, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     999,
		SupplierID: supplier.ID,
		Quantity:   1,
		Status:     enums.OrderStatusPending,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: 999,
		Quantity:   1,
		Status:     enums.OrderStatusPending,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCreate_rejectsInvalidInput(t *testing.T) {
	f := newFixture(t)

	item := f.newItem(t, "X", 1, 0)
	supplier := f.newSupplier(t, "Acme")

	_, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   0,
		Status:     enums.OrderStatusPending,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   1,
		Status:     enums.OrderStatus("Delivered"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateStatus_missingOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.UpdateStatus(context.Background(), 123, enums.OrderStatusShipped)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListByStatus_joinsItemAndSupplier(t *testing.T) {
	f := newFixture(t)

	item := f.newItem(t, "Widget", 10, 0)
	supplier := f.newSupplier(t, "Acme")

	_, err := f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   3,
		Status:     enums.OrderStatusPending,
	})
	require.NoError(t, err)
	_, err = f.orders.Create(context.Background(), CreateOrderInput{
		ItemID:     item.ID,
		SupplierID: supplier.ID,
		Quantity:   4,
		Status:     enums.OrderStatusShipped,
	})
	require.NoError(t, err)

	pending, err := f.orders.ListByStatus(context.Background(), enums.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].Quantity)
	require.NotNil(t, pending[0].Item)
	require.NotNil(t, pending[0].Supplier)
	assert.Equal(t, "Widget", pending[0].Item.Name)
	assert.Equal(t, "Acme", pending[0].Supplier.Name)

	all, err := f.orders.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

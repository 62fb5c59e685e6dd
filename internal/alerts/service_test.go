package alerts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/angelmondragon/stockroom/pkg/db/models"
	"github.com/angelmondragon/stockroom/pkg/enums"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAlertsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)

	items := `
CREATE TABLE IF NOT EXISTS items (
  item_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  quantity INTEGER NOT NULL,
  price NUMERIC(10,2) NOT NULL,
  threshold INTEGER NOT NULL
);`
	alerts := `
CREATE TABLE IF NOT EXISTS alerts (
  alert_id INTEGER PRIMARY KEY AUTOINCREMENT,
  item_id INTEGER NOT NULL REFERENCES items(item_id),
  message TEXT NOT NULL,
  alert_date DATETIME NOT NULL,
  status TEXT NOT NULL
);`
	require.NoError(t, conn.Exec(items).Error)
	require.NoError(t, conn.Exec(alerts).Error)
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(conn))
	require.NoError(t, err)
	return svc
}

func newItem(t *testing.T, conn *gorm.DB, name string, qty, threshold int) models.Item {
	t.Helper()
	item := models.Item{Name: name, Quantity: qty, Threshold: threshold}
	require.NoError(t, conn.Create(&item).Error)
	return item
}

func TestCreateLowStockAlert_messageFormat(t *testing.T) {
	conn := setupAlertsTestDB(t)
	svc := newTestService(t, conn)

	item := newItem(t, conn, "Bolt", 2, 5)
	alert, err := svc.CreateLowStockAlert(context.Background(), item)
	require.NoError(t, err)

	assert.Equal(t, "Low stock alert: Bolt (Current: 2, Threshold: 5)", alert.Message)
	assert.Equal(t, enums.AlertStatusPending, alert.Status)
	assert.Equal(t, item.ID, alert.ItemID)
	assert.WithinDuration(t, time.Now().UTC(), alert.AlertDate, time.Minute)
}

func TestResolve_isOneWay(t *testing.T) {
	conn := setupAlertsTestDB(t)
	svc := newTestService(t, conn)

	item := newItem(t, conn, "Bolt", 2, 5)
	alert, err := svc.CreateLowStockAlert(context.Background(), item)
	require.NoError(t, err)

	require.NoError(t, svc.Resolve(context.Background(), alert.ID))

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, enums.AlertStatusResolved, listed[0].Status)

	// Resolving again is a harmless no-op; nothing moves it back to Pending.
	require.NoError(t, svc.Resolve(context.Background(), alert.ID))
	listed, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, enums.AlertStatusResolved, listed[0].Status)
}

func TestResolve_missingAlertReportsNotFound(t *testing.T) {
	conn := setupAlertsTestDB(t)
	svc := newTestService(t, conn)

	err := svc.Resolve(context.Background(), 99)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestList_newestFirst(t *testing.T) {
	conn := setupAlertsTestDB(t)
	repo := NewRepository(conn)
	svc := newTestService(t, conn)

	item := newItem(t, conn, "Bolt", 2, 5)

	older := &models.Alert{ItemID: item.ID, Message: "older", AlertDate: time.Now().UTC().Add(-time.Hour), Status: enums.AlertStatusPending}
	newer := &models.Alert{ItemID: item.ID, Message: "newer", AlertDate: time.Now().UTC(), Status: enums.AlertStatusPending}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0].Message)
	assert.Equal(t, "older", listed[1].Message)
	require.NotNil(t, listed[0].Item)
	assert.Equal(t, "Bolt", listed[0].Item.Name)
}

package repository

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"paperdesk/internal/domain/paper"
	"paperdesk/internal/domain/purchase"
	"paperdesk/internal/domain/shared/money"
	"paperdesk/internal/infrastructure/persistence/models"
	"paperdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = database.AutoMigrate(&models.PaperModel{}, &models.PurchaseModel{})
	require.NoError(t, err)

	return database
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestPaper(t *testing.T, title, subject string, cents int64) *paper.Paper {
	t.Helper()
	p, err := paper.NewPaper(title, "", subject, "10", nil,
		money.NewMoney(cents, "USD"), "papers/test/"+title+".pdf", "", nil)
	require.NoError(t, err)
	return p
}

func newCompletedPurchase(t *testing.T, userID, paperID uint, cents int64) *purchase.Purchase {
	t.Helper()
	rec, err := purchase.NewPurchase(userID, paperID, money.NewMoney(cents, "USD"))
	require.NoError(t, err)
	require.NoError(t, rec.Complete("TXN_test"))
	return rec
}

func newFailedPurchase(t *testing.T, userID, paperID uint, cents int64) *purchase.Purchase {
	t.Helper()
	rec, err := purchase.NewPurchase(userID, paperID, money.NewMoney(cents, "USD"))
	require.NoError(t, err)
	require.NoError(t, rec.Fail())
	return rec
}

func advanceClock() {
	// sqlite stores times at millisecond precision; keep orderings unambiguous
	time.Sleep(2 * time.Millisecond)
}

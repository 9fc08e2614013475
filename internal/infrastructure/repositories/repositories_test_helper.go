package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCustomerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE customers (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		plate_number TEXT,
		qr_code TEXT UNIQUE NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		business_name TEXT NOT NULL,
		city TEXT NOT NULL,
		plan TEXT NOT NULL,
		subscription_status TEXT NOT NULL,
		registration_code TEXT UNIQUE NOT NULL,
		approved_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMerchantSettingsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_settings (
		merchant_id TEXT PRIMARY KEY,
		reward_name TEXT NOT NULL,
		washes_required INTEGER NOT NULL,
		window_days INTEGER NOT NULL,
		updated_at DATETIME
	);`)
}

func createLoyaltyCardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loyalty_cards (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		wash_count INTEGER NOT NULL DEFAULT 0,
		cycle_started_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(customer_id, merchant_id)
	);`)
}

func createWashHistoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wash_histories (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		washed_at DATETIME NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		rating INTEGER,
		comment TEXT
	);`)
}

func createRewardTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE rewards (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		merchant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		code TEXT UNIQUE NOT NULL,
		status TEXT NOT NULL DEFAULT 'issued',
		issued_at DATETIME NOT NULL,
		claimed_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

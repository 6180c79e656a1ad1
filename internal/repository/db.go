package repository

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB はGORMのDB接続を初期化します
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: finalGormLogger,
		// upsert の重複キー違反を gorm.ErrDuplicatedKey に変換させる
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	// コネクションプールの設定
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")

	return db, nil
}

// === プロセス全体で共有するDBハンドル ===
//
// 初回利用時に遅延初期化し、プロセスの寿命の間再利用します。
// 初期化の競合は sync.Once で1回の接続試行に収束させます
// (先行した呼び出しの結果を後続の呼び出しが待つ形になり、重複接続は起きません)。
// 再初期化は ResetSharedDB による明示的な破棄後のみ可能です。

var (
	sharedDB   *gorm.DB
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.Mutex
)

// SharedDB は共有DBハンドルを返します (必要なら初期化します)
func SharedDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedOnce.Do(func() {
		sharedDB, sharedErr = NewDB(databaseURL, appLogger)
	})
	return sharedDB, sharedErr
}

// ResetSharedDB は共有ハンドルを閉じて破棄します (シャットダウン・テスト用)
func ResetSharedDB() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	sharedDB = nil
	sharedErr = nil
	sharedOnce = sync.Once{}
}

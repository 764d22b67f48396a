package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
)

// SQLiteRepository implements ports.SessionStore and ports.ChatStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionStore = (*SQLiteRepository)(nil)
var _ ports.ChatStore = (*SQLiteRepository)(nil)

// gormLogger wraps the argue-with-ai logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("ARGUE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&SessionModel{}, &ChatTurnModel{}, &ChatExitModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// StartSession implements SessionWriter.StartSession
func (r *SQLiteRepository) StartSession(ctx context.Context, app string, startEpochMs int64, day string) (ports.SessionID, error) {
	model := SessionModel{
		App:          app,
		Day:          day,
		ID:           uuid.New().String(),
		StartEpochMs: startEpochMs,
		StartTime:    time.UnixMilli(startEpochMs).UTC(),
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return ports.SessionID(model.ID), nil
}

// EndSession implements SessionWriter.EndSession. The read and the
// conditional write run in one transaction; an already closed session is
// returned as stored.
func (r *SQLiteRepository) EndSession(ctx context.Context, id ports.SessionID, endEpochMs int64) (*domain.Session, error) {
	var model SessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", string(id)).First(&model).Error; err != nil {
				return err
			}

			if model.EndEpochMs != nil {
				return nil
			}

			durationSec := (endEpochMs - model.StartEpochMs) / 1000
			if durationSec < 0 {
				durationSec = 0
			}
			endTime := time.UnixMilli(endEpochMs).UTC()

			model.DurationSec = &durationSec
			model.EndEpochMs = &endEpochMs
			model.EndTime = &endTime

			updates := map[string]any{
				"duration_sec": durationSec,
				"end_epoch_ms": endEpochMs,
				"end_time":     endTime,
			}
			return tx.Model(&SessionModel{}).Where("id = ?", model.ID).Updates(updates).Error
		})
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	session := sessionModelToDomain(model)
	return &session, nil
}

// ListSessions implements SessionReader.ListSessions
func (r *SQLiteRepository) ListSessions(ctx context.Context, day string) ([]domain.Session, error) {
	var models []SessionModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("start_epoch_ms DESC")
		if day != "" {
			query = query.Where("day = ?", day)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// AppendTurn implements ChatStore.AppendTurn. The AI question and the user
// answer for the same order index merge into one row.
func (r *SQLiteRepository) AppendTurn(ctx context.Context, sessionID string, order int, role domain.Sender, text string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var row ChatTurnModel
			err := tx.Where("session_id = ? AND order_index = ?", sessionID, order).First(&row).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				row = ChatTurnModel{
					OrderIndex: order,
					SessionID:  sessionID,
				}
				if role == domain.SenderUser {
					row.Answer = text
				} else {
					row.Question = text
				}
				return tx.Create(&row).Error
			}
			if err != nil {
				return fmt.Errorf("failed to load chat turn: %w", err)
			}

			if role == domain.SenderUser {
				row.Answer = text
			} else {
				row.Question = text
			}
			return tx.Save(&row).Error
		})
	}, 3)
}

// LogExit implements ChatStore.LogExit
func (r *SQLiteRepository) LogExit(ctx context.Context, sessionID string, rec domain.ExitRecord) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&ChatExitModel{
			AtMs:      rec.AtMs,
			Finished:  rec.Finished,
			Method:    string(rec.Method),
			Note:      rec.Note,
			SessionID: sessionID,
		}).Error
	}, 3)
}

// Transcript implements ChatStore.Transcript
func (r *SQLiteRepository) Transcript(ctx context.Context, sessionID string) ([]domain.ChatTurn, error) {
	var models []ChatTurnModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("session_id = ?", sessionID).
			Order("order_index ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	return turnModelsToTranscript(models), nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

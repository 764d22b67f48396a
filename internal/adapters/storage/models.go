package storage

import "time"

// SessionModel is the GORM model for usage sessions
type SessionModel struct {
	App          string `gorm:"not null;index:idx_app"`
	CreatedAt    time.Time
	Day          string     `gorm:"not null;index:idx_day"`
	DurationSec  *int64     `gorm:"default:null"`
	EndEpochMs   *int64     `gorm:"default:null"`
	EndTime      *time.Time `gorm:"default:null"`
	ID           string     `gorm:"primaryKey"`
	StartEpochMs int64      `gorm:"not null;index:idx_start_epoch"`
	StartTime    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// ChatTurnModel is the GORM model for conversation rows. A question and its
// answer share an order index and live in the same row.
type ChatTurnModel struct {
	Answer     string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	OrderIndex int    `gorm:"primaryKey;autoIncrement:false"`
	Question   string `gorm:"not null;default:''"`
	SessionID  string `gorm:"primaryKey"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ChatTurnModel) TableName() string { return "chat_turns" }

// ChatExitModel is the GORM model for conversation exit records
type ChatExitModel struct {
	AtMs      int64 `gorm:"not null"`
	CreatedAt time.Time
	Finished  bool   `gorm:"not null;default:false"`
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Method    string `gorm:"not null;default:''"`
	Note      string `gorm:"not null;default:''"`
	SessionID string `gorm:"not null;index:idx_exit_session"`
}

// TableName specifies the table name for GORM
func (ChatExitModel) TableName() string { return "chat_exits" }

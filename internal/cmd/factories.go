package cmd

import (
	"context"
	"time"

	adapterai "github.com/sanghyeon0114/argue-with-ai/internal/adapters/ai"
	adapterstorage "github.com/sanghyeon0114/argue-with-ai/internal/adapters/storage"
	"github.com/sanghyeon0114/argue-with-ai/internal/config"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
	"github.com/sanghyeon0114/argue-with-ai/internal/services"
)

// queueFlushTimeout bounds the shutdown flush of pending persistence work.
const queueFlushTimeout = 5 * time.Second

// Container holds all dependencies for the application
type Container struct {
	Clock ports.Clock
	Queue *services.TaskQueue

	// Internal - for cleanup only
	store *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath string) (*Container, error) {
	store, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		Clock: ports.SystemClock{},
		Queue: services.NewTaskQueue(64),
		store: store,
	}, nil
}

// SessionStore returns the persistence collaborator for sessions.
func (c *Container) SessionStore() ports.SessionStore {
	return c.store
}

// ChatStore returns the persistence collaborator for transcripts. The
// sqlite repository implements both ports.
func (c *Container) ChatStore() ports.ChatStore {
	return c.store
}

// NewTurnGenerator creates the language-model collaborator from settings.
func (c *Container) NewTurnGenerator(ctx context.Context, settings *config.Settings) (ports.TurnGenerator, error) {
	apiKey := settings.GeminiAPIKey
	return adapterai.NewGeminiGenerator(ctx, apiKey, settings.Model)
}

// Close flushes the task queue and closes all resources
func (c *Container) Close() error {
	if c.Queue != nil {
		c.Queue.Close(queueFlushTimeout)
	}
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}

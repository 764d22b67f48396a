package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/logging"
	"github.com/sanghyeon0114/argue-with-ai/internal/ports"
)

// maxLineBytes bounds a single accessibility snapshot line. Deep view trees
// serialize large, so the default scanner buffer is not enough.
const maxLineBytes = 4 * 1024 * 1024

// event is the wire form of one accessibility sample
type event struct {
	Pkg     string       `json:"pkg"`
	EpochMs int64        `json:"epochMs"`
	Root    *domain.Node `json:"root"`
}

// JSONLSource replays accessibility samples from a JSON-lines stream, one
// event per line. Malformed lines are skipped and logged, not fatal.
type JSONLSource struct {
	r      io.ReadCloser
	replay bool
}

// Verify interface compliance at compile time
var _ ports.EventSource = (*JSONLSource)(nil)

// NewJSONLSource opens a JSONL event file. The path "-" reads from stdin.
func NewJSONLSource(path string) (*JSONLSource, error) {
	if path == "-" {
		return &JSONLSource{r: os.Stdin}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event feed: %w", err)
	}
	return &JSONLSource{r: f}, nil
}

// NewReplaySource opens a JSONL event file and pins sample timestamps to the
// recorded epochs instead of the wall clock.
func NewReplaySource(path string) (*JSONLSource, error) {
	src, err := NewJSONLSource(path)
	if err != nil {
		return nil, err
	}
	src.replay = true
	return src, nil
}

// Stream implements ports.EventSource. The returned channel closes when the
// feed is exhausted or the context is cancelled.
func (s *JSONLSource) Stream(ctx context.Context) (<-chan domain.Sample, error) {
	out := make(chan domain.Sample)

	go func() {
		defer close(out)
		defer s.r.Close()

		scanner := bufio.NewScanner(s.r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var ev event
			if err := json.Unmarshal(line, &ev); err != nil {
				logging.Logger.Warn("skipping malformed event line",
					"line", lineNo,
					"error", err,
				)
				continue
			}

			at := time.Now()
			if s.replay && ev.EpochMs != 0 {
				at = time.UnixMilli(ev.EpochMs)
			}

			sample := domain.Sample{
				Pkg:  ev.Pkg,
				Root: ev.Root,
				At:   at,
			}

			select {
			case out <- sample:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			logging.Logger.Error("event feed read failed", "error", err)
		}
	}()

	return out, nil
}

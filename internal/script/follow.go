package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/logger"
)

// Follower tails a script file and emits its buttons as lines are appended.
type Follower struct {
	path      string
	fromStart bool
	log       *logger.Logger

	reader  *bufio.Reader
	pending string
	lineNo  int
}

// FollowOption configures a Follower
type FollowOption func(*Follower)

// FromEnd skips the content present when following starts
func FromEnd() FollowOption {
	return func(f *Follower) {
		f.fromStart = false
	}
}

// WithFollowLogger sets the logger for skipped lines and watcher errors
func WithFollowLogger(l *logger.Logger) FollowOption {
	return func(f *Follower) {
		if l != nil {
			f.log = l
		}
	}
}

// NewFollower validates path and prepares a follower for it
func NewFollower(path string, opts ...FollowOption) (*Follower, error) {
	if err := validateScriptPath(path); err != nil {
		return nil, fmt.Errorf("invalid script path: %w", err)
	}

	f := &Follower{
		path:      path,
		fromStart: true,
		log:       logger.New("script", nil),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Follow sends buttons to out until ctx is cancelled. Lines that fail to
// parse are logged and skipped. A partial last line is held until its
// newline arrives.
func (f *Follower) Follow(ctx context.Context, out chan<- calculator.Button) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			f.log.Warn("failed to close watcher: %v", err)
		}
	}()

	if err := watcher.Add(f.path); err != nil {
		return fmt.Errorf("failed to watch file: %w", err)
	}

	// #nosec G304 - path is validated by NewFollower
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			f.log.Warn("failed to close file: %v", err)
		}
	}()

	if !f.fromStart {
		if _, err := file.Seek(0, io.SeekEnd); err != nil {
			return fmt.Errorf("failed to seek to end of file: %w", err)
		}
	}
	f.reader = bufio.NewReader(file)

	if err := f.drain(ctx, out); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				return fmt.Errorf("script %s was removed", f.path)
			}
			if event.Has(fsnotify.Write) {
				if err := f.drain(ctx, out); err != nil {
					return err
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			f.log.Warn("watcher error: %v", err)
		}
	}
}

// drain reads every complete line available and emits its buttons
func (f *Follower) drain(ctx context.Context, out chan<- calculator.Button) error {
	for {
		chunk, err := f.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read script: %w", err)
		}

		if !strings.HasSuffix(chunk, "\n") {
			f.pending += chunk
			return nil
		}

		line := f.pending + chunk
		f.pending = ""
		f.lineNo++

		buttons, perr := ParseLine(strings.TrimSuffix(line, "\n"), f.lineNo)
		if perr != nil {
			f.log.WarnWithFields("skipping script line", []logger.Field{logger.Error(perr)})
			continue
		}
		for _, b := range buttons {
			select {
			case out <- b:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// validateScriptPath validates that a script path is safe to follow
func validateScriptPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot follow directory, must be a file")
	}

	return nil
}

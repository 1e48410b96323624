package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
)

// ErrMongodNotFound is returned when no candidate mongod binary exists.
var ErrMongodNotFound = errors.New("mongod binary not found")

const defaultStartupWait = 3 * time.Second

// ProcessLauncher starts a local mongod when none is running.
type ProcessLauncher struct {
	candidates  []string
	startupWait time.Duration
	log         logrus.FieldLogger

	running func(ctx context.Context) (bool, error)
	exists  func(path string) bool
	start   func(path string) error
}

// NewMongodLauncher builds a launcher that tries candidates in order.
func NewMongodLauncher(candidates []string, log logrus.FieldLogger) *ProcessLauncher {
	return &ProcessLauncher{
		candidates:  candidates,
		startupWait: defaultStartupWait,
		log:         log,
		running:     mongodRunning,
		exists:      fileExists,
		start:       startDetached,
	}
}

// Ensure leaves a running mongod alone; otherwise it starts the first existing
// candidate and waits for it to come up.
func (l *ProcessLauncher) Ensure(ctx context.Context) error {
	running, err := l.running(ctx)
	if err != nil {
		l.log.WithError(err).Warn("could not list processes, trying to start mongod anyway")
	}
	if running {
		l.log.Info("mongod already running")
		return nil
	}

	path := ""
	for _, candidate := range l.candidates {
		if l.exists(candidate) {
			path = candidate
			break
		}
	}
	if path == "" {
		return ErrMongodNotFound
	}

	l.log.WithField("path", path).Info("starting mongod")
	if err := l.start(path); err != nil {
		return fmt.Errorf("start mongod: %w", err)
	}

	timer := time.NewTimer(l.startupWait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return nil
}

func mongodRunning(ctx context.Context) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if isMongodName(name) {
			return true, nil
		}
	}
	return false, nil
}

func isMongodName(name string) bool {
	name = strings.ToLower(name)
	return name == "mongod" || name == "mongod.exe"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func startDetached(path string) error {
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

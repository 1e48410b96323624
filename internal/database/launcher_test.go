package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher(candidates []string) (*ProcessLauncher, *[]string) {
	log, _ := test.NewNullLogger()
	l := NewMongodLauncher(candidates, log)
	l.startupWait = time.Millisecond
	started := &[]string{}
	l.start = func(path string) error {
		*started = append(*started, path)
		return nil
	}
	return l, started
}

func TestLauncherSkipsWhenRunning(t *testing.T) {
	l, started := newTestLauncher([]string{"/bin/mongod"})
	l.running = func(context.Context) (bool, error) { return true, nil }
	l.exists = func(string) bool { return true }

	require.NoError(t, l.Ensure(context.Background()))
	assert.Empty(t, *started)
}

func TestLauncherStartsFirstExistingCandidate(t *testing.T) {
	l, started := newTestLauncher([]string{"/missing/mongod", "/usr/bin/mongod", "/usr/local/bin/mongod"})
	l.running = func(context.Context) (bool, error) { return false, nil }
	l.exists = func(path string) bool { return path != "/missing/mongod" }

	require.NoError(t, l.Ensure(context.Background()))
	assert.Equal(t, []string{"/usr/bin/mongod"}, *started)
}

func TestLauncherNotFound(t *testing.T) {
	l, started := newTestLauncher([]string{"/a/mongod", "/b/mongod"})
	l.running = func(context.Context) (bool, error) { return false, nil }
	l.exists = func(string) bool { return false }

	assert.ErrorIs(t, l.Ensure(context.Background()), ErrMongodNotFound)
	assert.Empty(t, *started)
}

func TestLauncherProcessListFailureStillStarts(t *testing.T) {
	l, started := newTestLauncher([]string{"/usr/bin/mongod"})
	l.running = func(context.Context) (bool, error) { return false, errors.New("permission denied") }
	l.exists = func(string) bool { return true }

	require.NoError(t, l.Ensure(context.Background()))
	assert.Len(t, *started, 1)
}

func TestLauncherStartFailure(t *testing.T) {
	l, _ := newTestLauncher([]string{"/usr/bin/mongod"})
	l.running = func(context.Context) (bool, error) { return false, nil }
	l.exists = func(string) bool { return true }
	l.start = func(string) error { return errors.New("exec format error") }

	err := l.Ensure(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start mongod")
}

func TestIsMongodName(t *testing.T) {
	assert.True(t, isMongodName("mongod"))
	assert.True(t, isMongodName("MONGOD.EXE"))
	assert.False(t, isMongodName("mongos"))
	assert.False(t, isMongodName("mongodump"))
}

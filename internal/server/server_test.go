package server

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/cgpatracker/internal/app/repositories"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

func TestPurgeSessions(t *testing.T) {
	repo := repositories.NewMemorySessionRepository(time.Millisecond)
	require.NoError(t, repo.Save(context.Background(), "s1", grading.NewGradebook(grading.Coarse())))
	require.NoError(t, repo.Save(context.Background(), "s2", grading.NewGradebook(grading.Coarse())))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		purgeSessions(ctx, repo, 5*time.Millisecond, zerolog.Nop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge loop did not stop after cancel")
	}
}

func TestShutdown_StopsPurge(t *testing.T) {
	stopped := false
	s := &Server{logger: zerolog.Nop(), stopPurge: func() { stopped = true }}

	require.NoError(t, s.Shutdown(context.Background()))
	assert.True(t, stopped)
}

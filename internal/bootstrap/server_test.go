package bootstrap

import (
	"context"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingAuditLogger struct {
	mu      sync.Mutex
	entries []AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func TestServeUntil_AuditsShutdown(t *testing.T) {
	quit := make(chan os.Signal, 1)
	audit := &recordingAuditLogger{}
	done := make(chan struct{})

	go func() {
		serveUntil(http.NotFoundHandler(), ServerConfig{
			Name:            "test",
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, audit, quit)
		close(done)
	}()

	quit <- syscall.SIGTERM

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	assert.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	assert.Equal(t, "terminated", audit.entries[0].Meta["signal"])
}

package console

import (
	"sync"
	"time"

	"go-salaryslip/internal/slipclient"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie  = "slip_console_session"
	sessionIdleTTL = 30 * time.Minute
)

type session struct {
	workspace *slipclient.Workspace
	lastSeen  time.Time
}

// sessions keeps one Workspace per browser, keyed by a cookie. Sessions idle
// longer than ttl are dropped.
type sessions struct {
	api slipclient.SlipAPI
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	byID map[string]*session
}

func newSessions(api slipclient.SlipAPI) *sessions {
	return &sessions{
		api:  api,
		ttl:  sessionIdleTTL,
		now:  time.Now,
		byID: make(map[string]*session),
	}
}

func (s *sessions) workspace(c *gin.Context) *slipclient.Workspace {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.byID {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.byID, id)
		}
	}

	id, err := c.Cookie(sessionCookie)
	if sess, ok := s.byID[id]; err == nil && ok {
		sess.lastSeen = now
		return sess.workspace
	}

	id = uuid.New().String()
	sess := &session{workspace: slipclient.NewWorkspace(s.api), lastSeen: now}
	s.byID[id] = sess
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return sess.workspace
}

func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

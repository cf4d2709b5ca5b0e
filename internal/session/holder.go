package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/tipkart/internal/domain"
	"go.uber.org/zap"
)

// Holder keeps the placeholder identity of the current shopper. There is
// no authentication: any name and email are accepted.
type Holder struct {
	mu      sync.Mutex
	current *domain.Identity

	logger *zap.Logger
}

func NewHolder(logger *zap.Logger) *Holder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Holder{logger: logger}
}

// Login replaces any current identity and assigns it a new session id.
func (h *Holder) Login(identity domain.Identity) (domain.Identity, error) {
	if strings.TrimSpace(identity.Name) == "" {
		return domain.Identity{}, fmt.Errorf("name is empty")
	}
	if strings.TrimSpace(identity.Email) == "" {
		return domain.Identity{}, fmt.Errorf("email is empty")
	}

	identity.SessionID = uuid.New()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = &identity
	h.logger.Info("logged in", zap.String("email", identity.Email), zap.Stringer("session_id", identity.SessionID))

	return identity, nil
}

func (h *Holder) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil {
		h.logger.Info("logged out", zap.Stringer("session_id", h.current.SessionID))
	}
	h.current = nil
}

func (h *Holder) Current() (domain.Identity, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return domain.Identity{}, false
	}
	return *h.current, true
}

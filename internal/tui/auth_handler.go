package tui

import (
	"strings"

	"github.com/akyairhashvil/sitediary/internal/util"
)

// AuthResult represents the outcome of an unlock attempt.
type AuthResult struct {
	Success     bool
	ShouldRetry bool
	Message     string
}

// authHandler checks entered secrets against the configured hash. Failed
// attempts are not counted.
type authHandler struct {
	hash string
}

func newAuthHandler(hash string) *authHandler {
	return &authHandler{hash: hash}
}

func (h *authHandler) Validate(entered string) AuthResult {
	entered = strings.TrimSpace(entered)
	if entered == "" {
		return AuthResult{ShouldRetry: true, Message: "Password required"}
	}
	if h.hash == "" {
		return AuthResult{Message: "No password configured"}
	}
	if !util.CheckSecret(h.hash, entered) {
		return AuthResult{ShouldRetry: true, Message: "Password incorrect"}
	}
	return AuthResult{Success: true}
}

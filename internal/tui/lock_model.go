package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

// LockModel gates the form behind the shared secret. It relocks after
// AutoLockAfter without input.
type LockModel struct {
	Locked        bool
	Message       string
	SecretHash    string
	SecretInput   textinput.Model
	LastInput     time.Time
	AutoLockAfter time.Duration
}

func NewLockModel(autoLockAfter time.Duration, secretHash string, now time.Time) LockModel {
	input := textinput.New()
	input.Placeholder = "Password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 128
	input.Width = 40
	input.Focus()
	return LockModel{
		Locked:        true,
		SecretHash:    secretHash,
		SecretInput:   input,
		AutoLockAfter: autoLockAfter,
		LastInput:     now,
	}
}

// Idle reports whether the auto-lock period has passed since the last input.
func (l LockModel) Idle(now time.Time) bool {
	return l.AutoLockAfter > 0 && now.Sub(l.LastInput) >= l.AutoLockAfter
}

func (l *LockModel) Lock(message string) {
	l.Locked = true
	l.Message = message
	l.SecretInput.Reset()
	l.SecretInput.Focus()
}

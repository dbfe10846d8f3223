package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisure/pkg/logger"
)

type recordingMailService struct {
	mu       sync.Mutex
	sent     []string
	failures int
}

func (m *recordingMailService) SendMail(to, subject, body, ctaText, ctaURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *recordingMailService) delivered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func TestNotifierDeliversQueuedMail(t *testing.T) {
	mail := &recordingMailService{}
	n := NewMailNotifier(mail, logger.NewNop())
	n.Start()

	n.Notify(Notification{To: "a@test.io", Subject: "s"})
	n.Notify(Notification{To: "b@test.io", Subject: "s"})
	n.Stop() // drains the queue

	assert.ElementsMatch(t, []string{"a@test.io", "b@test.io"}, mail.delivered())
}

func TestNotifierRetriesTransientFailures(t *testing.T) {
	mail := &recordingMailService{failures: 1}
	n := NewMailNotifier(mail, logger.NewNop())
	n.Start()

	n.Notify(Notification{To: "a@test.io", Subject: "s"})
	n.Stop()

	require.Len(t, mail.delivered(), 1)
}

func TestNotifierDropsMailAfterStop(t *testing.T) {
	mail := &recordingMailService{}
	n := NewMailNotifier(mail, logger.NewNop())
	n.Start()
	n.Stop()

	assert.NotPanics(t, func() {
		n.Notify(Notification{To: "late@test.io", Subject: "s"})
	})
	assert.Empty(t, mail.delivered())
}

func TestNotifierIgnoresEmptyRecipient(t *testing.T) {
	mail := &recordingMailService{}
	n := NewMailNotifier(mail, logger.NewNop())
	n.Start()

	n.Notify(Notification{Subject: "no recipient"})
	n.Stop()

	assert.Empty(t, mail.delivered())
}

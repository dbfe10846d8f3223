package services

import (
	"sync"
	"time"

	"polisure/pkg/logger"
)

// Notification is an outbound email handed to the background worker.
type Notification struct {
	To      string
	Subject string
	Body    string
	CTAText string
	CTAURL  string
}

// Notifier queues best-effort notifications. Enqueueing never blocks the
// request path and delivery failures are only logged.
type Notifier interface {
	Notify(n Notification)
}

type MailNotifier struct {
	mail  IMailService
	log   *logger.Logger
	queue chan Notification
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

const (
	notifierQueueSize  = 64
	notifierMaxRetries = 3
)

func NewMailNotifier(mail IMailService, log *logger.Logger) *MailNotifier {
	return &MailNotifier{
		mail:  mail,
		log:   log.With("service", "Notifier"),
		queue: make(chan Notification, notifierQueueSize),
		done:  make(chan struct{}),
	}
}

func (n *MailNotifier) Notify(notification Notification) {
	if notification.To == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		n.log.Warn("notifier stopped, dropping", "to", notification.To, "subject", notification.Subject)
		return
	}
	select {
	case n.queue <- notification:
	default:
		n.log.Warn("notification queue full, dropping", "to", notification.To, "subject", notification.Subject)
	}
}

// Start launches the single delivery worker.
func (n *MailNotifier) Start() {
	go n.run()
}

// Stop closes the queue and waits for the worker to drain it. Notifications
// arriving after Stop are dropped rather than sent on the closed channel.
func (n *MailNotifier) Stop() {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()
	<-n.done
}

func (n *MailNotifier) run() {
	defer close(n.done)
	for notification := range n.queue {
		n.deliver(notification)
	}
}

func (n *MailNotifier) deliver(notification Notification) {
	var err error
	for attempt := 1; attempt <= notifierMaxRetries; attempt++ {
		err = n.mail.SendMail(
			notification.To,
			notification.Subject,
			notification.Body,
			notification.CTAText,
			notification.CTAURL,
		)
		if err == nil {
			return
		}
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	n.log.Error("notification delivery failed", "to", notification.To, "subject", notification.Subject, "error", err)
}

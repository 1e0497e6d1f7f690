package emails

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultSendTimeout = 20 * time.Second

// Notifier accepts messages for best-effort delivery.
type Notifier interface {
	Notify(msg Message)
}

// Dispatcher sends each message on its own goroutine, detached from the
// inbound request. Failures are logged and dropped; there are no retries.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher returns a dispatcher; a nil sender turns Notify into a logged no-op.
func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Dispatcher{sender: sender, timeout: timeout}
}

func (d *Dispatcher) Notify(msg Message) {
	if d == nil || d.sender == nil {
		log.Warn().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sender not configured, skipping email")
		return
	}
	if msg.To == "" {
		log.Warn().Str("subject", msg.Subject).Msg("email without recipient dropped")
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("subject", msg.Subject).Msg("email send panicked")
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sender.Send(ctx, msg); err != nil {
			log.Error().Err(err).Str("to", msg.To).Str("subject", msg.Subject).Msg("failed to send email")
			return
		}
		log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("email sent")
	}()
}

// Wait blocks until in-flight sends finish or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostpaws/petfinder-system/internal/api/metrics"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Throttle abstracts the per-address rate limit store (Redis).
type Throttle interface {
	IsThrottled(ctx context.Context, email string) (bool, error)
	Mark(ctx context.Context, email string) error
}

// Dispatcher delivers verification mail asynchronously on a fixed set of
// workers, sharded by recipient address so mail to the same address is
// delivered in order. It implements ports.Mailer: SendVerification enqueues
// and returns immediately, making delivery fire-and-forget for callers.
type Dispatcher struct {
	workers  []chan ports.VerificationMail
	sender   ports.Mailer
	throttle Throttle
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers sending
// through sender. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.Mailer, throttle Throttle, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.VerificationMail, numWorkers),
		sender:   sender,
		throttle: throttle,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.VerificationMail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// SendVerification enqueues the mail on the worker responsible for its
// recipient. Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) SendVerification(_ context.Context, mail ports.VerificationMail) error {
	d.workers[d.shardIndex(mail.To)] <- mail
	return nil
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.VerificationMail) {
	for {
		select {
		case <-ctx.Done():
			return
		case mail, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, mail)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, mail ports.VerificationMail) {
	throttled, err := d.throttle.IsThrottled(ctx, mail.To)
	if err != nil {
		d.log.Warn().Err(err).Str("to", mail.To).Msg("throttle check failed, sending anyway")
	} else if throttled {
		metrics.MailSentTotal.WithLabelValues("throttled").Inc()
		d.log.Debug().Str("to", mail.To).Msg("verification mail throttled")
		return
	}

	start := time.Now()
	if err := d.sender.SendVerification(ctx, mail); err != nil {
		metrics.MailSentTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).Str("to", mail.To).Int("worker_id", workerID).Msg("mail delivery failed")
		return
	}
	metrics.MailDeliveryDuration.Observe(time.Since(start).Seconds())
	metrics.MailSentTotal.WithLabelValues("sent").Inc()

	if err := d.throttle.Mark(ctx, mail.To); err != nil {
		d.log.Warn().Err(err).Str("to", mail.To).Msg("failed to set throttle key")
	}
}

package kafka

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Handler returns nil once the message is done and its offset may be
// committed. Any other error is retried in place with backoff, holding back
// the rest of that partition, until it succeeds or the consumer stops. An
// error wrapped with Permanent is logged and the message is committed.
type Handler func(ctx context.Context, m kafka.Message) error

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as one a retry cannot fix, such as a malformed message.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

const (
	retryMin = 200 * time.Millisecond
	retryMax = 30 * time.Second
)

type Consumer struct {
	r       *kafka.Reader
	workers int
}

func NewConsumer(brokers []string, group, topic string, workers int) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // commit explicitly after the handler succeeds
	})
	return &Consumer{r: r, workers: max(workers, 1)}
}

// Start fetches until ctx is cancelled. Each partition always goes to the same
// worker, so its messages are handled and committed in offset order. It
// returns nil on cancellation and the fetch error otherwise.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	queues := make([]chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := range queues {
		queues[i] = make(chan kafka.Message, 4)
		wg.Add(1)
		go func(jobs <-chan kafka.Message) {
			defer wg.Done()
			for m := range jobs {
				if err := handle(ctx, h, m, retryMin, retryMax); err != nil {
					// stopping: leave the offset uncommitted for the next run
					continue
				}
				if err := c.r.CommitMessages(ctx, m); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("commit %s/%d@%d: %v", m.Topic, m.Partition, m.Offset, err)
				}
			}
		}(queues[i])
	}
	defer wg.Wait()
	defer func() {
		for _, q := range queues {
			close(q)
		}
	}()

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case queues[workerFor(m.Partition, c.workers)] <- m:
		case <-ctx.Done():
			return nil
		}
	}
}

func workerFor(partition, workers int) int {
	if partition < 0 {
		partition = -partition
	}
	return partition % workers
}

// handle runs h until it succeeds or fails permanently, sleeping between
// attempts with doubling backoff. It returns an error only when ctx ends
// first.
func handle(ctx context.Context, h Handler, m kafka.Message, wait, maxWait time.Duration) error {
	for {
		err := h(ctx, m)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			log.Printf("drop %s/%d@%d: %v", m.Topic, m.Partition, m.Offset, err)
			return nil
		}
		log.Printf("handle %s/%d@%d (retry in %s): %v", m.Topic, m.Partition, m.Offset, wait, err)

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, maxWait)
	}
}

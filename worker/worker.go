// Package worker runs HTTP exchanges off the interactive loop. One Worker owns
// a request queue and a response queue; requests are handled one at a time in
// submission order, so responses come back in the same order.
package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nojima/httpui/exchange"
	"github.com/nojima/httpui/input"
	"github.com/nojima/httpui/queue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Worker struct {
	client    *http.Client
	requests  *queue.Queue[input.Request]
	responses *queue.Queue[string]
	logger    *logrus.Entry
}

func New(client *http.Client, logger *logrus.Logger) *Worker {
	return &Worker{
		client:    client,
		requests:  queue.New[input.Request](),
		responses: queue.New[string](),
		logger:    logger.WithField("component", "worker"),
	}
}

// Submit hands a request to the worker without waiting.
func (w *Worker) Submit(request input.Request) error {
	if err := w.requests.Send(request); err != nil {
		return errors.Wrap(err, "submitting request")
	}
	return nil
}

// TryRecv returns at most one finished response without waiting.
func (w *Worker) TryRecv() (string, bool) {
	return w.responses.TryRecv()
}

func (w *Worker) Recv(ctx context.Context) (string, error) {
	text, err := w.responses.Recv(ctx)
	if err != nil {
		return "", errors.Wrap(err, "receiving response")
	}
	return text, nil
}

// Run handles requests until ctx is cancelled or the worker is closed.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Debug("worker started")
	defer w.logger.Debug("worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case request, ok := <-w.requests.Out():
			if !ok {
				return
			}
			w.handle(ctx, &request)
		}
	}
}

func (w *Worker) handle(ctx context.Context, request *input.Request) {
	logger := w.logger.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"method":     request.Method,
		"url":        request.URL,
	})
	logger.Info("sending request")

	start := time.Now()
	text, err := exchange.Exchange(ctx, w.client, request)
	elapsed := time.Since(start)

	if err != nil {
		var e *exchange.Error
		if errors.As(err, &e) {
			logger = logger.WithField("kind", e.Kind.String())
		}
		logger.WithError(err).WithField("elapsed", elapsed).Warn("request failed")
	} else {
		logger.WithFields(logrus.Fields{
			"elapsed": elapsed,
			"size":    len(text),
		}).Info("request finished")
	}

	if err := w.responses.Send(ResponseText(text, err)); err != nil {
		logger.WithError(err).Error("failed to deliver response")
	}
}

// ResponseText is the single place where a failed exchange becomes display text.
func ResponseText(text string, err error) string {
	if err != nil {
		return err.Error()
	}
	return text
}

// CloseResponses drops the receiving side. The worker keeps handling requests
// and logs each response it can no longer deliver.
func (w *Worker) CloseResponses() {
	w.responses.Close()
}

// Close stops the queues. Submit fails afterwards and Run returns.
func (w *Worker) Close() {
	w.requests.Close()
	w.responses.Close()
}

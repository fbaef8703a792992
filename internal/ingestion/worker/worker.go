package worker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/vectorbridge-backend/internal/ingestion/dispatcher"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	"github.com/yungbote/vectorbridge-backend/internal/platform/natsx"
)

const restartDelay = 5 * time.Second

// Worker supervises the consume loop and the readiness probe. A fatal
// subscriber error tears the connection down and reconnects after a short
// pause; only context cancellation ends the loop.
type Worker struct {
	log        *logger.Logger
	cfg        natsx.Config
	dispatcher *dispatcher.Dispatcher
	probe      *Probe
}

func New(log *logger.Logger, cfg natsx.Config, d *dispatcher.Dispatcher, probe *Probe) *Worker {
	return &Worker{
		log:        log.With("component", "Worker"),
		cfg:        cfg,
		dispatcher: d,
		probe:      probe,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return w.probe.Run(ctx)
	})
	group.Go(func() error {
		w.consumeLoop(ctx)
		return nil
	})
	return group.Wait()
}

func (w *Worker) consumeLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := w.runOnce(ctx); err != nil {
			w.log.Error("Consume loop failed, restarting", "retry_in", restartDelay, "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) error {
	sub, err := natsx.NewSubscriber(w.log, w.cfg)
	if err != nil {
		return err
	}
	if err := sub.Connect(); err != nil {
		return err
	}
	defer sub.Close()
	w.probe.SetReady(true)
	defer w.probe.SetReady(false)
	return sub.Consume(ctx, w.dispatcher.HandleMessage)
}

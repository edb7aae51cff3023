// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/service"
)

const defaultProvisionInterval = 2 * time.Second

type provisioningWorker struct {
	provisioning service.ProvisioningService
	interval     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProvisioningWorker returns a worker that advances pending storage
// resources every interval. A non-positive interval falls back to two
// seconds. The worker is idle until Start is called.
func NewProvisioningWorker(provisioning service.ProvisioningService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProvisionInterval
	}
	return &provisioningWorker{
		provisioning: provisioning,
		interval:     interval,
		logger:       logger,
	}
}

// Start stops any previously running loop and launches a new one. Each tick
// drains pending resources batch by batch until a batch comes back empty.
func (p *provisioningWorker) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.logger.Info().Dur("interval", p.interval).Msg("provisioning worker started")
		for {
			select {
			case <-jobCtx.Done():
				p.logger.Info().Msg("provisioning worker stopped")
				return
			case <-t.C:
				p.drain(jobCtx)
			}
		}
	}()
}

func (p *provisioningWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := p.provisioning.ProvisionPending(ctx)
		if err != nil {
			p.logger.Err(err).Msg("provisioning pending resources failed")
			return
		}
		if n == 0 {
			return
		}
		p.logger.Debug().Int("count", n).Msg("provisioned resources")
	}
}

// Stop cancels the loop and waits for it to exit.
func (p *provisioningWorker) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-file-vault/internal/config"
	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/store"
	"github.com/MKhiriev/go-file-vault/internal/utils"
	"github.com/MKhiriev/go-file-vault/models"
)

// ReasonCapacityExhausted is recorded on resources refused because the
// server hosts MaxResources already.
const ReasonCapacityExhausted = "capacity exhausted"

type provisioningService struct {
	resources store.ResourceRepository
	chunks    store.ChunkStore

	batchSize    int
	maxResources int
	handles      *utils.UUIDGenerator
	logger       *logger.Logger
}

func NewProvisioningService(resources store.ResourceRepository, chunks store.ChunkStore, cfg config.Workers, logger *logger.Logger) ProvisioningService {
	return &provisioningService{
		resources:    resources,
		chunks:       chunks,
		batchSize:    cfg.ProvisionBatchSize,
		maxResources: cfg.MaxResources,
		handles:      utils.NewUUIDGenerator(),
		logger:       logger,
	}
}

// ProvisionPending takes up to batchSize requested resources and either
// allocates a chunk namespace for each or marks it failed. A failure on one
// resource does not stop the batch.
func (p *provisioningService) ProvisionPending(ctx context.Context) (int, error) {
	requested, err := p.resources.ListRequested(ctx, p.batchSize)
	if err != nil {
		return 0, fmt.Errorf("error listing requested resources: %w", err)
	}

	var (
		handled int
		errs    []error
	)
	for _, r := range requested {
		if err = ctx.Err(); err != nil {
			return handled, err
		}
		if err = p.provision(ctx, r.Owner); err != nil {
			errs = append(errs, err)
			continue
		}
		handled++
	}

	return handled, errors.Join(errs...)
}

func (p *provisioningService) provision(ctx context.Context, owner models.Principal) error {
	log := p.logger.With().Str("owner", owner.String()).Logger()

	if p.maxResources > 0 {
		resolved, err := p.resources.CountResolved(ctx)
		if err != nil {
			return fmt.Errorf("error counting resources: %w", err)
		}
		if resolved >= p.maxResources {
			log.Warn().Int("resolved", resolved).Msg("refusing resource, capacity exhausted")
			return p.fail(ctx, owner, ReasonCapacityExhausted)
		}
	}

	handle := models.ResourceHandle(p.handles.Generate())
	if err := p.chunks.CreateNamespace(ctx, handle); err != nil {
		log.Err(err).Msg("error creating chunk namespace")
		return p.fail(ctx, owner, err.Error())
	}

	if err := p.resources.MarkResolved(ctx, owner, handle); err != nil {
		return fmt.Errorf("error marking resource resolved: %w", err)
	}

	log.Info().Str("resource", handle.String()).Msg("resource provisioned")
	return nil
}

func (p *provisioningService) fail(ctx context.Context, owner models.Principal, reason string) error {
	if err := p.resources.MarkFailed(ctx, owner, reason); err != nil {
		return fmt.Errorf("error marking resource failed: %w", err)
	}
	return nil
}

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-file-vault/internal/logger"
	"github.com/MKhiriev/go-file-vault/internal/mock"
)

const tick = 10 * time.Millisecond

func TestProvisioningWorker_DrainsUntilEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProvisioningService(ctrl)

	drained := make(chan struct{})
	gomock.InOrder(
		svc.EXPECT().ProvisionPending(gomock.Any()).Return(3, nil),
		svc.EXPECT().ProvisionPending(gomock.Any()).Return(1, nil),
		svc.EXPECT().ProvisionPending(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
			close(drained)
			return 0, nil
		}),
		svc.EXPECT().ProvisionPending(gomock.Any()).Return(0, nil).AnyTimes(),
	)

	w := NewProvisioningWorker(svc, tick, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-drained:
	case <-time.After(time.Second):
		t.Fatal("worker did not drain pending resources")
	}
}

func TestProvisioningWorker_ErrorEndsTickButNotLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProvisioningService(ctrl)

	var calls atomic.Int32
	svc.EXPECT().ProvisionPending(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("database unavailable")
	}).MinTimes(2)

	w := NewProvisioningWorker(svc, tick, logger.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, tick)
	w.Stop()
}

func TestProvisioningWorker_StopWaitsForLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProvisioningService(ctrl)
	svc.EXPECT().ProvisionPending(gomock.Any()).Return(0, nil).AnyTimes()

	w := NewProvisioningWorker(svc, tick, logger.Nop())
	w.Start(context.Background())
	w.Stop()

	// Stop is idempotent, and no call may happen after it returns.
	w.Stop()
	ctrl.Finish()
}

func TestProvisioningWorker_ContextCancelStopsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProvisioningService(ctrl)
	svc.EXPECT().ProvisionPending(gomock.Any()).Return(0, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewProvisioningWorker(svc, tick, logger.Nop()).(*provisioningWorker)
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after context cancellation")
	}
}

func TestNewProvisioningWorker_DefaultInterval(t *testing.T) {
	w := NewProvisioningWorker(nil, 0, logger.Nop()).(*provisioningWorker)

	assert.Equal(t, defaultProvisionInterval, w.interval)
}

package services

import (
	"context"
	"time"

	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// defaultProbeTimeout bounds each dependency check.
const defaultProbeTimeout = 3 * time.Second

type HealthService struct {
	store        Pinger
	redisClient  redis.Cmdable
	version      string
	startTime    time.Time
	probeTimeout time.Duration
	log          *zap.SugaredLogger
}

// NewHealthService builds a health checker. redisClient may be nil when rate
// limiting is disabled.
func NewHealthService(store Pinger, redisClient redis.Cmdable, version string) *HealthService {
	return &HealthService{
		store:        store,
		redisClient:  redisClient,
		version:      version,
		startTime:    time.Now(),
		probeTimeout: defaultProbeTimeout,
		log:          logger.GetLogger(),
	}
}

// CheckHealth reports the store and redis state. A store outage only
// degrades the service: submissions still relay email without it.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	storeStatus := h.checkStore(ctx)
	components["store"] = storeStatus
	if storeStatus.Status != types.HealthStatusUp {
		overallStatus = types.HealthStatusDegraded
	}

	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status != types.HealthStatusUp {
			overallStatus = types.HealthStatusDegraded
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkStore(ctx context.Context) types.HealthComponent {
	if h.store == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Store not configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Errorw("Store health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Store connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}

package cmd

import (
	"log/slog"

	httpin "orderintegrity/internal/adapters/in/http"
	"orderintegrity/internal/adapters/out/metrics"
	"orderintegrity/internal/adapters/out/postgres"
	"orderintegrity/internal/adapters/out/rediscache"
	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/application/usecases/queries"
	"orderintegrity/internal/core/domain/services"
	"orderintegrity/internal/core/ports"
	"orderintegrity/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	metrics    *metrics.Metrics
	cache      *rediscache.DefaultStatusCache
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CompositionRoot {
	c := &CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		logger:  logger,
		metrics: m,
		cache:   rediscache.NewDefaultStatusCache(redisClient, configs.RedisDefaultStatusTTL, logger),
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, FuncSaveHookFactory(c.createSaveHooks))
	return c
}

// createSaveHooks builds the pre-save hooks of one unit of work. Assignment counts come
// straight from the transaction's registry; only default statuses go through the cache.
func (c *CompositionRoot) createSaveHooks(registry ports.StatusRegistry) []ports.OrderSaveHook {
	integrity := services.NewStateStatusIntegrity(registry, c.cache.Wrap(registry), c.logger)
	return []ports.OrderSaveHook{
		metrics.NewInstrumentedSaveHook(integrity, c.metrics),
	}
}

func (c *CompositionRoot) CreateSaveOrderCommandHandler() commands.SaveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignStatusCommandHandler() commands.AssignStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStatusCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateUnassignStatusCommandHandler() commands.UnassignStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignStatusCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateCheckOrderIntegrityQueryHandler() queries.CheckOrderIntegrityQueryHandler {
	checkers := FuncIntegrityCheckerFactory(func(registry ports.StatusRegistry) queries.IntegrityChecker {
		return services.NewStateStatusIntegrity(registry, c.cache.Wrap(registry), c.logger)
	})
	return queries.NewCheckOrderIntegrityQueryHandler(c.uowFactory, checkers)
}

func (c *CompositionRoot) CreateGetInconsistentOrdersQueryHandler() queries.GetInconsistentOrdersQueryHandler {
	return queries.NewGetInconsistentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStateStatusesQueryHandler() queries.GetStateStatusesQueryHandler {
	return queries.NewGetStateStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSaveOrderCommandHandler(),
		c.CreateAssignStatusCommandHandler(),
		c.CreateUnassignStatusCommandHandler(),
		c.CreateCheckOrderIntegrityQueryHandler(),
		c.CreateGetInconsistentOrdersQueryHandler(),
		c.CreateGetStateStatusesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	audit := jobs.NewIntegrityAuditJob(
		c.CreateGetInconsistentOrdersQueryHandler(),
		c.metrics,
		c.configs.AuditSchedule,
		c.configs.AuditLimit,
		c.logger,
	)
	return jobs.NewJobManager(audit)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncSaveHookFactory func(registry ports.StatusRegistry) []ports.OrderSaveHook

func (f FuncSaveHookFactory) Create(registry ports.StatusRegistry) []ports.OrderSaveHook {
	return f(registry)
}

type FuncIntegrityCheckerFactory func(registry ports.StatusRegistry) queries.IntegrityChecker

func (f FuncIntegrityCheckerFactory) Create(registry ports.StatusRegistry) queries.IntegrityChecker {
	return f(registry)
}

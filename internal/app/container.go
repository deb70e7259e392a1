package app

import (
	"gorm.io/gorm"

	"github.com/redis/go-redis/v9"

	"github.com/you/marketsvc/domain"
	"github.com/you/marketsvc/internal/config"
	"github.com/you/marketsvc/internal/infrastructure/database"
	"github.com/you/marketsvc/internal/infrastructure/notifications"
	"github.com/you/marketsvc/internal/infrastructure/repositories"
	"github.com/you/marketsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	ProductRepo    domain.ProductRepository
	ProfileRepo    domain.ProfileRepository
	SubscriberRepo domain.SubscriberRepository
	LogRepo        domain.VerificationLogRepository

	// Services
	Gateway         *notifications.TwilioGateway
	VerificationSvc domain.VerificationService
	SearchSvc       domain.SearchService
	ViewCounter     domain.ViewCounter
	NoveltySvc      domain.NoveltyNotifier
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.ProfileRepo = repositories.NewProfileRepository(c.DB)
	c.SubscriberRepo = repositories.NewSubscriberRepository(c.DB)
	c.LogRepo = repositories.NewVerificationLogRepository(c.DB)
}

func (c *Container) initServices() {
	c.Gateway = notifications.NewTwilioGateway(
		c.Config.SMSAccountSID,
		c.Config.SMSAuthToken,
		c.Config.SMSFromNumber,
	)

	c.VerificationSvc = services.NewVerificationService(
		c.Gateway,
		c.ProfileRepo,
		c.LogRepo,
		services.VerificationConfig{SMSTimeout: c.Config.SMSTimeout},
	)
	c.SearchSvc = services.NewSearchService(c.ProductRepo)
	c.ViewCounter = services.NewViewCounter(c.RedisClient, c.Config.ViewTTL)
	c.NoveltySvc = services.NewNoveltyService(c.SubscriberRepo, c.Gateway)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

package provider

import (
	"time"

	"github.com/simplyfresh/simplyfresh/internal/authz"
	"github.com/simplyfresh/simplyfresh/internal/cache"
	"github.com/simplyfresh/simplyfresh/internal/config"
	"github.com/simplyfresh/simplyfresh/internal/logger"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/queue"
	"github.com/simplyfresh/simplyfresh/internal/repository"
	"github.com/simplyfresh/simplyfresh/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo   repository.AdminRepository
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	PromoRepo   repository.PromoCodeRepository
	PointRepo   repository.PointRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	UserAuthService   *service.UserAuthService
	CaptchaService    *service.CaptchaService
	ProductService    *service.ProductService
	CartService       *service.CartService
	PromoService      *service.PromoService
	PromoAdminService *service.PromoAdminService
	CheckoutService   *service.CheckoutService
	OrderService      *service.OrderService
	PointsService     *service.PointsService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PromoRepo = repository.NewPromoCodeRepository(db)
	c.PointRepo = repository.NewPointRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	guestTTL := time.Duration(c.Config.Cart.GuestTTLHours) * time.Hour
	if guestTTL <= 0 {
		guestTTL = 72 * time.Hour
	}

	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, guestTTL)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.CartService)
	c.PromoService = service.NewPromoService(c.PromoRepo)
	c.PromoAdminService = service.NewPromoAdminService(c.PromoRepo)
	c.PointsService = service.NewPointsService(c.UserRepo, c.PointRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.QueueClient)
	c.CheckoutService = service.NewCheckoutService(service.CheckoutServiceDeps{
		CartService:   c.CartService,
		PromoService:  c.PromoService,
		CartRepo:      c.CartRepo,
		ProductRepo:   c.ProductRepo,
		OrderRepo:     c.OrderRepo,
		UserRepo:      c.UserRepo,
		PromoRepo:     c.PromoRepo,
		PointRepo:     c.PointRepo,
		QueueClient:   c.QueueClient,
		Currency:      c.Config.Store.Currency,
		PointsPerUnit: c.Config.Store.PointsPerUnit,
		OrderNoPrefix: c.Config.Store.OrderNoPrefix,
	})
}

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"eveshield-be/internal/config"
	"eveshield-be/internal/controller"
	"eveshield-be/internal/pkg/eventbus"
	"eveshield-be/internal/pkg/evidence"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/pkg/mailer"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/repository/memory"
	"eveshield-be/internal/repository/unitofwork"
	"eveshield-be/internal/service"
	"eveshield-be/pkg/admin/dashboard"
	adminUser "eveshield-be/pkg/admin/user"
	"eveshield-be/pkg/chatbot"
	pktNats "eveshield-be/pkg/nats"
	"eveshield-be/pkg/ratelimit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const countyCacheTTL = 5 * time.Minute

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	ReportController    controller.IReportController
	DirectoryController controller.IDirectoryController
	ChatbotController   controller.IChatbotController
	ResourceController  controller.IResourceController
	AdminController     controller.IAdminController
	SiteController      controller.ISiteController

	// Background workers, started by cmd/rest
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	closers []func()
}

// Close releases the broker connections. Safe to call once at shutdown.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	if cfg.Security.JWTSecret == "" {
		return nil, service.ErrMissingJWTSecret
	}

	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. In-process alert bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Brokers. Both are optional: the API keeps serving without them.
	var sink eventbus.Sink
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
	if err != nil {
		sysLogger.Warn("BOOT", "NATS publisher unavailable, domain events disabled", map[string]interface{}{"error": err.Error()})
	} else {
		sink = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	var subscriber service.EventSubscriber
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
	if err != nil {
		sysLogger.Warn("BOOT", "NATS subscriber unavailable, staff notifications disabled", map[string]interface{}{"error": err.Error()})
	} else {
		subscriber = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	events := eventbus.NewPublisher(sink, sysLogger)

	var limiter ratelimit.Limiter = ratelimit.Noop{}
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOT", "Failed to parse Redis URL, using it as an address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			sysLogger.Warn("BOOT", "Redis unreachable, report rate limiting fails open", map[string]interface{}{"error": err.Error()})
		}
		limiter = ratelimit.NewRedisLimiter(rdb, "reports", cfg.Limits.ReportsPerWindow, cfg.Limits.ReportWindow)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 4. Services
	chatbotService, err := service.NewChatbotService(
		chatbot.NewMentalHealthResolver(chatbot.DefaultMentalHealthKnowledgeBase(), nil),
		chatbot.NewLegalResolver(chatbot.DefaultLegalKnowledgeBase()),
		sysLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("chatbot knowledge base: %w", err)
	}

	reportService := service.NewReportService(
		uowFactory,
		evidence.NewStore(cfg.App.UploadDir, cfg.Limits.MaxUploadBytes),
		limiter,
		service.NewPublisherService(service.ReportAlertTopic, pubSub),
		events,
		sysLogger,
	)
	directoryService := service.NewDirectoryService(uowFactory, memory.NewCountyCache(countyCacheTTL), sysLogger)
	resourceService := service.NewResourceService(uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, events, cfg.Security.JWTSecret, cfg.Security.TokenTTL, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, subscriber, sysLogger)
	adminService := service.NewAdminService(
		uowFactory,
		sysLogger,
		dashboard.NewAggregator(sysLogger),
		adminUser.NewManager(sysLogger, events),
	)

	c.ConsumerService = service.NewConsumerService(
		pubSub,
		service.ReportAlertTopic,
		emailService,
		cfg.SMTP.StaffAlertEmail,
		cfg.App.BaseURL,
		sysLogger,
	)
	c.NotificationService = notificationService

	// 5. Controllers
	auth := serverutils.NewJwtMiddleware(cfg.Security.JWTSecret)

	c.AuthController = controller.NewAuthController(authService)
	c.UserController = controller.NewUserController(userService, auth)
	c.ReportController = controller.NewReportController(reportService, auth)
	c.DirectoryController = controller.NewDirectoryController(directoryService, auth)
	c.ChatbotController = controller.NewChatbotController(chatbotService, sysLogger)
	c.ResourceController = controller.NewResourceController(resourceService, auth)
	c.AdminController = controller.NewAdminController(adminService, notificationService, auth)
	c.SiteController = controller.NewSiteController(cfg.Site)

	return c, nil
}

package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	authsvc "nvp-welfare-backend/internal/application/auth"
	beneficiarysvc "nvp-welfare-backend/internal/application/beneficiaries"
	certsvc "nvp-welfare-backend/internal/application/certificates"
	contentsvc "nvp-welfare-backend/internal/application/content"
	donationsvc "nvp-welfare-backend/internal/application/donations"
	"nvp-welfare-backend/internal/application/emails"
	enquirysvc "nvp-welfare-backend/internal/application/enquiries"
	healthsvc "nvp-welfare-backend/internal/application/health"
	membersvc "nvp-welfare-backend/internal/application/members"
	"nvp-welfare-backend/internal/application/payments"
	receiptsvc "nvp-welfare-backend/internal/application/receipts"
	statssvc "nvp-welfare-backend/internal/application/stats"
	uploadsvc "nvp-welfare-backend/internal/application/uploads"
	usersvc "nvp-welfare-backend/internal/application/users"
	"nvp-welfare-backend/internal/config"
	"nvp-welfare-backend/internal/infrastructure/database"
	authhandler "nvp-welfare-backend/internal/interfaces/handlers/auth"
	beneficiaryhandler "nvp-welfare-backend/internal/interfaces/handlers/beneficiaries"
	certhandler "nvp-welfare-backend/internal/interfaces/handlers/certificates"
	contenthandler "nvp-welfare-backend/internal/interfaces/handlers/content"
	donationhandler "nvp-welfare-backend/internal/interfaces/handlers/donations"
	enquiryhandler "nvp-welfare-backend/internal/interfaces/handlers/enquiries"
	healthhandler "nvp-welfare-backend/internal/interfaces/handlers/health"
	memberhandler "nvp-welfare-backend/internal/interfaces/handlers/members"
	receipthandler "nvp-welfare-backend/internal/interfaces/handlers/receipts"
	statshandler "nvp-welfare-backend/internal/interfaces/handlers/stats"
	uploadhandler "nvp-welfare-backend/internal/interfaces/handlers/uploads"
	userhandler "nvp-welfare-backend/internal/interfaces/handlers/users"
	"nvp-welfare-backend/internal/middleware"
	"nvp-welfare-backend/internal/pkg/constants"
	"nvp-welfare-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	emailTimeout   = 15 * time.Second
	authRateMax    = 20
	authRateWindow = 15 * time.Minute
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Deps are the external resources the routes are wired against.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client // optional; health counters are disabled without it
	Sender  emails.Sender // optional; emails are dropped without it
	Gateway payments.Gateway
	Storage uploadsvc.Storage
}

// Server is the wired application plus the handles main must release on shutdown.
type Server struct {
	App    *fiber.App
	DB     *gorm.DB
	Redis  *redis.Client
	Mailer *emails.Dispatcher
}

// CreateApp opens the database and Redis from cfg, migrates, seeds the admin account and wires all routes.
func CreateApp(cfg *config.Config) (*Server, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("router: DATABASE_URL is required")
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("router: open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("router: migrate: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("router: parse REDIS_URL: %w", err)
		}
		rdb = redis.NewClient(opt)
	}

	var sender emails.Sender
	if cfg.SendinblueAPIKey != "" {
		sender = &emails.BrevoClient{APIKey: cfg.SendinblueAPIKey, MailFrom: cfg.MailFrom, FromName: cfg.MailFromName}
	} else {
		log.Warn().Msg("SENDINBLUE_API_KEY not set; notification emails are disabled")
	}

	gateway := payments.New(cfg.PaymentProvider, cfg.PaymentKeySecret, cfg.MidtransEnv)
	if gateway == nil {
		log.Warn().Str("provider", cfg.PaymentProvider).Msg("payment gateway not configured; online donations are disabled")
	}

	srv := New(cfg, Deps{
		DB:      db,
		Redis:   rdb,
		Sender:  sender,
		Gateway: gateway,
		Storage: storageFor(cfg),
	})

	seeder := &authsvc.Service{DB: db}
	if err := seeder.SeedAdmin(context.Background(), cfg.SeedAdminEmail, cfg.SeedAdminPassword, ""); err != nil {
		return nil, err
	}
	return srv, nil
}

func storageFor(cfg *config.Config) uploadsvc.Storage {
	if cfg.StorageDriver == "supabase" {
		return &uploadsvc.SupabaseStorage{
			BaseURL:   cfg.SupabaseURL,
			SecretKey: cfg.SupabaseSecretKey,
			Bucket:    cfg.SupabaseBucket,
			Client:    &http.Client{Timeout: 30 * time.Second},
		}
	}
	return &uploadsvc.LocalStorage{Dir: cfg.UploadDir}
}

// New wires middleware and every route against deps.
func New(cfg *config.Config, deps Deps) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.TrustedProxies,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableIPValidation:      true,
		BodyLimit:               uploadsvc.MaxBytes + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(compress.New())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.CORSOrigins,
		AllowLocalhost: !cfg.IsProduction(),
	}))
	app.Use(middleware.HealthMarker(deps.Redis))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	db := deps.DB
	mailer := emails.NewDispatcher(deps.Sender, emailTimeout)
	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	requireAuth := middleware.RequireAuth(issuer)
	can := middleware.AuthorizePermission

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "NVP Welfare Foundation India API", "status": "running"})
	})

	hh := &healthhandler.Handlers{
		Rdb: deps.Redis,
		Collector: &healthsvc.Collector{
			Rdb:    deps.Redis,
			DB:     &gormDBPinger{db: db},
			Probes: []healthsvc.Probe{healthsvc.GatewayProbe(cfg.PaymentProvider)},
		},
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)
	app.Get("/health/reset", hh.Reset)

	api := app.Group("/api")

	// Auth
	ah := &authhandler.Handlers{Service: &authsvc.Service{DB: db, Tokens: issuer}}
	limit := middleware.AuthRateLimiter(authRateMax, authRateWindow)
	api.Post("/auth/register", limit, ah.Register)
	api.Post("/auth/login", limit, ah.Login)
	api.Get("/auth/me", requireAuth, ah.Me)

	// Membership applications
	mh := &memberhandler.Handlers{Service: &membersvc.Service{DB: db}}
	mg := api.Group("/members", requireAuth)
	mg.Post("/", can(constants.ViewOwnRecords), mh.Create)
	mg.Get("/", can(constants.ViewOwnRecords), mh.List)
	mg.Patch("/:id/status", can(constants.ManageMembers), mh.UpdateStatus)
	mg.Delete("/:id", can(constants.ManageMembers), mh.Delete)

	// Account approval
	uh := &userhandler.Handlers{Service: &usersvc.Service{DB: db, Notify: mailer}}
	ug := api.Group("/users", requireAuth, can(constants.ManageUsers))
	ug.Get("/members", uh.ListMembers)
	ug.Patch("/:id/approve", uh.Approve)
	ug.Patch("/:id/reject", uh.Reject)

	// Donations
	ds := &donationsvc.Service{
		DB:            db,
		Gateway:       deps.Gateway,
		Notify:        mailer,
		KeyID:         cfg.PaymentKeyID,
		Currency:      cfg.PaymentCurrency,
		VerifyBaseURL: cfg.VerifyBaseURL,
	}
	dh := &donationhandler.Handlers{Service: ds}
	wh := &donationhandler.WebhookHandler{Service: ds, StripeSecret: cfg.PaymentWebhookSecret}
	if cfg.PaymentProvider == payments.ProviderMidtrans {
		wh.MidtransKey = cfg.PaymentKeySecret
	}
	api.Post("/donations/create-order", dh.CreateOrder)
	api.Post("/donations/verify-payment", dh.VerifyPayment)
	api.Post("/donations/webhook/stripe", wh.Stripe)
	api.Post("/donations/webhook/midtrans", wh.Midtrans)
	dg := api.Group("/donations", requireAuth)
	dg.Post("/offline", can(constants.ManageDonations), dh.RecordOffline)
	dg.Get("/", can(constants.ViewOwnRecords), dh.List)
	dg.Delete("/:id", can(constants.ManageDonations), dh.Delete)

	// Certificates
	ch := &certhandler.Handlers{Service: &certsvc.Service{DB: db, Notify: mailer, VerifyBaseURL: cfg.VerifyBaseURL}}
	api.Get("/certificates/verify/:number", ch.Verify)
	cg := api.Group("/certificates", requireAuth)
	cg.Post("/", can(constants.IssueCertificates), ch.Issue)
	cg.Get("/", can(constants.ViewOwnRecords), ch.List)
	cg.Delete("/:id", can(constants.IssueCertificates), ch.Delete)

	// Receipts
	rh := &receipthandler.Handlers{Service: &receiptsvc.Service{DB: db, Notify: mailer, VerifyBaseURL: cfg.VerifyBaseURL}}
	api.Get("/receipts/verify/:number", rh.Verify)
	rg := api.Group("/receipts", requireAuth, can(constants.ManageReceipts))
	rg.Post("/", rh.Create)
	rg.Get("/", rh.List)
	rg.Delete("/:id", rh.Delete)

	// Public content; writes are admin-only
	th := &contenthandler.Handlers{Service: &contentsvc.Service{DB: db}}
	contentRoutes := []struct {
		path           string
		create, delete fiber.Handler
		list           fiber.Handler
		listProtected  bool
	}{
		{"/news", th.CreateNews, th.DeleteNews, th.ListNews, false},
		{"/activities", th.CreateActivity, th.DeleteActivity, th.ListActivities, false},
		{"/campaigns", th.CreateCampaign, th.DeleteCampaign, th.ListCampaigns, false},
		{"/events", th.CreateEvent, th.DeleteEvent, th.ListEvents, false},
		{"/projects", th.CreateProject, th.DeleteProject, th.ListProjects, true},
		{"/internships", th.CreateInternship, th.DeleteInternship, th.ListInternships, false},
		{"/designations", th.CreateDesignation, th.DeleteDesignation, th.ListDesignations, false},
	}
	for _, r := range contentRoutes {
		if r.listProtected {
			api.Get(r.path, requireAuth, can(constants.ViewOwnRecords), r.list)
		} else {
			api.Get(r.path, r.list)
		}
		api.Post(r.path, requireAuth, can(constants.ManageContent), r.create)
		api.Delete(r.path+"/:id", requireAuth, can(constants.ManageContent), r.delete)
	}
	api.Post("/internships/:id/apply", requireAuth, can(constants.ViewOwnRecords), th.Apply)

	// Enquiries
	eh := &enquiryhandler.Handlers{Service: &enquirysvc.Service{DB: db, Notify: mailer}}
	api.Post("/enquiries", eh.Create)
	api.Get("/enquiries", requireAuth, can(constants.ViewEnquiries), eh.List)

	// Beneficiaries
	bh := &beneficiaryhandler.Handlers{Service: &beneficiarysvc.Service{DB: db}}
	bg := api.Group("/beneficiaries", requireAuth, can(constants.ManageBeneficiaries))
	bg.Post("/", bh.Create)
	bg.Get("/", bh.List)
	bg.Get("/:id", bh.Get)
	bg.Delete("/:id", bh.Delete)

	// Files
	fh := &uploadhandler.Handlers{Service: &uploadsvc.Service{Store: deps.Storage}}
	api.Post("/upload-image", fh.UploadImage)
	api.Get("/uploads/:filename", fh.Serve)

	// Stats
	sh := &statshandler.Handlers{Service: &statssvc.Service{DB: db}}
	api.Get("/stats", sh.Get)

	return &Server{App: app, DB: db, Redis: deps.Redis, Mailer: mailer}
}

// Handler adapts the fiber app for net/http hosts (serverless entrypoint).
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}

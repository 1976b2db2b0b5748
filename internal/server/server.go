package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/sapbridge/internal/config"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
	credentialdomain "github.com/smallbiznis/sapbridge/internal/credential/domain"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module wires the HTTP layer on top of the domain services.
var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
		s.RegisterAdminRoutes()
	}),
	fx.Invoke(RunHTTP),
)

func NewEngine(metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RunHTTP starts the HTTP listener on the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	db            *gorm.DB
	log           *zap.Logger
	credentialSvc credentialdomain.Service
	contactSvc    contactdomain.Service
	productSvc    productdomain.Service
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	DB            *gorm.DB
	Log           *zap.Logger
	CredentialSvc credentialdomain.Service
	ContactSvc    contactdomain.Service
	ProductSvc    productdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		db:            p.DB,
		log:           p.Log.Named("server"),
		credentialSvc: p.CredentialSvc,
		contactSvc:    p.ContactSvc,
		productSvc:    p.ProductSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// RegisterAPIRoutes mounts the SAP-facing integration endpoints.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")
	api.Use(s.CORS())

	// Preflight never reaches a handler; the CORS middleware answers it.
	api.OPTIONS("/*path", func(c *gin.Context) {})

	api.POST("/create_contact", s.CredentialRequired(), s.CreateContact)
	api.PATCH("/update_contact", s.CredentialRequired(), s.UpdateContact)
	api.POST("/create_product", s.CredentialRequired(), s.CreateProduct)
}

// RegisterAdminRoutes mounts the credential management surface.
func (s *Server) RegisterAdminRoutes() {
	admin := s.engine.Group("/admin")
	admin.Use(s.CredentialRequired())

	admin.GET("/credentials", s.ListCredentials)
	admin.POST("/credentials", s.CreateCredential)
	admin.POST("/credentials/:id/deactivate", s.DeactivateCredential)
}

// Package devserver is a small development stand-in for the FreelanceHQ API.
// It serves the login endpoint and the resource lists the client consumes,
// backed by a seeded SQLite database. It is a fixture, not the production
// authentication implementation.
package devserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/freelancehq/cli/internal/config"
)

// Server hosts the development API.
type Server struct {
	Config *config.Config
	db     *gorm.DB
	server *http.Server
}

// NewServer opens the fixture database and prepares the server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := openDatabase(cfg.Server.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("failed to seed fixtures: %w", err)
	}

	return &Server{
		Config: cfg,
		db:     db,
	}, nil
}

// Router builds the gin engine with all middleware and routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logrus.WithField("panic", err).Error("Recovered from panic")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	}))

	// The web client runs on a different origin during development.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
			"Accept",
			"X-Client-Id",
		},
	}))

	s.setupRoutes(router)

	return router
}

func (s *Server) setupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/auth/login/", s.postLogin)

	authed := api.Group("")
	authed.Use(s.authMiddleware())

	authed.GET("/clients/", s.getClients)
	authed.GET("/projects/", s.getProjects)
	authed.GET("/projects/:id/", s.getProject)
	authed.GET("/invoices/", s.getInvoices)
}

// Start runs the server until the listener fails at startup.
func (s *Server) Start() error {
	addr := s.Config.GetServerAddr()

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.Config.Server.Limits.ReadTimeout,
		WriteTimeout: s.Config.Server.Limits.WriteTimeout,
		IdleTimeout:  s.Config.Server.Limits.IdleTimeout,
	}
	s.server = server

	errChan := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start server: %w", err)
	case <-time.After(100 * time.Millisecond):
		logrus.WithFields(logrus.Fields{
			"addr": addr,
		}).Infoln("Development API listening")
		return nil
	}
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	if s.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Errorln("Server shutdown failed")
	}
}

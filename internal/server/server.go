package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/quran-quest/quran-quest-api/internal/auth"
	"github.com/quran-quest/quran-quest-api/internal/database"
	"github.com/quran-quest/quran-quest-api/internal/mail"
	"github.com/quran-quest/quran-quest-api/internal/quran"
	"github.com/quran-quest/quran-quest-api/internal/social"
	"github.com/quran-quest/quran-quest-api/pkg/config"
)

type Server struct {
	port          string
	db            database.Service
	handler       http.Handler
	cfg           *config.Config
	log           *zap.Logger
	mail          *mail.Mailer
	quranService  quran.QuranService
	authService   auth.AuthService
	socialService social.SocialService
	cancel        context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config, log *zap.Logger) (*Server, error) {
	stats := db.Health()
	if stats["status"] != "up" {
		return nil, fmt.Errorf("database connection failed: %s", stats["error"])
	}
	log.Info("database connection successful")

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	mailer := mail.NewMail(
		cfg.SmtpFrom,
		"Quran Quest",
		cfg.SmtpPassword,
		cfg.SmtpHost,
		cfg.SmtpPort,
	)

	authRepo := auth.NewRepository(db)
	progressRepo := quran.NewProgressRepo(db)
	socialRepo := social.NewRepository(db)

	verseSource := quran.NewAPIVerseSource(cfg.QuranAPIBaseURL, log)

	s := &Server{
		port:          cfg.Port,
		db:            db,
		cfg:           cfg,
		log:           log,
		mail:          mailer,
		quranService:  quran.NewQuranService(progressRepo, verseSource, mailer, log),
		authService:   auth.NewAuthService(authRepo, mailer),
		socialService: social.NewSocialService(socialRepo),
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.quranService.StartScheduler(ctx)
	s.log.Info("background jobs started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		s.log.Info("background jobs stopped gracefully")
	}
}

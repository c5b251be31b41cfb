package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quran-quest/quran-quest-api/internal/auth"
	"github.com/quran-quest/quran-quest-api/internal/quran"
	"github.com/quran-quest/quran-quest-api/internal/social"
	"github.com/quran-quest/quran-quest-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(s.cfg.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		s.loadAuthRoutes(r)
		s.loadQuranRoutes(r)
		s.loadSocialRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Quran Quest API"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.db.Health(), "Ok")
}

func (s *Server) loadAuthRoutes(router chi.Router) {
	authHandler := auth.NewHandler(s.authService)

	router.Post("/auth/register", authHandler.RegisterHandler)
	router.Post("/auth/login", authHandler.LoginHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/auth/refresh", authHandler.RefreshHandler)
		r.Get("/users/me", authHandler.MeHandler)
		r.Put("/users/me", authHandler.UpdateProfileHandler)
		r.Get("/users/search/{username}", authHandler.SearchUserHandler)
	})

	router.Get("/users/stats", authHandler.StatsHandler)
}

func (s *Server) loadQuranRoutes(router chi.Router) {
	quranHandler := quran.NewQuranHandler(s.quranService)

	// Surah catalog and verse content are public
	router.Get("/quran/surahs", quranHandler.GetSurahListHandler)
	router.Get("/quran/surahs/{surahNumber}", quranHandler.GetSurahInfoHandler)
	router.Get("/quran/verses/{surahNumber}/{verseNumber}", quranHandler.GetVerseHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/quran/daily-lesson", quranHandler.GetDailyLessonHandler)
		r.Post("/quran/complete-lesson", quranHandler.CompleteLessonHandler)
		r.Get("/quran/progress", quranHandler.GetUserProgressHandler)
		r.Post("/quran/progress/reset", quranHandler.ResetProgressHandler)
		r.Get("/quran/progress/surah/{surahNumber}", quranHandler.GetSurahProgressHandler)
		r.Get("/quran/roadmap", quranHandler.GetRoadmapHandler)
	})
}

func (s *Server) loadSocialRoutes(router chi.Router) {
	socialHandler := social.NewSocialHandler(s.socialService)

	router.Get("/social/leaderboard", socialHandler.GetLeaderboardHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/social/friends/request", socialHandler.SendFriendRequestHandler)
		r.Put("/social/friends/{friendshipID}/accept", socialHandler.AcceptFriendRequestHandler)
		r.Put("/social/friends/{friendshipID}/decline", socialHandler.DeclineFriendRequestHandler)
		r.Get("/social/friends", socialHandler.GetFriendsHandler)
		r.Get("/social/friends/requests", socialHandler.GetPendingRequestsHandler)

		r.Post("/social/threads", socialHandler.CreateThreadHandler)
		r.Get("/social/threads", socialHandler.GetThreadsHandler)
		r.Get("/social/threads/{threadID}", socialHandler.GetThreadDetailHandler)
		r.Post("/social/threads/{threadID}/like", socialHandler.ToggleLikeHandler)
		r.Post("/social/threads/{threadID}/comments", socialHandler.AddCommentHandler)
	})
}

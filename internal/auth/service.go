package auth

import (
	"context"
	"errors"
	"log"

	"github.com/quran-quest/quran-quest-api/internal/mail"
	"github.com/quran-quest/quran-quest-api/pkg/util"
)

type AuthService struct {
	repo Repository
	mail *mail.Mailer
}

func NewAuthService(repo Repository, mail *mail.Mailer) AuthService {
	return AuthService{
		repo: repo,
		mail: mail,
	}
}

func (h *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, errors.New("email, username and password are required")
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if req.DailyAyats < 0 || req.DailyAyats > 10 {
		return nil, errors.New("daily_ayats must be between 1 and 10")
	}

	hashed, err := util.HashPasswordBcrypt(req.Password)
	if err != nil {
		return nil, err
	}

	user := User{
		Email:             req.Email,
		Username:          req.Username,
		Password:          hashed,
		DailyAyats:        req.DailyAyats,
		LearningMode:      req.LearningMode,
		PreferredLanguage: req.PreferredLanguage,
	}
	if user.DailyAyats == 0 {
		user.DailyAyats = 3
	}
	if user.LearningMode == "" {
		user.LearningMode = "read"
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "english"
	}
	if user.LearningMode != "read" && user.LearningMode != "memorize" {
		return nil, errors.New("learning_mode must be read or memorize")
	}

	created, err := h.repo.CreateUser(ctx, user)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, err
	}

	token, err := util.GenerateJWT(created.ID, created.Username)
	if err != nil {
		return nil, err
	}
	created.Token = token

	data := map[string]interface{}{
		"Name":         created.Username,
		"DashboardURL": "https://quranquest.app/dashboard",
	}

	// Send welcome mail asynchronously
	go func() {
		if err := h.mail.SendHTML(created.Email, "Welcome to Quran Quest", "welcome.html", data); err != nil {
			log.Printf("failed to send welcome email: %v", err)
		}
	}()

	return created, nil
}

func (h *AuthService) Login(ctx context.Context, emailOrUsername, password string) (*User, error) {
	if emailOrUsername == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := h.repo.GetUserByLogin(ctx, emailOrUsername)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, ErrInvalidCredentials
	}

	if err := util.ComparePasswordBcrypt(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	user.Token = token

	return user, nil
}

// Refresh re-issues a token for an already authenticated user.
func (h *AuthService) Refresh(ctx context.Context, userID int) (*User, error) {
	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	token, err := util.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	user.Token = token
	return user, nil
}

func (h *AuthService) Me(ctx context.Context, userID int) (*User, error) {
	return h.repo.GetUserByID(ctx, userID)
}

func (h *AuthService) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*User, error) {
	if req.DailyAyats < 0 || req.DailyAyats > 10 {
		return nil, errors.New("daily_ayats must be between 1 and 10")
	}
	if req.LearningMode != "" && req.LearningMode != "read" && req.LearningMode != "memorize" {
		return nil, errors.New("learning_mode must be read or memorize")
	}

	if req.Username != "" {
		existing, err := h.repo.GetUserByUsername(ctx, req.Username)
		if err == nil && existing.ID != userID {
			return nil, ErrUsernameTaken
		}
	}

	return h.repo.UpdateUserProfile(ctx, userID, req)
}

// SearchUser looks up another user's public profile by username.
func (h *AuthService) SearchUser(ctx context.Context, selfID int, username string) (*PublicProfile, error) {
	user, err := h.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.ID == selfID {
		return nil, errors.New("cannot search for yourself")
	}

	return &PublicProfile{
		ID:                   user.ID,
		Username:             user.Username,
		CurrentStreak:        user.CurrentStreak,
		LongestStreak:        user.LongestStreak,
		TotalVersesCompleted: user.TotalVersesCompleted,
	}, nil
}

func (h *AuthService) Stats(ctx context.Context) (*Stats, error) {
	return h.repo.GetStats(ctx)
}

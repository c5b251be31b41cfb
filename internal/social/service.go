package social

import (
	"context"
	"errors"
	"log"
)

type SocialService struct {
	repo Repository
}

func NewSocialService(repo Repository) SocialService {
	return SocialService{repo: repo}
}

func (s *SocialService) SendFriendRequest(ctx context.Context, userID, friendID int) (*Friendship, error) {
	if friendID <= 0 {
		return nil, errors.New("friend_id is required")
	}
	return s.repo.CreateFriendship(ctx, userID, friendID)
}

func (s *SocialService) AcceptFriendRequest(ctx context.Context, friendshipID, userID int) error {
	return s.repo.SetFriendshipStatus(ctx, friendshipID, userID, "accepted")
}

func (s *SocialService) DeclineFriendRequest(ctx context.Context, friendshipID, userID int) error {
	return s.repo.SetFriendshipStatus(ctx, friendshipID, userID, "declined")
}

func (s *SocialService) GetFriends(ctx context.Context, userID int) ([]Friend, error) {
	friends, err := s.repo.GetFriends(ctx, userID)
	if err != nil {
		log.Println("Error fetching friends:", err)
		return nil, err
	}
	return friends, nil
}

func (s *SocialService) GetPendingRequests(ctx context.Context, userID int) ([]Friendship, error) {
	return s.repo.GetPendingRequests(ctx, userID)
}

func (s *SocialService) CreateThread(ctx context.Context, authorID int, req CreateThreadRequest) (*Thread, error) {
	if req.Title == "" || req.Content == "" {
		return nil, errors.New("title and content are required")
	}
	if req.ThreadType == "" {
		req.ThreadType = "discussion"
	}
	if req.ThreadType != "discussion" && req.ThreadType != "ayah-share" {
		return nil, errors.New("thread_type must be discussion or ayah-share")
	}
	return s.repo.CreateThread(ctx, authorID, req)
}

func (s *SocialService) GetThreads(ctx context.Context, threadType string, offset, limit int) ([]Thread, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetThreads(ctx, threadType, offset, limit)
}

func (s *SocialService) GetThreadDetail(ctx context.Context, threadID, viewerID int) (*ThreadDetail, error) {
	return s.repo.GetThreadDetail(ctx, threadID, viewerID)
}

func (s *SocialService) ToggleLike(ctx context.Context, threadID, userID int) (bool, error) {
	return s.repo.ToggleLike(ctx, threadID, userID)
}

func (s *SocialService) AddComment(ctx context.Context, threadID, authorID int, req CreateCommentRequest) (*Comment, error) {
	if req.Content == "" {
		return nil, errors.New("content is required")
	}
	return s.repo.CreateComment(ctx, threadID, authorID, req)
}

func (s *SocialService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.GetLeaderboard(ctx, limit)
}

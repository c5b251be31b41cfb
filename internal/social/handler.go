package social

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quran-quest/quran-quest-api/internal/auth"
	"github.com/quran-quest/quran-quest-api/pkg/response"
)

type SocialHandler struct {
	service SocialService
}

func NewSocialHandler(service SocialService) SocialHandler {
	return SocialHandler{service: service}
}

func (h *SocialHandler) SendFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req FriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	friendship, err := h.service.SendFriendRequest(r.Context(), userID, req.FriendID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(w, http.StatusNotFound, "User not found", err.Error())
		case errors.Is(err, ErrAlreadyExists):
			response.Error(w, http.StatusBadRequest, "Friendship request already exists", err.Error())
		default:
			response.Error(w, http.StatusBadRequest, "Failed to send friend request", err.Error())
		}
		return
	}

	response.Created(w, friendship, "Friend request sent")
}

func (h *SocialHandler) AcceptFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	h.setFriendshipStatus(w, r, "accepted")
}

func (h *SocialHandler) DeclineFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	h.setFriendshipStatus(w, r, "declined")
}

func (h *SocialHandler) setFriendshipStatus(w http.ResponseWriter, r *http.Request, status string) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	friendshipID, err := strconv.Atoi(chi.URLParam(r, "friendshipID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid friendship id", err.Error())
		return
	}

	if status == "accepted" {
		err = h.service.AcceptFriendRequest(r.Context(), friendshipID, userID)
	} else {
		err = h.service.DeclineFriendRequest(r.Context(), friendshipID, userID)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Friend request not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update friend request", err.Error())
		return
	}

	response.Success(w, "Ok", "Friend request "+status)
}

func (h *SocialHandler) GetFriendsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	friends, err := h.service.GetFriends(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get friends", err.Error())
		return
	}

	if friends == nil {
		friends = []Friend{}
	}
	response.Success(w, friends, "Ok")
}

func (h *SocialHandler) GetPendingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	requests, err := h.service.GetPendingRequests(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get friend requests", err.Error())
		return
	}

	if requests == nil {
		requests = []Friendship{}
	}
	response.Success(w, requests, "Ok")
}

func (h *SocialHandler) CreateThreadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	thread, err := h.service.CreateThread(r.Context(), userID, req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to create thread", err.Error())
		return
	}

	response.Created(w, thread, "Thread created")
}

func (h *SocialHandler) GetThreadsHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	threadType := r.URL.Query().Get("thread_type")

	threads, err := h.service.GetThreads(r.Context(), threadType, offset, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get threads", err.Error())
		return
	}

	if threads == nil {
		threads = []Thread{}
	}
	response.Success(w, threads, "Ok")
}

func (h *SocialHandler) GetThreadDetailHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	threadID, err := strconv.Atoi(chi.URLParam(r, "threadID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid thread id", err.Error())
		return
	}

	detail, err := h.service.GetThreadDetail(r.Context(), threadID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Thread not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get thread", err.Error())
		return
	}

	response.Success(w, detail, "Ok")
}

func (h *SocialHandler) ToggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	threadID, err := strconv.Atoi(chi.URLParam(r, "threadID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid thread id", err.Error())
		return
	}

	liked, err := h.service.ToggleLike(r.Context(), threadID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Thread not found", err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to toggle like", err.Error())
		return
	}

	message := "Thread unliked"
	if liked {
		message = "Thread liked"
	}
	response.Success(w, map[string]bool{"is_liked": liked}, message)
}

func (h *SocialHandler) AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	threadID, err := strconv.Atoi(chi.URLParam(r, "threadID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid thread id", err.Error())
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	comment, err := h.service.AddComment(r.Context(), threadID, userID, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Thread not found", err.Error())
			return
		}
		response.Error(w, http.StatusBadRequest, "Failed to add comment", err.Error())
		return
	}

	response.Created(w, comment, "Comment added")
}

func (h *SocialHandler) GetLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	leaderboard, err := h.service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get leaderboard", err.Error())
		return
	}

	if leaderboard == nil {
		leaderboard = []LeaderboardEntry{}
	}
	response.Success(w, leaderboard, "Ok")
}

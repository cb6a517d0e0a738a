package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/apierr"
	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/repos"
	"github.com/yungbote/devconnector-backend/internal/requestdata"
)

type AccountService interface {
	// DeleteAccount removes the caller's posts, then profile, then user
	// record. The steps are deliberately not one transaction: each is an
	// idempotent no-op once applied, so a failed run can be retried, but a
	// partial run leaves the earlier deletions in place.
	DeleteAccount(ctx context.Context) error
}

type accountService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	profileRepo repos.ProfileRepo
	postRepo    repos.PostRepo
	listCache   *cache.Cache
}

func NewAccountService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	profileRepo repos.ProfileRepo,
	postRepo repos.PostRepo,
	listCache *cache.Cache,
) AccountService {
	serviceLog := baseLog.With("service", "AccountService")
	return &accountService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		listCache:   listCache,
	}
}

func (as *accountService) DeleteAccount(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	userIDs := []uuid.UUID{rd.UserID}

	// Posts first so a partial run never leaves posts referencing a deleted
	// owner.
	if err := as.postRepo.FullDeleteByUserIDs(ctx, nil, userIDs); err != nil {
		as.log.Error("Account deletion failed removing posts", "error", err, "user_id", rd.UserID)
		return fmt.Errorf("Failed to delete posts: %w", err)
	}
	if err := as.profileRepo.FullDeleteByUserIDs(ctx, nil, userIDs); err != nil {
		as.log.Error("Account deletion failed removing profile, posts already removed", "error", err, "user_id", rd.UserID)
		return fmt.Errorf("Failed to delete profile: %w", err)
	}
	if err := as.userRepo.FullDeleteByIDs(ctx, nil, userIDs); err != nil {
		as.log.Error("Account deletion failed removing user, posts and profile already removed", "error", err, "user_id", rd.UserID)
		return fmt.Errorf("Failed to delete user: %w", err)
	}

	as.listCache.Delete(profileListCacheKey)
	as.listCache.Delete(postListCacheKey)
	as.log.Info("Account deleted", "user_id", rd.UserID)
	return nil
}

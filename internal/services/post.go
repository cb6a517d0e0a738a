package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/apierr"
	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/repos"
	"github.com/yungbote/devconnector-backend/internal/requestdata"
	"github.com/yungbote/devconnector-backend/internal/types"
)

const postListCacheKey = "posts:all"

type PostService interface {
	CreatePost(ctx context.Context, text string) (*types.Post, error)
	ListPosts(ctx context.Context) ([]*types.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*types.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	LikePost(ctx context.Context, postID uuid.UUID) ([]types.Like, error)
	UnlikePost(ctx context.Context, postID uuid.UUID) ([]types.Like, error)
	AddComment(ctx context.Context, postID uuid.UUID, text string) ([]types.Comment, error)
	RemoveComment(ctx context.Context, postID, commentID uuid.UUID) ([]types.Comment, error)
}

type postService struct {
	db        *gorm.DB
	log       *logger.Logger
	postRepo  repos.PostRepo
	userRepo  repos.UserRepo
	listCache *cache.Cache
}

func NewPostService(
	db *gorm.DB,
	baseLog *logger.Logger,
	postRepo repos.PostRepo,
	userRepo repos.UserRepo,
	listCache *cache.Cache,
) PostService {
	serviceLog := baseLog.With("service", "PostService")
	return &postService{
		db:        db,
		log:       serviceLog,
		postRepo:  postRepo,
		userRepo:  userRepo,
		listCache: listCache,
	}
}

func (ps *postService) CreatePost(ctx context.Context, text string) (*types.Post, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apierr.NewValidation(apierr.FieldError{Msg: "Text is required", Param: "text"})
	}

	users, err := ps.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "User not found", apierr.ErrNotFound)
	}
	user := users[0]

	// Name and avatar are snapshotted here; later user edits do not
	// propagate to existing posts.
	post := &types.Post{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Text:      text,
		Likes:     datatypes.NewJSONSlice([]types.Like{}),
		Comments:  datatypes.NewJSONSlice([]types.Comment{}),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := ps.postRepo.Create(ctx, nil, []*types.Post{post}); err != nil {
		return nil, fmt.Errorf("Failed to create post: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return post, nil
}

func (ps *postService) ListPosts(ctx context.Context) ([]*types.Post, error) {
	if cached, found := ps.listCache.Get(postListCacheKey); found {
		if posts, ok := cached.([]*types.Post); ok {
			return posts, nil
		}
	}
	posts, err := ps.postRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to list posts: %w", err)
	}
	ps.listCache.Set(postListCacheKey, posts, cache.DefaultExpiration)
	return posts, nil
}

func (ps *postService) GetPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	return ps.loadPost(ctx, postID)
}

func (ps *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	post, err := ps.loadPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != rd.UserID {
		return apierr.New(http.StatusUnauthorized, "User not authorized", apierr.ErrForbidden)
	}
	if err := ps.postRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{post.ID}); err != nil {
		return fmt.Errorf("Failed to delete post: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return nil
}

func (ps *postService) LikePost(ctx context.Context, postID uuid.UUID) ([]types.Like, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	post, err := ps.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	for _, like := range post.Likes {
		if like.UserID == rd.UserID {
			return nil, apierr.New(http.StatusBadRequest, "Post already liked", apierr.ErrAlreadyLiked)
		}
	}
	like := types.Like{ID: uuid.New(), UserID: rd.UserID}
	post.Likes = append(datatypes.NewJSONSlice([]types.Like{like}), post.Likes...)
	if _, err := ps.postRepo.Update(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("Failed to save like: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return post.Likes, nil
}

func (ps *postService) UnlikePost(ctx context.Context, postID uuid.UUID) ([]types.Like, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	post, err := ps.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	kept := post.Likes[:0:0]
	removed := false
	for _, like := range post.Likes {
		if like.UserID == rd.UserID {
			removed = true
			continue
		}
		kept = append(kept, like)
	}
	if !removed {
		return nil, apierr.New(http.StatusBadRequest, "Post has not yet been liked", apierr.ErrNotLiked)
	}
	post.Likes = kept
	if _, err := ps.postRepo.Update(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("Failed to save unlike: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return post.Likes, nil
}

func (ps *postService) AddComment(ctx context.Context, postID uuid.UUID, text string) ([]types.Comment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apierr.NewValidation(apierr.FieldError{Msg: "Text is required", Param: "text"})
	}

	users, err := ps.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.New(http.StatusNotFound, "User not found", apierr.ErrNotFound)
	}
	user := users[0]

	post, err := ps.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment := types.Comment{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append(datatypes.NewJSONSlice([]types.Comment{comment}), post.Comments...)
	if _, err := ps.postRepo.Update(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("Failed to save comment: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return post.Comments, nil
}

// RemoveComment matches the comment by its own id first, then enforces the
// author check. Matching by commenter id alone can remove the wrong comment
// when a user has several comments on one post.
func (ps *postService) RemoveComment(ctx context.Context, postID, commentID uuid.UUID) ([]types.Comment, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	post, err := ps.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.New(http.StatusNotFound, "Comment does not exist", apierr.ErrNotFound)
	}
	if post.Comments[idx].UserID != rd.UserID {
		return nil, apierr.New(http.StatusUnauthorized, "User not authorized", apierr.ErrForbidden)
	}
	post.Comments = append(post.Comments[:idx:idx], post.Comments[idx+1:]...)
	if _, err := ps.postRepo.Update(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("Failed to save comment removal: %w", err)
	}
	ps.listCache.Delete(postListCacheKey)
	return post.Comments, nil
}

func (ps *postService) loadPost(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	posts, err := ps.postRepo.GetByIDs(ctx, nil, []uuid.UUID{postID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return nil, apierr.New(http.StatusNotFound, "Post not found", apierr.ErrNotFound)
	}
	return posts[0], nil
}

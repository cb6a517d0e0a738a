package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Post, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Post, error)
	Update(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error
	FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	repoLog := baseLog.With("repo", "PostRepo")
	return &postRepo{db: db, log: repoLog}
}

func (pr *postRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(posts) == 0 {
		return []*types.Post{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (pr *postRepo) GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Post
	if len(postIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", postIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Post
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetAll orders newest first; post ordering is a read-time concern, rows are
// not stored in any particular order.
func (pr *postRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Post
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *postRepo) Update(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (pr *postRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(postIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", postIDs).
		Delete(&types.Post{}).Error
}

func (pr *postRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(userIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Delete(&types.Post{}).Error
}

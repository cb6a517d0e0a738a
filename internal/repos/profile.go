package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/types"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, profileIDs []uuid.UUID) ([]*types.Profile, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Profile, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error)
	Update(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
	FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(profiles) == 0 {
		return []*types.Profile{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (pr *profileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, profileIDs []uuid.UUID) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Profile
	if len(profileIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", profileIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *profileRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Profile
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

func (pr *profileRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Profile
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update writes the whole aggregate back; sub-record mutations always go
// through a full read-modify-write of the owning row.
func (pr *profileRepo) Update(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (pr *profileRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(userIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Delete(&types.Profile{}).Error
}

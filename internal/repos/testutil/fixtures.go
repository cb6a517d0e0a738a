package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Name:      "A B",
		Email:     email,
		Password:  "pw",
		AvatarURL: "https://www.gravatar.com/avatar/x",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID) *types.Profile {
	tb.Helper()
	p := &types.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     "Developer",
		Skills:     datatypes.NewJSONSlice([]string{"js", "css"}),
		Social:     datatypes.NewJSONType(types.SocialLinks{}),
		Experience: datatypes.NewJSONSlice([]types.Experience{}),
		Education:  datatypes.NewJSONSlice([]types.Education{}),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedPost(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, text string, createdAt time.Time) *types.Post {
	tb.Helper()
	p := &types.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "A B",
		AvatarURL: "https://www.gravatar.com/avatar/x",
		Text:      text,
		Likes:     datatypes.NewJSONSlice([]types.Like{}),
		Comments:  datatypes.NewJSONSlice([]types.Comment{}),
		CreatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed post: %v", err)
	}
	return p
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/requestdata"
	"github.com/yungbote/devconnector-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func ctxWithUser(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

type fakeUserRepo struct {
	users     []*types.User
	deleteErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	f.users = append(f.users, users...)
	return users, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.users {
		for _, id := range userIDs {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, userEmails []string) ([]*types.User, error) {
	var out []*types.User
	for _, u := range f.users {
		for _, email := range userEmails {
			if u.Email == email {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, userEmail string) (bool, error) {
	for _, u := range f.users {
		if u.Email == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.users[:0:0]
	for _, u := range f.users {
		remove := false
		for _, id := range userIDs {
			if u.ID == id {
				remove = true
			}
		}
		if !remove {
			kept = append(kept, u)
		}
	}
	f.users = kept
	return nil
}

type fakeProfileRepo struct {
	profiles  []*types.Profile
	deleteErr error
}

func (f *fakeProfileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.Profile) ([]*types.Profile, error) {
	f.profiles = append(f.profiles, profiles...)
	return profiles, nil
}

func (f *fakeProfileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, profileIDs []uuid.UUID) ([]*types.Profile, error) {
	var out []*types.Profile
	for _, p := range f.profiles {
		for _, id := range profileIDs {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Profile, error) {
	var out []*types.Profile
	for _, p := range f.profiles {
		for _, id := range userIDs {
			if p.UserID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Profile, error) {
	return f.profiles, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	for i, p := range f.profiles {
		if p.ID == profile.ID {
			f.profiles[i] = profile
			return profile, nil
		}
	}
	f.profiles = append(f.profiles, profile)
	return profile, nil
}

func (f *fakeProfileRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.profiles[:0:0]
	for _, p := range f.profiles {
		remove := false
		for _, id := range userIDs {
			if p.UserID == id {
				remove = true
			}
		}
		if !remove {
			kept = append(kept, p)
		}
	}
	f.profiles = kept
	return nil
}

type fakePostRepo struct {
	posts           []*types.Post
	deleteByUserErr error
}

func (f *fakePostRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
	f.posts = append(f.posts, posts...)
	return posts, nil
}

func (f *fakePostRepo) GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error) {
	var out []*types.Post
	for _, p := range f.posts {
		for _, id := range postIDs {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Post, error) {
	var out []*types.Post
	for _, p := range f.posts {
		for _, id := range userIDs {
			if p.UserID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakePostRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Post, error) {
	out := make([]*types.Post, len(f.posts))
	copy(out, f.posts)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, tx *gorm.DB, post *types.Post) (*types.Post, error) {
	for i, p := range f.posts {
		if p.ID == post.ID {
			f.posts[i] = post
			return post, nil
		}
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePostRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error {
	kept := f.posts[:0:0]
	for _, p := range f.posts {
		remove := false
		for _, id := range postIDs {
			if p.ID == id {
				remove = true
			}
		}
		if !remove {
			kept = append(kept, p)
		}
	}
	f.posts = kept
	return nil
}

func (f *fakePostRepo) FullDeleteByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) error {
	if f.deleteByUserErr != nil {
		return f.deleteByUserErr
	}
	kept := f.posts[:0:0]
	for _, p := range f.posts {
		remove := false
		for _, id := range userIDs {
			if p.UserID == id {
				remove = true
			}
		}
		if !remove {
			kept = append(kept, p)
		}
	}
	f.posts = kept
	return nil
}

package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/devconnector-backend/internal/repos/testutil"
	"github.com/yungbote/devconnector-backend/internal/types"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{
		ID:       uuid.New(),
		Name:     "A B",
		Email:    "userrepo@example.com",
		Password: "pw",
	}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByEmails(ctx, tx, []string{u.Email}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByEmails: err=%v len=%d", err, len(rows))
	}
	if exists, err := repo.EmailExists(ctx, tx, u.Email); err != nil || !exists {
		t.Fatalf("EmailExists: err=%v exists=%v", err, exists)
	}
	if exists, err := repo.EmailExists(ctx, tx, "nobody@example.com"); err != nil || exists {
		t.Fatalf("EmailExists miss: err=%v exists=%v", err, exists)
	}

	if err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil || len(rows) != 0 {
		t.Fatalf("after FullDeleteByIDs GetByIDs: err=%v len=%d", err, len(rows))
	}

	// Empty input slices are no-ops, not errors.
	if _, err := repo.Create(ctx, tx, nil); err != nil {
		t.Fatalf("Create empty: %v", err)
	}
	if err := repo.FullDeleteByIDs(ctx, tx, nil); err != nil {
		t.Fatalf("FullDeleteByIDs empty: %v", err)
	}
}

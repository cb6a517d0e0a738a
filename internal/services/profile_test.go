package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/devconnector-backend/internal/apierr"
)

func newProfileService(t *testing.T) (ProfileService, *fakeProfileRepo) {
	t.Helper()
	repo := &fakeProfileRepo{}
	svc := NewProfileService(nil, testLogger(t), repo, cache.New(time.Minute, time.Minute))
	return svc, repo
}

func TestUpsertProfileCreateThenMerge(t *testing.T) {
	svc, _ := newProfileService(t)
	userID := uuid.New()
	ctx := ctxWithUser(userID)

	created, err := svc.UpsertProfile(ctx, ProfileInput{
		Status: "Developer",
		Skills: []string{"js", "css"},
	})
	require.NoError(t, err)
	require.Equal(t, userID, created.UserID)
	require.Equal(t, []string{"js", "css"}, []string(created.Skills))

	// Re-upsert with only a new bio; status and skills must survive.
	updated, err := svc.UpsertProfile(ctx, ProfileInput{
		Status: "Developer",
		Skills: []string{"js", "css"},
		Bio:    "hi",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Developer", updated.Status)
	require.Equal(t, []string{"js", "css"}, []string(updated.Skills))
	require.Equal(t, "hi", updated.Bio)

	// Fields not supplied again are preserved.
	again, err := svc.UpsertProfile(ctx, ProfileInput{
		Status:  "Senior Developer",
		Skills:  []string{"go"},
		Company: "Acme",
	})
	require.NoError(t, err)
	require.Equal(t, "hi", again.Bio)
	require.Equal(t, "Acme", again.Company)
	require.Equal(t, "Senior Developer", again.Status)
	require.Equal(t, []string{"go"}, []string(again.Skills))
}

func TestUpsertProfileValidation(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := ctxWithUser(uuid.New())

	_, err := svc.UpsertProfile(ctx, ProfileInput{})
	var ve *apierr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 2)
}

func TestUpsertProfileOwnerImmutable(t *testing.T) {
	svc, repo := newProfileService(t)
	userID := uuid.New()
	_, err := svc.UpsertProfile(ctxWithUser(userID), ProfileInput{Status: "Dev", Skills: []string{"js"}})
	require.NoError(t, err)

	// A different caller upserting creates their own profile, never
	// rebinding the existing one.
	otherID := uuid.New()
	other, err := svc.UpsertProfile(ctxWithUser(otherID), ProfileInput{Status: "Dev", Skills: []string{"js"}})
	require.NoError(t, err)
	require.Equal(t, otherID, other.UserID)
	require.Len(t, repo.profiles, 2)
}

func TestGetOwnProfileNotFound(t *testing.T) {
	svc, _ := newProfileService(t)
	_, err := svc.GetOwnProfile(ctxWithUser(uuid.New()))
	require.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestGetProfileByUserNotFound(t *testing.T) {
	svc, _ := newProfileService(t)
	_, err := svc.GetProfileByUser(ctxWithUser(uuid.New()), uuid.New())
	require.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestExperienceLifecycle(t *testing.T) {
	svc, _ := newProfileService(t)
	userID := uuid.New()
	ctx := ctxWithUser(userID)

	_, err := svc.UpsertProfile(ctx, ProfileInput{Status: "Dev", Skills: []string{"js"}})
	require.NoError(t, err)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	profile, err := svc.AddExperience(ctx, ExperienceInput{Title: "A", Company: "Acme", From: from})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	idA := profile.Experience[0].ID

	profile, err = svc.AddExperience(ctx, ExperienceInput{Title: "B", Company: "Globex", From: from})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 2)
	// Newest first: [B, A].
	require.Equal(t, "B", profile.Experience[0].Title)
	require.Equal(t, "A", profile.Experience[1].Title)
	idB := profile.Experience[0].ID
	require.NotEqual(t, idA, idB)

	profile, err = svc.RemoveExperience(ctx, idA)
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
	require.Equal(t, idB, profile.Experience[0].ID)

	// Removing an unknown id is a no-op, not an error.
	profile, err = svc.RemoveExperience(ctx, uuid.New())
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
}

func TestAddExperienceValidation(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := ctxWithUser(uuid.New())

	_, err := svc.AddExperience(ctx, ExperienceInput{})
	var ve *apierr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 3)
}

func TestAddExperienceWithoutProfile(t *testing.T) {
	svc, _ := newProfileService(t)
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.AddExperience(ctxWithUser(uuid.New()), ExperienceInput{Title: "A", Company: "Acme", From: from})
	require.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestEducationLifecycle(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := ctxWithUser(uuid.New())

	_, err := svc.UpsertProfile(ctx, ProfileInput{Status: "Dev", Skills: []string{"js"}})
	require.NoError(t, err)

	_, err = svc.AddEducation(ctx, EducationInput{})
	var ve *apierr.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 4)

	from := time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)
	profile, err := svc.AddEducation(ctx, EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: from})
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)

	profile, err = svc.AddEducation(ctx, EducationInput{School: "CMU", Degree: "MSc", FieldOfStudy: "CS", From: from})
	require.NoError(t, err)
	require.Equal(t, "CMU", profile.Education[0].School)

	profile, err = svc.RemoveEducation(ctx, profile.Education[1].ID)
	require.NoError(t, err)
	require.Len(t, profile.Education, 1)
	require.Equal(t, "CMU", profile.Education[0].School)
}

func TestListProfilesUsesCache(t *testing.T) {
	repo := &fakeProfileRepo{}
	listCache := cache.New(time.Minute, time.Minute)
	svc := NewProfileService(nil, testLogger(t), repo, listCache)
	ctx := ctxWithUser(uuid.New())

	_, err := svc.UpsertProfile(ctx, ProfileInput{Status: "Dev", Skills: []string{"js"}})
	require.NoError(t, err)

	first, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutations evict the list key so a fresh upsert is visible.
	_, err = svc.UpsertProfile(ctxWithUser(uuid.New()), ProfileInput{Status: "Dev", Skills: []string{"go"}})
	require.NoError(t, err)
	second, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
}

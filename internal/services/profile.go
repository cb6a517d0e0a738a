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

const profileListCacheKey = "profiles:all"

// ProfileInput carries the upsert fields. Empty strings mean "not supplied";
// supplied fields are applied over the existing document, the rest are
// preserved. Social is rebuilt wholesale from the supplied links on every
// upsert.
type ProfileInput struct {
	Status         string
	Skills         []string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

type ProfileService interface {
	UpsertProfile(ctx context.Context, input ProfileInput) (*types.Profile, error)
	GetOwnProfile(ctx context.Context) (*types.Profile, error)
	ListProfiles(ctx context.Context) ([]*types.Profile, error)
	GetProfileByUser(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	AddExperience(ctx context.Context, input ExperienceInput) (*types.Profile, error)
	RemoveExperience(ctx context.Context, experienceID uuid.UUID) (*types.Profile, error)
	AddEducation(ctx context.Context, input EducationInput) (*types.Profile, error)
	RemoveEducation(ctx context.Context, educationID uuid.UUID) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	listCache   *cache.Cache
}

func NewProfileService(
	db *gorm.DB,
	baseLog *logger.Logger,
	profileRepo repos.ProfileRepo,
	listCache *cache.Cache,
) ProfileService {
	serviceLog := baseLog.With("service", "ProfileService")
	return &profileService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		listCache:   listCache,
	}
}

func (ps *profileService) UpsertProfile(ctx context.Context, input ProfileInput) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}

	var fields []apierr.FieldError
	if strings.TrimSpace(input.Status) == "" {
		fields = append(fields, apierr.FieldError{Msg: "Status is required", Param: "status"})
	}
	if len(input.Skills) == 0 {
		fields = append(fields, apierr.FieldError{Msg: "Skills is required", Param: "skills"})
	}
	if len(fields) > 0 {
		return nil, apierr.NewValidation(fields...)
	}

	social := types.SocialLinks{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Facebook:  input.Facebook,
		Linkedin:  input.Linkedin,
		Instagram: input.Instagram,
	}

	existing, err := ps.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load profile: %w", err)
	}

	var profile *types.Profile
	if len(existing) > 0 {
		profile = existing[0]
		profile.Status = input.Status
		profile.Skills = datatypes.NewJSONSlice(input.Skills)
		if input.Company != "" {
			profile.Company = input.Company
		}
		if input.Website != "" {
			profile.Website = input.Website
		}
		if input.Location != "" {
			profile.Location = input.Location
		}
		if input.Bio != "" {
			profile.Bio = input.Bio
		}
		if input.GithubUsername != "" {
			profile.GithubUsername = input.GithubUsername
		}
		profile.Social = datatypes.NewJSONType(social)
		if _, err := ps.profileRepo.Update(ctx, nil, profile); err != nil {
			return nil, fmt.Errorf("Failed to update profile: %w", err)
		}
	} else {
		profile = &types.Profile{
			ID:             uuid.New(),
			UserID:         rd.UserID,
			Status:         input.Status,
			Company:        input.Company,
			Website:        input.Website,
			Location:       input.Location,
			Bio:            input.Bio,
			GithubUsername: input.GithubUsername,
			Skills:         datatypes.NewJSONSlice(input.Skills),
			Social:         datatypes.NewJSONType(social),
			Experience:     datatypes.NewJSONSlice([]types.Experience{}),
			Education:      datatypes.NewJSONSlice([]types.Education{}),
		}
		if _, err := ps.profileRepo.Create(ctx, nil, []*types.Profile{profile}); err != nil {
			return nil, fmt.Errorf("Failed to create profile: %w", err)
		}
	}
	ps.listCache.Delete(profileListCacheKey)
	return profile, nil
}

func (ps *profileService) GetOwnProfile(ctx context.Context) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	return ps.loadOwnProfile(ctx, rd.UserID, "There is no profile for this user")
}

func (ps *profileService) ListProfiles(ctx context.Context) ([]*types.Profile, error) {
	if cached, found := ps.listCache.Get(profileListCacheKey); found {
		if profiles, ok := cached.([]*types.Profile); ok {
			return profiles, nil
		}
	}
	profiles, err := ps.profileRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to list profiles: %w", err)
	}
	ps.listCache.Set(profileListCacheKey, profiles, cache.DefaultExpiration)
	return profiles, nil
}

func (ps *profileService) GetProfileByUser(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	profiles, err := ps.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, apierr.New(http.StatusBadRequest, "Profile not found", apierr.ErrNotFound)
	}
	return profiles[0], nil
}

func (ps *profileService) AddExperience(ctx context.Context, input ExperienceInput) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}

	var fields []apierr.FieldError
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, apierr.FieldError{Msg: "Title is required", Param: "title"})
	}
	if strings.TrimSpace(input.Company) == "" {
		fields = append(fields, apierr.FieldError{Msg: "Company is required", Param: "company"})
	}
	if input.From.IsZero() {
		fields = append(fields, apierr.FieldError{Msg: "From Date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, apierr.NewValidation(fields...)
	}

	profile, err := ps.loadOwnProfile(ctx, rd.UserID, "There is no profile for this user")
	if err != nil {
		return nil, err
	}

	exp := types.Experience{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	// Newest first.
	profile.Experience = append(datatypes.NewJSONSlice([]types.Experience{exp}), profile.Experience...)
	if _, err := ps.profileRepo.Update(ctx, nil, profile); err != nil {
		return nil, fmt.Errorf("Failed to save experience: %w", err)
	}
	ps.listCache.Delete(profileListCacheKey)
	return profile, nil
}

func (ps *profileService) RemoveExperience(ctx context.Context, experienceID uuid.UUID) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	profile, err := ps.loadOwnProfile(ctx, rd.UserID, "There is no profile for this user")
	if err != nil {
		return nil, err
	}
	// Index is recomputed from the sub-identity on every call; an unmatched
	// id removes nothing and is not an error.
	kept := profile.Experience[:0:0]
	for _, e := range profile.Experience {
		if e.ID != experienceID {
			kept = append(kept, e)
		}
	}
	profile.Experience = kept
	if _, err := ps.profileRepo.Update(ctx, nil, profile); err != nil {
		return nil, fmt.Errorf("Failed to save experience: %w", err)
	}
	ps.listCache.Delete(profileListCacheKey)
	return profile, nil
}

func (ps *profileService) AddEducation(ctx context.Context, input EducationInput) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}

	var fields []apierr.FieldError
	if strings.TrimSpace(input.School) == "" {
		fields = append(fields, apierr.FieldError{Msg: "School is required", Param: "school"})
	}
	if strings.TrimSpace(input.Degree) == "" {
		fields = append(fields, apierr.FieldError{Msg: "Degree is required", Param: "degree"})
	}
	if strings.TrimSpace(input.FieldOfStudy) == "" {
		fields = append(fields, apierr.FieldError{Msg: "Field of Study is required", Param: "fieldofstudy"})
	}
	if input.From.IsZero() {
		fields = append(fields, apierr.FieldError{Msg: "From Date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, apierr.NewValidation(fields...)
	}

	profile, err := ps.loadOwnProfile(ctx, rd.UserID, "There is no profile for this user")
	if err != nil {
		return nil, err
	}

	edu := types.Education{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	profile.Education = append(datatypes.NewJSONSlice([]types.Education{edu}), profile.Education...)
	if _, err := ps.profileRepo.Update(ctx, nil, profile); err != nil {
		return nil, fmt.Errorf("Failed to save education: %w", err)
	}
	ps.listCache.Delete(profileListCacheKey)
	return profile, nil
}

func (ps *profileService) RemoveEducation(ctx context.Context, educationID uuid.UUID) (*types.Profile, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "Token is not valid", apierr.ErrForbidden)
	}
	profile, err := ps.loadOwnProfile(ctx, rd.UserID, "There is no profile for this user")
	if err != nil {
		return nil, err
	}
	kept := profile.Education[:0:0]
	for _, e := range profile.Education {
		if e.ID != educationID {
			kept = append(kept, e)
		}
	}
	profile.Education = kept
	if _, err := ps.profileRepo.Update(ctx, nil, profile); err != nil {
		return nil, fmt.Errorf("Failed to save education: %w", err)
	}
	ps.listCache.Delete(profileListCacheKey)
	return profile, nil
}

func (ps *profileService) loadOwnProfile(ctx context.Context, userID uuid.UUID, notFoundMsg string) (*types.Profile, error) {
	profiles, err := ps.profileRepo.GetByUserIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("Failed to load profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, apierr.New(http.StatusBadRequest, notFoundMsg, apierr.ErrNotFound)
	}
	return profiles[0], nil
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/devconnector-backend/internal/logger"
	"github.com/yungbote/devconnector-backend/internal/services"
)

type ProfileHandler struct {
	log            *logger.Logger
	profileService services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		log:            log.With("handler", "ProfileHandler"),
		profileService: profileService,
	}
}

// GET /api/profile/me
func (ph *ProfileHandler) GetOwnProfile(c *gin.Context) {
	profile, err := ph.profileService.GetOwnProfile(c.Request.Context())
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// GET /api/profile
func (ph *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := ph.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profiles)
}

// GET /api/profile/user/:user_id
func (ph *ProfileHandler) GetProfileByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		// Malformed ids read as "no such profile", same as the route's
		// regular miss.
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Profile not found"})
		return
	}
	profile, err := ph.profileService.GetProfileByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// POST /api/profile
func (ph *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req struct {
		Status         string          `json:"status"`
		Skills         json.RawMessage `json:"skills"`
		Company        string          `json:"company"`
		Website        string          `json:"website"`
		Location       string          `json:"location"`
		Bio            string          `json:"bio"`
		GithubUsername string          `json:"githubusername"`
		Youtube        string          `json:"youtube"`
		Twitter        string          `json:"twitter"`
		Facebook       string          `json:"facebook"`
		Linkedin       string          `json:"linkedin"`
		Instagram      string          `json:"instagram"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	input := services.ProfileInput{
		Status:         req.Status,
		Skills:         parseSkills(req.Skills),
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	}
	profile, err := ph.profileService.UpsertProfile(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// PUT /api/profile/experience
func (ph *ProfileHandler) AddExperience(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location"`
		From        string `json:"from"`
		To          string `json:"to"`
		Current     bool   `json:"current"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	input := services.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        parseDate(req.From),
		To:          parseOptionalDate(req.To),
		Current:     req.Current,
		Description: req.Description,
	}
	profile, err := ph.profileService.AddExperience(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// DELETE /api/profile/experience/:exp_id
func (ph *ProfileHandler) RemoveExperience(c *gin.Context) {
	// A malformed id matches no entry; removal of nothing is a success.
	expID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		expID = uuid.Nil
	}
	profile, err := ph.profileService.RemoveExperience(c.Request.Context(), expID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// PUT /api/profile/education
func (ph *ProfileHandler) AddEducation(c *gin.Context) {
	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to"`
		Current      bool   `json:"current"`
		Description  string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	input := services.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         parseDate(req.From),
		To:           parseOptionalDate(req.To),
		Current:      req.Current,
		Description:  req.Description,
	}
	profile, err := ph.profileService.AddEducation(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// DELETE /api/profile/education/:edu_id
func (ph *ProfileHandler) RemoveEducation(c *gin.Context) {
	eduID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		eduID = uuid.Nil
	}
	profile, err := ph.profileService.RemoveEducation(c.Request.Context(), eduID)
	if err != nil {
		RespondServiceError(c, ph.log, err)
		return
	}
	RespondOK(c, profile)
}

// parseSkills accepts either a list ("skills": ["js","css"]) or the legacy
// comma-separated string ("skills": "js, css").
func parseSkills(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, s := range list {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		var out []string
		for _, s := range strings.Split(joined, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseOptionalDate(s string) *time.Time {
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

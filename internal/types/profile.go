package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Experience and Education live inside the owning Profile row as jsonb; they
// carry their own id so entries can be removed individually, but they have no
// table of their own.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Profile struct {
	ID             uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                          `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user"`
	Status         string                             `gorm:"not null;column:status" json:"status"`
	Company        string                             `gorm:"column:company" json:"company,omitempty"`
	Website        string                             `gorm:"column:website" json:"website,omitempty"`
	Location       string                             `gorm:"column:location" json:"location,omitempty"`
	Bio            string                             `gorm:"column:bio" json:"bio,omitempty"`
	GithubUsername string                             `gorm:"column:github_username" json:"githubusername,omitempty"`
	Skills         datatypes.JSONSlice[string]        `gorm:"type:jsonb;column:skills" json:"skills"`
	Social         datatypes.JSONType[SocialLinks]    `gorm:"type:jsonb;column:social" json:"social"`
	Experience     datatypes.JSONSlice[Experience]    `gorm:"type:jsonb;column:experience" json:"experience"`
	Education      datatypes.JSONSlice[Education]     `gorm:"type:jsonb;column:education" json:"education"`
	CreatedAt      time.Time                          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time                          `gorm:"not null;default:now()" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}

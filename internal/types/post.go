package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Like and Comment are embedded sub-records of a Post, same jsonb treatment
// as Experience/Education on Profile. Name and AvatarURL on Comment are
// snapshots of the author at comment time, never re-synced.
type Like struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"date"`
}

type Post struct {
	ID        uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID                     `gorm:"type:uuid;index;not null;column:user_id" json:"user"`
	Name      string                        `gorm:"not null;column:name" json:"name"`
	AvatarURL string                        `gorm:"column:avatar_url" json:"avatar"`
	Text      string                        `gorm:"not null;column:text" json:"text"`
	Likes     datatypes.JSONSlice[Like]     `gorm:"type:jsonb;column:likes" json:"likes"`
	Comments  datatypes.JSONSlice[Comment]  `gorm:"type:jsonb;column:comments" json:"comments"`
	CreatedAt time.Time                     `gorm:"not null;default:now();column:created_at" json:"date"`
	UpdatedAt time.Time                     `gorm:"not null;default:now()" json:"updated_at"`
}

func (Post) TableName() string {
	return "post"
}

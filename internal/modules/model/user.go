package model

import "time"

// User mirrors the identity store's auth_user table. The service only writes
// it when seeding the configured root admin.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Password    string     `gorm:"type:varchar(128);not null" json:"-"`
	LastLogin   *time.Time `json:"last_login"`
	IsSuperuser bool       `gorm:"not null;default:false" json:"is_superuser"`
	Username    string     `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	FirstName   string     `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	Email       string     `gorm:"type:varchar(254);not null;default:''" json:"email"`
	IsStaff     bool       `gorm:"not null;default:false" json:"is_staff"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	DateJoined  time.Time  `gorm:"autoCreateTime;not null" json:"date_joined"`
}

func (User) TableName() string { return "auth_user" }

// Token mirrors authtoken_token: one opaque API key per user.
type Token struct {
	Key     string    `gorm:"type:varchar(40);primaryKey" json:"-"`
	UserID  uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Created time.Time `gorm:"autoCreateTime;not null" json:"created"`

	// Token <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Token) TableName() string { return "authtoken_token" }

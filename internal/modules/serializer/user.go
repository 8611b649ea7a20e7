package serializer

import "github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"

type User struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewUser returns nil for a nil user so nested references render as null.
func NewUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func username(u *model.User) *string {
	if u == nil {
		return nil
	}
	name := u.Username
	return &name
}

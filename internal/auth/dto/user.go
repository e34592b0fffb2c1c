package dto

import (
	"time"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/domain"
)

// UserOutput is the public profile projection. The password hash never
// crosses this boundary.
type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UpdateProfileInput struct {
	Name  *string `json:"name" validate:"omitempty,min=2"`
	Phone *string `json:"phone" validate:"omitempty,e164"`
}

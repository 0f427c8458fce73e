package dto

import (
	"time"

	"passat/internal/domains/user/model"
	"passat/shared"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=superadmin admin staff"`
}

func (r *CreateUserRequest) ToModel(username, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		FullName: r.FullName,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=superadmin admin staff"`
	Active   *bool  `db:"active"    json:"active"    validate:"omitempty"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Active = model.Active
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

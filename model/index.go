package model

import "time"

type TokenClaim struct {
	UserId     uint   `json:"userId"`
	Email      string `json:"email"`
	UserTypeId uint   `json:"userTypeId"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}

// SignatureInput asks for signed params of a direct browser upload.
type SignatureInput struct {
	Folder   string `json:"folder" validate:"required,oneof=news hotels events"`
	PublicId string `json:"public_id" validate:"omitempty,max=200"`
}

package model

type News struct {
	DTO
	Title       string `gorm:"not null" json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	JoinDetail  string `json:"join_detail"`
	OwnerId     uint   `gorm:"index;not null" json:"owner_id"`
	Owner       User   `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE" json:"-"`
}

func (News) TableName() string {
	return "news"
}

type CreateNewsInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description"`
	JoinDetail  string `json:"join_detail"`
	OwnerId     uint   `json:"owner_id" validate:"required"`
}

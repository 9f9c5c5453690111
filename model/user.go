package model

type UserType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id"` // 0: admin, 1: user
	Name string `gorm:"not null" json:"name"`
}

type User struct {
	DTO
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string   `gorm:"not null" json:"-"`
	Name           string   `gorm:"not null" json:"name"`
	Lastname       string   `gorm:"not null" json:"lastname"`
	MobilePhone    string   `gorm:"not null" json:"mobile_phone"`
	UserTypeId     uint     `gorm:"not null" json:"user_type_id"`
	UserType       UserType `gorm:"foreignKey:UserTypeId" json:"-"`
}

func (u User) IsAdmin() bool {
	return u.UserTypeId == 0
}

type CreateUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Name        string `json:"name" validate:"required,max=100"`
	Lastname    string `json:"lastname" validate:"required,max=100"`
	MobilePhone string `json:"mobile_phone" validate:"required,max=20"`
}

type LoginInput struct {
	Email    string `json:"email" query:"email" validate:"required,email"`
	Password string `json:"password" query:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Data        User   `json:"data"`
}

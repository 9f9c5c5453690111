package model

type Board struct {
	DTO
	Title   string `gorm:"not null" json:"title"`
	Body    string `json:"body"`
	OwnerId uint   `gorm:"index;not null" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE" json:"-"`
}

type Discussion struct {
	DTO
	Body    string `gorm:"not null" json:"body"`
	OwnerId uint   `gorm:"index;not null" json:"owner_id"`
	BoardId uint   `gorm:"index;not null" json:"board_id"`
	Owner   User   `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE" json:"-"`
	Board   Board  `gorm:"foreignKey:BoardId;constraint:OnDelete:CASCADE" json:"-"`
}

// One row per user and discussion; a second interaction overwrites the type.
type DiscussionInteraction struct {
	DTO
	UserId          uint       `gorm:"uniqueIndex:idx_interaction_user_discussion;not null" json:"user_id"`
	DiscussionId    uint       `gorm:"uniqueIndex:idx_interaction_user_discussion;not null" json:"discussion_id"`
	InteractionType string     `gorm:"size:16;not null" json:"interaction_type"`
	User            User       `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	Discussion      Discussion `gorm:"foreignKey:DiscussionId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateBoardInput struct {
	Title   string `json:"title" validate:"required,max=200"`
	Body    string `json:"body"`
	OwnerId uint   `json:"owner_id" validate:"required"`
}

type CreateDiscussionInput struct {
	Body    string `json:"body" validate:"required"`
	OwnerId uint   `json:"owner_id" validate:"required"`
}

type DiscussionInteractionInput struct {
	UserId          uint   `json:"user_id" validate:"required"`
	InteractionType string `json:"interaction_type" validate:"required,oneof=LIKE DISLIKE"`
}

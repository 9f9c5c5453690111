package service

import (
	"context"

	"carbon_zero/model"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardService interface {
	List(ctx context.Context) ([]model.Board, error)
	Get(ctx context.Context, id uint) (*model.Board, error)
	Create(ctx context.Context, input model.CreateBoardInput) (*model.Board, error)
	CreateDiscussion(ctx context.Context, boardId uint, input model.CreateDiscussionInput) (*model.Discussion, error)
	ListDiscussions(ctx context.Context, boardId uint) ([]model.Discussion, error)
	Interact(ctx context.Context, discussionId uint, input model.DiscussionInteractionInput) (*model.DiscussionInteraction, error)
}

type boardService struct {
	db *gorm.DB
}

func NewBoardService(db *gorm.DB) BoardService {
	return &boardService{db: db}
}

func (s *boardService) List(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (s *boardService) Get(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	if err := s.db.WithContext(ctx).First(&board, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

func (s *boardService) Create(ctx context.Context, input model.CreateBoardInput) (*model.Board, error) {
	var board model.Board
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, input.OwnerId)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidReference
		}
		if err := copier.Copy(&board, &input); err != nil {
			return err
		}
		return tx.Create(&board).Error
	})
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *boardService) CreateDiscussion(ctx context.Context, boardId uint, input model.CreateDiscussionInput) (*model.Discussion, error) {
	discussion := model.Discussion{
		Body:    input.Body,
		OwnerId: input.OwnerId,
		BoardId: boardId,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, input.OwnerId)
		if err != nil {
			return err
		}
		var boards int64
		if err := tx.Model(&model.Board{}).Where("id = ?", boardId).Count(&boards).Error; err != nil {
			return err
		}
		if !ok || boards == 0 {
			return ErrInvalidReference
		}
		return tx.Create(&discussion).Error
	})
	if err != nil {
		return nil, err
	}
	return &discussion, nil
}

func (s *boardService) ListDiscussions(ctx context.Context, boardId uint) ([]model.Discussion, error) {
	var discussions []model.Discussion
	err := s.db.WithContext(ctx).
		Where("board_id = ?", boardId).
		Order("created_at ASC").
		Find(&discussions).Error
	if err != nil {
		return nil, err
	}
	return discussions, nil
}

// Interact records a LIKE or DISLIKE; a user keeps one interaction per discussion.
func (s *boardService) Interact(ctx context.Context, discussionId uint, input model.DiscussionInteractionInput) (*model.DiscussionInteraction, error) {
	interaction := model.DiscussionInteraction{
		UserId:          input.UserId,
		DiscussionId:    discussionId,
		InteractionType: input.InteractionType,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := userExists(tx, input.UserId)
		if err != nil {
			return err
		}
		var discussions int64
		if err := tx.Model(&model.Discussion{}).Where("id = ?", discussionId).Count(&discussions).Error; err != nil {
			return err
		}
		if !ok || discussions == 0 {
			return ErrInvalidReference
		}
		return tx.Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "discussion_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"interaction_type", "updated_at"}),
			},
			clause.Returning{},
		).Create(&interaction).Error
	})
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

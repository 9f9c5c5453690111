package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carbon_zero/constants"
	"carbon_zero/helper"
	"carbon_zero/model"
	"carbon_zero/utils"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, input model.CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, page model.Pagination) ([]model.User, int64, error)
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user model.User
	if err := copier.Copy(&user, &input); err != nil {
		return nil, err
	}
	user.Email = email
	user.HashedPassword = hash
	user.UserTypeId = constants.USER_TYPE_USER

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// two registrations racing past the count above
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *userService) List(ctx context.Context, page model.Pagination) ([]model.User, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := utils.ApplyPagination(query, page.Limit, page.Page).Order("id ASC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	if !helper.CheckPasswordHash(password, user.HashedPassword) {
		return nil, ErrInvalidLogin
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId:     user.ID,
		Email:      user.Email,
		UserTypeId: user.UserTypeId,
	})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &model.LoginResponse{AccessToken: token, Data: user}, nil
}

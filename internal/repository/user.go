package repository

import (
	"context"

	"gitee.com/flycash/ride-notification/internal/domain"
	"gitee.com/flycash/ride-notification/internal/repository/dao"
)

//go:generate mockgen -source=./user.go -destination=./mocks/user.mock.go -package=repomocks UserRepository
type UserRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	u, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return toDomainUser(u), nil
}

func toDomainUser(u dao.User) domain.User {
	return domain.User{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		CountryCode: u.CountryCode,
		Mobile:      u.Mobile,
	}
}

package dao

import (
	"context"
	"fmt"

	"gitee.com/flycash/ride-notification/internal/errs"
	"gitee.com/flycash/ride-notification/internal/pkg/graphql"
	"github.com/pkg/errors"
)

const getUserByIDQuery = `query GetUserByID($id: uuid!) {
  users_by_pk(id: $id) {
    id
    full_name
    email
    country_code
    mobile
  }
}`

type UserDAO interface {
	GetByID(ctx context.Context, id string) (User, error)
}

// User 用户表
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	Mobile      string `json:"mobile"`
}

type userDAO struct {
	client graphql.Client
}

func NewUserDAO(client graphql.Client) UserDAO {
	return &userDAO{client: client}
}

func (d *userDAO) GetByID(ctx context.Context, id string) (User, error) {
	var resp struct {
		User *User `json:"users_by_pk"`
	}
	err := d.client.Run(ctx, getUserByIDQuery, map[string]any{"id": id}, &resp)
	if err != nil {
		return User{}, errors.Wrapf(err, "查询用户失败 id=%s", id)
	}
	if resp.User == nil {
		return User{}, fmt.Errorf("%w: id = %s", errs.ErrUserNotFound, id)
	}
	return *resp.User, nil
}

package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userFromModel(m UserModel) domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         m.Role,
		Avatar:       m.Avatar,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows := make([]UserModel, 0)
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		result = append(result, userFromModel(m))
	}
	return result, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint) (domain.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.User{}, translateGetError(err, "user", id)
	}
	return userFromModel(m), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var m UserModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Entity: "user"}
		}
		return domain.User{}, err
	}
	return userFromModel(m), nil
}

func (r *UserRepository) Create(ctx context.Context, value domain.NewUser) (domain.User, error) {
	m := UserModel{
		Name:         value.Name,
		Email:        strings.ToLower(strings.TrimSpace(value.Email)),
		Role:         value.Role,
		Avatar:       value.Avatar,
		Username:     strings.TrimSpace(value.Username),
		PasswordHash: value.PasswordHash,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.User{}, err
	}
	return userFromModel(m), nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, value domain.UpdateUser) (domain.User, error) {
	updates := map[string]any{}
	if value.Name != nil {
		updates["name"] = *value.Name
	}
	if value.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*value.Email))
	}
	if value.Role != nil {
		updates["role"] = *value.Role
	}
	if value.Avatar != nil {
		updates["avatar"] = *value.Avatar
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return domain.User{}, err
		}
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &UserModel{}, "user", id)
}

package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/salesavor/salesavor/internal/profile/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, profile *domain.UserProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, profile *domain.UserProfile) error {
	return db.WithContext(ctx).Save(profile).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error) {
	tx := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.UserProfile{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, profile *UserProfile) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*UserProfile, error)
	Save(ctx context.Context, db *gorm.DB, profile *UserProfile) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
}

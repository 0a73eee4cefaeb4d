package user

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

type userRow struct {
	ID           string `gorm:"primaryKey;size:64"`
	Username     string `gorm:"not null"`
	UsernameKey  string `gorm:"not null;uniqueIndex"`
	DisplayName  string
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

func (userRow) TableName() string {
	return "users"
}

type gormRepository struct {
	db *gorm.DB
}

// Migrate creates or updates the users table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{})
}

// NewGormRepository creates a user repository on a relational database
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (r *gormRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument("user cannot be nil")
	}
	u := input.User
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", u.ID, vb)
	errors.ValidateRequired("username", u.Username, vb)
	errors.ValidateRequired("password_hash", u.PasswordHash, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	row := &userRow{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		UsernameKey:  usernameKey(u.Username),
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.AlreadyExistsf("username %s is taken", row.Username).
				WithMeta("username", row.Username)
		}
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &CreateOutput{User: fromRow(row)}, nil
}

func (r *gormRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("ID cannot be empty")
	}

	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("user %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get user %s", input.ID)
	}

	return &GetOutput{User: fromRow(&row)}, nil
}

func (r *gormRepository) GetByUsername(ctx context.Context, input *GetByUsernameInput) (*GetByUsernameOutput, error) {
	key := usernameKey(input.Username)
	if key == "" {
		return nil, errors.InvalidArgument("username cannot be empty")
	}

	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "username_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("user %s not found", input.Username)
		}
		return nil, errors.Wrap(err, "failed to get user by username")
	}

	return &GetByUsernameOutput{User: fromRow(&row)}, nil
}

func fromRow(row *userRow) *entities.User {
	return &entities.User{
		ID:           row.ID,
		Username:     row.Username,
		DisplayName:  row.DisplayName,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

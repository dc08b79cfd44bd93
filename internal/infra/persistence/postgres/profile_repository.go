package postgres

import (
	"context"
	"strings"
	"time"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"
	"loopcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE. It only serializes
// callers when repo is bound to a transaction.
func (repo *profileRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(lockForUpdate(repo.db.WithContext(ctx)), "id = ?", id)
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "email = ?", normalizeEmail(email))
}

func (repo *profileRepository) findOne(db *gorm.DB, query string, arg any) (*entity.User, error) {
	var profileM model.ProfileModel
	if err := db.Where(query, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	return toUserDomain(&profileM), nil
}

func (repo *profileRepository) Create(ctx context.Context, user *entity.User) error {
	profileM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("profile already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	user.ID = profileM.ID
	user.Email = profileM.Email
	user.CreatedAt = profileM.CreatedAt
	user.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *profileRepository) UpdateTier(ctx context.Context, id uuid.UUID, tier entity.Tier) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"tier": string(tier), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tier")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

func toUserDomain(data *model.ProfileModel) *entity.User {
	if data == nil {
		return nil
	}

	tier := entity.Tier(data.Tier)
	if !tier.Valid() {
		tier = entity.TierFree
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Tier:      tier,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.ProfileModel {
	if data == nil {
		return nil
	}

	tier := data.Tier
	if !tier.Valid() {
		tier = entity.TierFree
	}

	return &model.ProfileModel{
		ID:    data.ID,
		Email: normalizeEmail(data.Email),
		Tier:  string(tier),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func lockForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

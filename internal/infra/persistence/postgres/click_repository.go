package postgres

import (
	"context"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"
	"loopcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository is the constructor for clickRepository.
func NewClickRepository(db *gorm.DB) repository.ClickRepository {
	return &clickRepository{db: db}
}

// Create inserts click. An unknown card surfaces as CARD_NOT_FOUND.
func (repo *clickRepository) Create(ctx context.Context, click *entity.Click) error {
	clickM := &model.ClickModel{
		CardID:    click.CardID,
		Type:      click.Type,
		TargetURL: click.TargetURL,
	}

	if err := repo.db.WithContext(ctx).Create(clickM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCardNotFound.WrapMessage("click references unknown card")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record click")
	}

	click.ID = clickM.ID
	click.CreatedAt = clickM.CreatedAt

	return nil
}

func (repo *clickRepository) FindByCardID(ctx context.Context, cardID uuid.UUID) ([]*entity.Click, error) {
	var clickModels []*model.ClickModel
	err := repo.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at DESC, id DESC").
		Find(&clickModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list clicks")
	}

	clicks := make([]*entity.Click, 0, len(clickModels))
	for _, clickM := range clickModels {
		clicks = append(clicks, &entity.Click{
			ID:        clickM.ID,
			CardID:    clickM.CardID,
			Type:      clickM.Type,
			TargetURL: clickM.TargetURL,
			CreatedAt: clickM.CreatedAt,
		})
	}

	return clicks, nil
}

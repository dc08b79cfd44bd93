package postgres

import (
	"context"
	"time"

	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/repository"
	"loopcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// cardMutableColumns are overwritten by Update. The QR columns belong to
// UpdateQRLink and ownership never changes.
var cardMutableColumns = []string{
	"profile_photo", "banner_photo", "full_name", "business_name", "role", "tagline",
	"contact", "socials", "address", "gallery", "enabled_fields", "updated_at",
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

func (repo *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("card owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required card information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create card")
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

func (repo *cardRepository) Update(ctx context.Context, card *entity.Card) error {
	cardM := fromCardDomain(card)
	cardM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{ID: card.ID}).
		Select(cardMutableColumns).
		Updates(cardM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

func (repo *cardRepository) UpdateQRLink(ctx context.Context, id uuid.UUID, qrURL string, state entity.QRState) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"qr_code_url": qrURL,
			"qr_state":    string(state),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update card qr link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

func (repo *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CardModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

func (repo *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	var cardM model.CardModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find card")
	}

	return toCardDomain(&cardM), nil
}

func (repo *cardRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	return repo.find(ctx, "created_at DESC, id DESC", "user_id = ?", userID)
}

func (repo *cardRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CardModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count cards")
	}

	return count, nil
}

// FindUnlinkedByUserID returns the user's half-created cards oldest first.
func (repo *cardRepository) FindUnlinkedByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Card, error) {
	return repo.find(ctx, "created_at ASC, id ASC", "user_id = ? AND qr_state = ?", userID, string(entity.QRStateCreated))
}

func (repo *cardRepository) find(ctx context.Context, order string, query string, args ...any) ([]*entity.Card, error) {
	var cardModels []*model.CardModel
	if err := repo.db.WithContext(ctx).Where(query, args...).Order(order).Find(&cardModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cards")
	}

	cards := make([]*entity.Card, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toCardDomain(cardM))
	}

	return cards, nil
}

// --- Mapper Functions ---

func toCardDomain(data *model.CardModel) *entity.Card {
	if data == nil {
		return nil
	}

	contact := data.Contact.Data()
	fields := data.EnabledFields.Data()

	socials := make([]entity.SocialLink, 0, len(data.Socials))
	for _, s := range data.Socials {
		socials = append(socials, entity.SocialLink{
			ID:       s.ID,
			Platform: entity.Platform(s.Platform),
			Username: s.Username,
			Enabled:  s.Enabled,
		})
	}

	card := &entity.Card{
		ID:           data.ID,
		UserID:       data.UserID,
		ProfilePhoto: data.ProfilePhoto,
		BannerPhoto:  data.BannerPhoto,
		FullName:     data.FullName,
		BusinessName: data.BusinessName,
		Role:         data.Role,
		Tagline:      data.Tagline,
		Contact: entity.Contact{
			Phone:    contact.Phone,
			WhatsApp: contact.WhatsApp,
			Email:    contact.Email,
			Website:  contact.Website,
		},
		Socials: socials,
		Address: data.Address,
		Gallery: append([]string{}, data.Gallery...),
		EnabledFields: entity.EnabledFields{
			Phone:    fields.Phone,
			WhatsApp: fields.WhatsApp,
			Email:    fields.Email,
			Website:  fields.Website,
			Address:  fields.Address,
			Gallery:  fields.Gallery,
		},
		QRCodeURL: data.QRCodeURL,
		QRState:   entity.QRState(data.QRState),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	return card
}

func fromCardDomain(data *entity.Card) *model.CardModel {
	if data == nil {
		return nil
	}

	socials := make([]model.SocialLinkJSON, 0, len(data.Socials))
	for _, s := range data.Socials {
		socials = append(socials, model.SocialLinkJSON{
			ID:       s.ID,
			Platform: string(s.Platform),
			Username: s.Username,
			Enabled:  s.Enabled,
		})
	}

	return &model.CardModel{
		ID:           data.ID,
		UserID:       data.UserID,
		ProfilePhoto: data.ProfilePhoto,
		BannerPhoto:  data.BannerPhoto,
		FullName:     data.FullName,
		BusinessName: data.BusinessName,
		Role:         data.Role,
		Tagline:      data.Tagline,
		Contact: datatypes.NewJSONType(model.ContactJSON{
			Phone:    data.Contact.Phone,
			WhatsApp: data.Contact.WhatsApp,
			Email:    data.Contact.Email,
			Website:  data.Contact.Website,
		}),
		Socials: datatypes.NewJSONSlice(socials),
		Address: data.Address,
		Gallery: datatypes.NewJSONSlice(append([]string{}, data.Gallery...)),
		EnabledFields: datatypes.NewJSONType(model.EnabledFieldsJSON{
			Phone:    data.EnabledFields.Phone,
			WhatsApp: data.EnabledFields.WhatsApp,
			Email:    data.EnabledFields.Email,
			Website:  data.EnabledFields.Website,
			Address:  data.EnabledFields.Address,
			Gallery:  data.EnabledFields.Gallery,
		}),
		QRCodeURL: data.QRCodeURL,
		QRState:   string(data.QRState),
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"loopcard/internal/delivery/api/response"
	"loopcard/internal/domain/entity"
	"loopcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC usecase.CardUsecase
	Logger *slog.Logger
}

// CardHandler serves card management for the signed-in owner.
type CardHandler struct {
	cardUC usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler.
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC: params.CardUC,
		logger: params.Logger,
	}
}

// CardRequest is the editable part of a card, used by create and update.
type CardRequest struct {
	ProfilePhoto  string                `json:"profile_photo" validate:"omitempty,url"`
	BannerPhoto   string                `json:"banner_photo" validate:"omitempty,url"`
	FullName      string                `json:"full_name" validate:"required,notblank,max=120"`
	BusinessName  string                `json:"business_name" validate:"max=120"`
	Role          string                `json:"role" validate:"max=120"`
	Tagline       string                `json:"tagline" validate:"max=280"`
	Contact       entity.Contact        `json:"contact"`
	Socials       []entity.SocialLink   `json:"socials" validate:"max=20"`
	Address       string                `json:"address" validate:"max=280"`
	Gallery       []string              `json:"gallery" validate:"max=12,dive,url"`
	EnabledFields *entity.EnabledFields `json:"enabled_fields"`
}

func (r *CardRequest) toInput() *usecase.CardInput {
	return &usecase.CardInput{
		ProfilePhoto:  r.ProfilePhoto,
		BannerPhoto:   r.BannerPhoto,
		FullName:      r.FullName,
		BusinessName:  r.BusinessName,
		Role:          r.Role,
		Tagline:       r.Tagline,
		Contact:       r.Contact,
		Socials:       r.Socials,
		Address:       r.Address,
		Gallery:       r.Gallery,
		EnabledFields: r.EnabledFields,
	}
}

func (h *CardHandler) ListCards(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cards, err := h.cardUC.ListCards(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cards)
}

func (h *CardHandler) CreateCard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.CreateCard(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, card)
}

func (h *CardHandler) UpdateCard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.UpdateCard(c.Request().Context(), userID, cardID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card)
}

func (h *CardHandler) DeleteCard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cardUC.DeleteCard(c.Request().Context(), userID, cardID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RepairQRLinks finishes cards whose QR link write failed.
func (h *CardHandler) RepairQRLinks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.cardUC.RepairQRLinks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"repaired": output.Repaired,
		"failed":   output.Failed,
	})
}

// UploadAssetRequest is the body of POST /assets.
type UploadAssetRequest struct {
	DataURL string `json:"data_url" validate:"required"`
}

// UploadAsset stores a card photo and returns its public URL.
func (h *CardHandler) UploadAsset(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UploadAssetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	url, err := h.cardUC.UploadAsset(c.Request().Context(), userID, req.DataURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"loopcard/internal/delivery/api/response"
	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/vcard"
	"loopcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublicHandlerParams holds dependencies for PublicHandler, injected by Fx.
type PublicHandlerParams struct {
	fx.In

	CardUC      usecase.CardUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// PublicHandler serves the unauthenticated visitor routes.
type PublicHandler struct {
	cardUC      usecase.CardUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewPublicHandler is the constructor for PublicHandler.
func NewPublicHandler(params PublicHandlerParams) *PublicHandler {
	return &PublicHandler{
		cardUC:      params.CardUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// RecordClickRequest is a visitor interaction on a public card.
type RecordClickRequest struct {
	Type      string `json:"type" validate:"required,notblank,max=64"`
	TargetURL string `json:"target_url" validate:"max=2048"`
}

// ScanRequest carries the raw text decoded from a QR code.
type ScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// GetCard returns the public view of a card.
func (h *PublicHandler) GetCard(c echo.Context) error {
	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	card := h.cardUC.GetCardByID(c.Request().Context(), cardID)
	if card == nil {
		return domainerrors.ErrCardNotFound
	}

	return response.Success(c, http.StatusOK, card)
}

// GetQRCode renders the PNG QR code pointing at the card's public page.
func (h *PublicHandler) GetQRCode(c echo.Context) error {
	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.cardUC.RenderQRCode(c.Request().Context(), cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

// DownloadVCard exports the card as a vCard attachment and counts the
// download as a save_contact click.
func (h *PublicHandler) DownloadVCard(c echo.Context) error {
	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	out, err := h.cardUC.ExportVCard(ctx, cardID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.analyticsUC.RecordClick(ctx, &usecase.RecordClickInput{
		CardID:    cardID,
		Type:      entity.ClickTypeSaveContact,
		TargetURL: vcard.ClickTarget,
	})

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.FileName))

	return c.Blob(http.StatusOK, out.ContentType, out.Data)
}

// RecordClick accepts a visitor interaction. Recording happens in the
// background so the visitor is never blocked on it. Rejected input is only
// logged: the visitor always gets 202.
func (h *PublicHandler) RecordClick(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	cardID, err := paramUUID(c, "id")
	if err != nil {
		logger.Warn("Dropping click for malformed card id", slog.String("id", c.Param("id")))

		return c.NoContent(http.StatusAccepted)
	}

	var req RecordClickRequest
	if err := bindAndValidate(c, &req); err != nil {
		logger.Warn("Dropping malformed click", slog.Any("card_id", cardID), slog.Any("error", err))

		return c.NoContent(http.StatusAccepted)
	}

	h.analyticsUC.RecordClick(ctx, &usecase.RecordClickInput{
		CardID:    cardID,
		Type:      req.Type,
		TargetURL: req.TargetURL,
	})

	return c.NoContent(http.StatusAccepted)
}

// ResolveScan maps a scanned QR payload to the public card it points at.
func (h *PublicHandler) ResolveScan(c echo.Context) error {
	var req ScanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	card, err := h.cardUC.ResolveScan(c.Request().Context(), req.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, card)
}

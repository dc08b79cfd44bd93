package handler

import (
	"log/slog"
	"net/http"
	"time"

	"loopcard/internal/delivery/api/response"
	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	InsightUC   usecase.InsightUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the analytics dashboard and the AI features.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	insightUC   usecase.InsightUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		insightUC:   params.InsightUC,
		logger:      params.Logger,
	}
}

// SuggestUsernamesRequest is the body of POST /cards/:id/username-suggestions.
// Blank name fields are taken from the card.
type SuggestUsernamesRequest struct {
	Platform     string `json:"platform" validate:"required,notblank"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	BusinessName string `json:"business_name"`
}

// GetSummary returns the click summary of an owned card.
// Query: window=7|14|30|60|90|all, tz=<IANA zone>.
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	loc := time.UTC
	if tz := c.QueryParam("tz"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("unknown time zone " + tz)
		}
	}

	summary, err := h.analyticsUC.Summary(c.Request().Context(), &usecase.SummaryInput{
		UserID:   userID,
		CardID:   cardID,
		Window:   window,
		Location: loc,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GenerateInsights asks the model to interpret the card's clicks.
func (h *AnalyticsHandler) GenerateInsights(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	text, err := h.insightUC.GenerateInsights(c.Request().Context(), userID, cardID, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insights": text})
}

func (h *AnalyticsHandler) SuggestUsernames(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cardID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req SuggestUsernamesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	suggestions, err := h.insightUC.SuggestUsernames(c.Request().Context(), userID, &usecase.SuggestUsernamesInput{
		CardID:       cardID,
		FullName:     req.FullName,
		Role:         req.Role,
		BusinessName: req.BusinessName,
		Platform:     entity.Platform(req.Platform),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"suggestions": suggestions})
}

func parseWindow(c echo.Context) (analytics.Window, error) {
	window, err := analytics.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return window, nil
}

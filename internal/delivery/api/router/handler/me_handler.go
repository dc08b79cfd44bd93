package handler

import (
	"log/slog"
	"net/http"

	"loopcard/internal/delivery/api/response"
	"loopcard/internal/domain/entity"
	"loopcard/internal/domain/policy"
	"loopcard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MeHandlerParams holds dependencies for MeHandler, injected by Fx.
type MeHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// MeHandler serves the signed-in user's session state.
type MeHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewMeHandler is the constructor for MeHandler.
func NewMeHandler(params MeHandlerParams) *MeHandler {
	return &MeHandler{
		accountUC: params.AccountUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ChangeTierRequest is the body of PUT /me/tier.
type ChangeTierRequest struct {
	Tier string `json:"tier" validate:"required,tier"`
}

// MeResponse is the session state of the caller.
type MeResponse struct {
	User         *entity.User        `json:"user"`
	Capabilities policy.Capabilities `json:"capabilities"`
	Cards        []*entity.Card      `json:"cards"`
	Loading      bool                `json:"loading"`
}

// GetMe returns the profile, capabilities and mirrored cards.
func (h *MeHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.sessionUC.Current(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := &MeResponse{
		User:    snapshot.User,
		Cards:   snapshot.Cards,
		Loading: snapshot.Loading,
	}
	if snapshot.User != nil {
		resp.Capabilities = policy.Resolve(snapshot.User.Tier)
	}

	return response.Success(c, http.StatusOK, resp)
}

// ChangeTier is the settings-page plan switch.
func (h *MeHandler) ChangeTier(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ChangeTierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.ChangeTier(c.Request().Context(), userID, entity.Tier(req.Tier))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         user,
		"capabilities": policy.Resolve(user.Tier),
	})
}

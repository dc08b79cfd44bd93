package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "loopcard/internal/delivery/context"
	"loopcard/internal/domain/analytics"
	"loopcard/internal/domain/entity"
	domainerrors "loopcard/internal/domain/errors"
	"loopcard/internal/domain/policy"
	"loopcard/internal/domain/repository"
	"loopcard/internal/domain/service"
	"loopcard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxUsernameSuggestions = 5

// insightService implements the InsightUsecase interface.
type insightService struct {
	profileRepo repository.ProfileRepository
	cardRepo    repository.CardRepository
	clickRepo   repository.ClickRepository
	generator   service.InsightGenerator
	now         func() time.Time
	logger      *slog.Logger
}

// InsightServiceParams holds dependencies for InsightService, injected by Fx.
type InsightServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	CardRepo    repository.CardRepository
	ClickRepo   repository.ClickRepository
	Generator   service.InsightGenerator
	Logger      *slog.Logger
}

// NewInsightService is the constructor for insightService.
func NewInsightService(params InsightServiceParams) usecase.InsightUsecase {
	return &insightService{
		profileRepo: params.ProfileRepo,
		cardRepo:    params.CardRepo,
		clickRepo:   params.ClickRepo,
		generator:   params.Generator,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *insightService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAI fails with FEATURE_NOT_AVAILABLE unless the tier of userID
// includes the AI features.
func (srv *insightService) requireAI(ctx context.Context, userID uuid.UUID) error {
	user, err := findProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return err
	}
	if !policy.Resolve(user.Tier).CanUseAIFeatures {
		return domainerrors.ErrFeatureNotAvailable.WithDetails("AI features require the Pro plan")
	}

	return nil
}

// GenerateInsights asks the model to interpret the click summary of a card.
// Any model failure yields InsightsPlaceholder.
func (srv *insightService) GenerateInsights(ctx context.Context, userID, cardID uuid.UUID, window analytics.Window) (string, error) {
	if err := srv.requireAI(ctx, userID); err != nil {
		return "", err
	}

	card, err := findOwnedCard(ctx, srv.cardRepo, userID, cardID)
	if err != nil {
		return "", err
	}

	clicks, err := srv.clickRepo.FindByCardID(ctx, cardID)
	if err != nil {
		srv.log(ctx).Error("Error fetching clicks for insights", slog.Any("card_id", cardID), slog.Any("error", err))
		clicks = []*entity.Click{}
	}

	summary := analytics.Summarize(clicks, window, srv.now(), time.UTC, true)

	text, err := srv.generator.GenerateText(ctx, buildInsightsPrompt(card, summary))
	if err != nil || strings.TrimSpace(text) == "" {
		srv.log(ctx).Error("Error generating insights", slog.Any("card_id", cardID), slog.Any("error", err))

		return usecase.InsightsPlaceholder, nil
	}

	return text, nil
}

// SuggestUsernames asks the model for handles on a platform. Any model
// failure yields an empty list.
func (srv *insightService) SuggestUsernames(ctx context.Context, userID uuid.UUID, input *usecase.SuggestUsernamesInput) ([]string, error) {
	if err := srv.requireAI(ctx, userID); err != nil {
		return nil, err
	}

	subject := *input
	if input.CardID != uuid.Nil {
		card, err := findOwnedCard(ctx, srv.cardRepo, userID, input.CardID)
		if err != nil {
			return nil, err
		}
		subject.FullName = firstNonBlank(subject.FullName, card.FullName)
		subject.Role = firstNonBlank(subject.Role, card.Role)
		subject.BusinessName = firstNonBlank(subject.BusinessName, card.BusinessName)
	}

	if strings.TrimSpace(subject.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name is required")
	}
	if strings.TrimSpace(string(subject.Platform)) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform is required")
	}

	suggestions, err := srv.generator.GenerateList(ctx, buildUsernamePrompt(&subject))
	if err != nil {
		srv.log(ctx).Error("Error generating username suggestions", slog.String("platform", string(subject.Platform)), slog.Any("error", err))

		return []string{}, nil
	}

	return cleanSuggestions(suggestions), nil
}

func buildInsightsPrompt(card *entity.Card, summary analytics.Summary) string {
	var b strings.Builder

	b.WriteString("Analyze the following digital business card analytics data and provide actionable insights.\n")
	b.WriteString("The user is a professional looking to improve their networking effectiveness.\n")
	b.WriteString("Provide the analysis in markdown format with clear headings.\n\n")

	fmt.Fprintf(&b, "Card: %s", card.FullName)
	if card.Role != "" {
		fmt.Fprintf(&b, ", %s", card.Role)
	}
	if card.BusinessName != "" {
		fmt.Fprintf(&b, " at %s", card.BusinessName)
	}
	b.WriteString("\n\nData:\n")
	fmt.Fprintf(&b, "- Window: %s\n", summary.Window)
	fmt.Fprintf(&b, "- Total Clicks: %d\n", summary.Total)

	types := make([]string, 0, len(summary.ByType))
	for _, tc := range summary.ByType {
		types = append(types, fmt.Sprintf("%s (%d)", tc.Type, tc.Count))
	}
	fmt.Fprintf(&b, "- Clicks by Type: %s\n", strings.Join(types, ", "))

	days := make([]string, 0, len(summary.ByDay))
	for _, dc := range summary.ByDay {
		days = append(days, fmt.Sprintf("%s: %d", dc.Date, dc.Count))
	}
	fmt.Fprintf(&b, "- Clicks by Day: %s\n\n", strings.Join(days, ", "))

	b.WriteString("Analysis Required:\n")
	b.WriteString("1. **Overall Performance:** Summarize how the card is performing.\n")
	b.WriteString("2. **Engagement Insights:** Which contact channels do visitors prefer?\n")
	b.WriteString("3. **Activity Trend:** What does the daily activity suggest?\n")
	b.WriteString("4. **Actionable Recommendations:** Give 3 concrete recommendations to improve the card.\n")

	return b.String()
}

func buildUsernamePrompt(input *usecase.SuggestUsernamesInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Suggest %d professional %s usernames for %s", maxUsernameSuggestions, input.Platform, strings.TrimSpace(input.FullName))
	if role := strings.TrimSpace(input.Role); role != "" {
		fmt.Fprintf(&b, ", who works as %s", role)
	}
	if business := strings.TrimSpace(input.BusinessName); business != "" {
		fmt.Fprintf(&b, " at %s", business)
	}
	b.WriteString(". Usernames must be short, contain no spaces and suit the platform. ")
	b.WriteString("Respond with a JSON array of strings only.")

	return b.String()
}

// cleanSuggestions drops blanks and duplicates and caps the list.
func cleanSuggestions(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, maxUsernameSuggestions)
	for _, s := range raw {
		s = strings.TrimPrefix(strings.TrimSpace(s), "@")
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == maxUsernameSuggestions {
			break
		}
	}

	return out
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

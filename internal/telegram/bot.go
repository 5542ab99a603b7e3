package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"nutriverse/internal/appointment"
	"nutriverse/internal/config"
	"nutriverse/internal/logger"
	"nutriverse/internal/metrics"
	"nutriverse/internal/planner"
	"nutriverse/internal/shared"
	"nutriverse/internal/user"
)

// Bot wraps the Telegram API and exposes the planner and appointment
// features to linked accounts.
type Bot struct {
	api          *tgbotapi.BotAPI
	cfg          *config.Config
	users        *user.Repository
	generator    *planner.Generator
	plans        *planner.PlanRepository
	appointments *appointment.Service
	metricsStore *metrics.Store
}

// NewBot initializes the Telegram Bot and sets the webhook.
func NewBot(
	cfg *config.Config,
	users *user.Repository,
	generator *planner.Generator,
	plans *planner.PlanRepository,
	appointments *appointment.Service,
	metricsStore *metrics.Store,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("account", api.Self.UserName))

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	logger.Info("Webhook set", zap.String("response", resp.Description))

	return &Bot{
		api:          api,
		cfg:          cfg,
		users:        users,
		generator:    generator,
		plans:        plans,
		appointments: appointments,
		metricsStore: metricsStore,
	}, nil
}

// HandleWebhook is the HTTP handler for Telegram updates.
func (b *Bot) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		logger.Warn("Failed to parse telegram update", zap.Error(err))
		return
	}

	if update.Message == nil {
		return
	}

	if !b.isAllowed(update.Message.From.ID) {
		logger.Warn("Unauthorized telegram access attempt",
			zap.Int64("user_id", update.Message.From.ID),
			zap.String("username", update.Message.From.UserName))
		return
	}

	go b.processMessage(update.Message)
}

// isAllowed checks the allowlist. An empty allowlist admits everyone.
func (b *Bot) isAllowed(telegramID int64) bool {
	if len(b.cfg.TelegramAllowedUserIDs) == 0 {
		return true
	}
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if telegramID == id {
			return true
		}
	}
	return false
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	ctx := context.Background()
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/metrics":
		b.handleMetricsRequest(msg)
	case strings.HasPrefix(text, "/link"):
		b.handleLink(ctx, msg)
	case text == "/plan":
		b.withLinkedUser(ctx, msg, b.handleGeneratePlan)
	case text == "/myplan":
		b.withLinkedUser(ctx, msg, b.handleMyPlan)
	case text == "/meals":
		b.withLinkedUser(ctx, msg, b.handleMeals)
	case text == "/appointments":
		b.withLinkedUser(ctx, msg, b.handleAppointments)
	default:
		b.send(msg.Chat.ID, helpText)
	}
}

const helpText = `👋 *Nutriverse Bot*

/link <email> - link your account
/plan - generate a fresh weekly meal plan
/myplan - show your current plan
/meals - meal suggestions for your profile
/appointments - your upcoming appointments`

func (b *Bot) handleLink(ctx context.Context, msg *tgbotapi.Message) {
	parts := strings.Fields(msg.Text)
	if len(parts) != 2 {
		b.send(msg.Chat.ID, "Usage: `/link your@email.com`")
		return
	}

	u, err := b.users.GetByEmail(ctx, strings.ToLower(parts[1]))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			b.send(msg.Chat.ID, "❌ No account found for that email. Sign up on the website first.")
			return
		}
		logger.Error("Failed to look up account for linking", zap.Error(err))
		b.send(msg.Chat.ID, "❌ Something went wrong, try again later.")
		return
	}

	if err := b.users.LinkTelegram(ctx, u.ID, msg.From.ID); err != nil {
		logger.Error("Failed to link telegram account", zap.Error(err))
		b.send(msg.Chat.ID, "❌ Something went wrong, try again later.")
		return
	}
	b.send(msg.Chat.ID, fmt.Sprintf("✅ Linked to *%s*. Try /plan to get started.", u.Email))
}

// withLinkedUser resolves the sender to a linked account before running fn.
func (b *Bot) withLinkedUser(ctx context.Context, msg *tgbotapi.Message, fn func(ctx context.Context, chatID int64, u *user.User)) {
	u, err := b.users.GetByTelegramID(ctx, msg.From.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			b.send(msg.Chat.ID, "🔗 Not linked yet. Use `/link your@email.com` first.")
			return
		}
		logger.Error("Failed to resolve telegram user", zap.Error(err))
		b.send(msg.Chat.ID, "❌ Something went wrong, try again later.")
		return
	}
	fn(ctx, msg.Chat.ID, u)
}

func (b *Bot) handleGeneratePlan(ctx context.Context, chatID int64, u *user.User) {
	plan, err := b.generator.Generate(u.PlannerProfile())
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrIncompleteProfile):
			b.send(chatID, "📝 Set your diet type and fitness plan in the app first.")
		case errors.Is(err, shared.ErrNoCandidates):
			b.send(chatID, "🤷 No meals match your diet, plan and allergies. Loosen a filter and retry.")
		default:
			logger.Error("Failed to generate plan", zap.Error(err))
			b.send(chatID, "❌ Something went wrong, try again later.")
		}
		return
	}

	if err := b.plans.Save(ctx, u.ID, plan); err != nil {
		logger.Warn("Failed to save generated plan", zap.String("user_id", u.ID), zap.Error(err))
	}
	b.metricsStore.Record(metrics.EventPlanGenerated, u.ID)
	b.send(chatID, formatPlanMarkdown(plan))
}

func (b *Bot) handleMyPlan(ctx context.Context, chatID int64, u *user.User) {
	plan, err := b.plans.Get(ctx, u.ID)
	if err != nil {
		logger.Error("Failed to load plan", zap.Error(err))
		b.send(chatID, "❌ Something went wrong, try again later.")
		return
	}
	if plan.IsEmpty() {
		b.send(chatID, "🗓️ No plan yet. Send /plan to generate one.")
		return
	}
	b.send(chatID, formatPlanMarkdown(plan))
}

func (b *Bot) handleMeals(ctx context.Context, chatID int64, u *user.User) {
	profile := u.PlannerProfile()
	if profile.Diet == "" || profile.Plan == "" {
		b.send(chatID, "📝 Set your diet type and fitness plan in the app first.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🍽 *Meal Suggestions*\n\n")
	count := 0
	for _, m := range b.generator.Catalog().MealsFor(profile.Diet, profile.Plan) {
		if m.ContainsAny(profile.Allergies) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s *%s* (%d kcal)\n_%s_\n\n", m.Emoji, m.Name, m.Calories, m.Description))
		count++
	}
	if count == 0 {
		b.send(chatID, "🤷 No meals match your diet, plan and allergies.")
		return
	}
	b.send(chatID, sb.String())
}

func (b *Bot) handleAppointments(ctx context.Context, chatID int64, u *user.User) {
	var (
		appts []appointment.Appointment
		err   error
	)
	if u.Role == user.RoleDoctor {
		appts, err = b.appointments.ListForDoctor(ctx, u.ID)
	} else {
		appts, err = b.appointments.ListForPatient(ctx, u.ID)
	}
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		b.send(chatID, "❌ Something went wrong, try again later.")
		return
	}
	b.send(chatID, formatAppointmentsMarkdown(appts))
}

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.send(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}

	totals, err := b.metricsStore.Totals(7)
	if err != nil {
		b.send(msg.Chat.ID, "❌ Error fetching metrics.")
		return
	}
	health := metrics.GetSysHealth(b.dataDir())

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Last 7 Days*\n")
	if len(totals) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, tc := range totals {
		sb.WriteString(fmt.Sprintf("• *%s*: %d\n", tc.Event, tc.Count))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", health.AllocMB, health.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", health.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", health.DataDirSize))

	b.send(msg.Chat.ID, sb.String())
}

// dataDir is the directory holding the SQLite file, reported in the
// admin health summary.
func (b *Bot) dataDir() string {
	return filepath.Dir(b.cfg.DatabasePath)
}

// NotifyAppointmentDecided pushes a decision notification to the patient.
// It implements the API server's Notifier.
func (b *Bot) NotifyAppointmentDecided(appt appointment.Appointment, patientTelegramID int64) {
	var text string
	if appt.Status == appointment.StatusConfirmed {
		text = fmt.Sprintf("✅ *Appointment Confirmed*\n%s at %s", appt.Date, appt.Time)
	} else {
		text = fmt.Sprintf("❌ *Appointment Rejected*\n%s at %s\nPlease book another slot.", appt.Date, appt.Time)
	}
	b.send(patientTelegramID, text)
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		logger.Warn("Failed to send telegram message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

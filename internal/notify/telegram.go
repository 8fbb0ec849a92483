// Package notify pushes generated plans to Telegram.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"gym-planner/internal/planner"
)

// Notifier sends weekly plans to a Telegram chat. It is push-only; the bot
// does not handle incoming messages.
type Notifier struct {
	bot *tgbotapi.BotAPI
}

// NewNotifier creates a Notifier from a bot token.
func NewNotifier(token string) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &Notifier{bot: bot}, nil
}

// SendPlan delivers a formatted weekly plan to the given chat.
func (n *Notifier) SendPlan(chatID int64, plan planner.WeeklyPlan) error {
	msg := tgbotapi.NewMessage(chatID, formatPlanMarkdown(plan))
	msg.ParseMode = "Markdown"
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send plan: %w", err)
	}
	return nil
}

func formatPlanMarkdown(plan planner.WeeklyPlan) string {
	var sb strings.Builder
	sb.WriteString("🏋️ *Your Weekly Workout Plan*\n\n")

	for _, day := range planner.Weekdays {
		entry := plan[day]
		switch entry.Kind {
		case planner.DayActivity:
			sb.WriteString(fmt.Sprintf("*%s*: %s (%d min)\n", day, entry.Activity.Name, entry.Activity.Duration))
			if len(entry.Activity.Equipment) > 0 {
				sb.WriteString(fmt.Sprintf("_Equipment: %s_\n", strings.Join(entry.Activity.Equipment, ", ")))
			}
		case planner.DayWorkout:
			sb.WriteString(fmt.Sprintf("*%s*: %s (%d min)\n", day, entry.Workout.Name, entry.Workout.Time))
			for _, ex := range entry.Workout.Activities {
				sb.WriteString(fmt.Sprintf("• %s", ex.Name))
				if ex.Duration > 0 {
					unit := ex.DurationUnit
					if unit == "" {
						unit = "minutes"
					}
					sb.WriteString(fmt.Sprintf(" — %d %s", ex.Duration, unit))
				}
				if ex.Break > 0 {
					sb.WriteString(fmt.Sprintf(", break %ds", ex.Break))
				}
				sb.WriteString("\n")
			}
		default:
			sb.WriteString(fmt.Sprintf("*%s*: _%s_\n", day, entry.Rest))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/danielhkuo/qotd/models"
)

// Telegram delivers announcements to a public chat and anonymous answers to
// a separate moderation chat. Delivery failures are logged and dropped;
// they never reach the cycle.
type Telegram struct {
	api         *tgbotapi.BotAPI
	chatID      int64
	adminChatID int64
}

// NewTelegram connects the bot API.
func NewTelegram(token string, chatID, adminChatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	if adminChatID == 0 {
		adminChatID = chatID
	}
	return &Telegram{api: api, chatID: chatID, adminChatID: adminChatID}, nil
}

// send delivers asynchronously so a slow Telegram API call never blocks a
// phase transition or a submission ack.
func (t *Telegram) send(chatID int64, text string) {
	go func() {
		if _, err := t.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			slog.Error("telegram send failed", "error", err, "chat_id", chatID)
		}
	}()
}

func (t *Telegram) Purge() {
	// Telegram offers no bulk delete for bots; post a day divider instead.
	t.send(t.chatID, "🌅 A new question day is about to begin.")
}

func (t *Telegram) PreAnnounce(postAt time.Time) {
	t.send(t.chatID, formatPreAnnounce(postAt))
}

func (t *Telegram) QuestionPosted(q models.Question) {
	t.send(t.chatID, formatQuestionPosted(q))
}

func (t *Telegram) ClosingWarning(closesAt time.Time) {
	t.send(t.chatID, formatClosingWarning(closesAt))
}

func (t *Telegram) SubmissionsClosed(publicCount, anonCount int) {
	t.send(t.chatID, formatSubmissionsClosed(publicCount, anonCount))
}

func (t *Telegram) VotingOpened(candidates []models.Candidate) {
	t.send(t.chatID, formatVotingOpened(candidates))
}

func (t *Telegram) NoAnswers() {
	t.send(t.chatID, "😴 No public answers today, so there is nothing to vote on.")
}

func (t *Telegram) VotingClosed(winners []models.Candidate, maxVotes int) {
	t.send(t.chatID, formatVotingClosed(winners, maxVotes))
}

func (t *Telegram) NoVotes() {
	t.send(t.chatID, "🤷 Nobody voted today. No winner this time.")
}

func (t *Telegram) NothingToTally() {
	t.send(t.chatID, "📭 No vote was running today, nothing to tally.")
}

func (t *Telegram) Moderation(refID, questionID, text string) {
	t.send(t.adminChatID, formatModeration(refID, questionID, text))
}

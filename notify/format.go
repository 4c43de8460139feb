// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/qotd/models"
)

// Message builders shared by every Notifier implementation. Pure functions
// so the texts are testable without a chat backend.

func formatPreAnnounce(postAt time.Time) string {
	return fmt.Sprintf("🔔 A new question of the day arrives %s. Get ready!", humanize.Time(postAt))
}

func formatQuestionPosted(q models.Question) string {
	attribution := "🤖 Question by the Bot"
	if q.Submitter != nil {
		attribution = fmt.Sprintf("🧠 Question submitted by %s", *q.Submitter)
	}
	return fmt.Sprintf("❓ %s\n\n%s", q.Text, attribution)
}

func formatClosingWarning(closesAt time.Time) string {
	return fmt.Sprintf("⏳ Submissions close %s. Last call for answers!", humanize.Time(closesAt))
}

func formatSubmissionsClosed(publicCount, anonCount int) string {
	msg := fmt.Sprintf("🔒 Submissions are closed. %s answered publicly", countNoun(publicCount, "person", "people"))
	if anonCount > 0 {
		msg += fmt.Sprintf(" and %s anonymously", countNoun(anonCount, "person", "people"))
	}
	return msg + "."
}

func formatVotingOpened(candidates []models.Candidate) string {
	var b strings.Builder
	b.WriteString("🗳️ Voting is open! Today's answers:\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "\n%d. %s — %s", i+1, c.DisplayName, c.AnswerText)
	}
	return b.String()
}

func formatVotingClosed(winners []models.Candidate, maxVotes int) string {
	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, w.DisplayName)
	}
	votes := countNoun(maxVotes, "vote", "votes")
	if len(winners) == 1 {
		return fmt.Sprintf("🏆 Congratulations %s, today's winner with %s! +1 insight point", names[0], votes)
	}
	return fmt.Sprintf("🏆 It's a tie! Congratulations %s, today's winners with %s each! +1 insight point each",
		joinNames(names), votes)
}

func formatModeration(refID, questionID, text string) string {
	return fmt.Sprintf("📩 Anonymous answer (question %s, ref %s): %s", questionID, refID, text)
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), plural)
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

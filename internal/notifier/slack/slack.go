package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/leaderboard"
	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/metrics"
	"github.com/midweekpadel/clubhouse/internal/notifier"
	"github.com/midweekpadel/clubhouse/internal/rating"
)

// slackClient is an interface that contains the methods from the slack.Client
// that we use. This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client
// instance. Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

func (s *Notifier) SendPodiumNotification(tournament *club.Tournament, placements []rating.Placement, names map[string]string, dryRun bool) error {
	msg := s.formatPodium(tournament, placements, names)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) SendTierPromotion(player club.PlayerInfo, status loyalty.TierStatus, dryRun bool) error {
	msg := s.formatTierPromotion(player, status)
	return s.sendMessage(msg, dryRun)
}

func (s *Notifier) SendLeaderboard(entries []leaderboard.Entry, dryRun bool) error {
	msg := s.formatLeaderboard(entries)
	return s.sendMessage(msg, dryRun)
}

// formatPodium creates the Slack message for a processed tournament using
// Block Kit.
func (s *Notifier) formatPodium(tournament *club.Tournament, placements []rating.Placement, names map[string]string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s is in the books! 🏆", tournament.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, p := range placements {
		name := names[p.PlayerID]
		if name == "" {
			name = p.PlayerID
		}
		switch p.Achievement {
		case rating.AchievementWinner:
			lines = append(lines, fmt.Sprintf("🥇 Champion: %s", name))
		case rating.AchievementRunnerUp:
			lines = append(lines, fmt.Sprintf("🥈 Runner-up: %s", name))
		case rating.AchievementSemifinalist:
			lines = append(lines, fmt.Sprintf("🥉 Semifinalist: %s", name))
		}
	}
	if len(lines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}

	contextText := slack.NewTextBlockObject("plain_text", "Ratings have been updated. See you Wednesday!", true, false)
	blocks = append(blocks, slack.NewContextBlock("", contextText))

	return slack.NewBlockMessage(blocks...)
}

// formatTierPromotion creates the Slack message announcing a loyalty tier
// promotion.
func (s *Notifier) formatTierPromotion(player club.PlayerInfo, status loyalty.TierStatus) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎉 Tier promotion! 🎉", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	body := fmt.Sprintf("%s just reached %s!", player.Name, strings.ToUpper(string(status.Tier)))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	detail := fmt.Sprintf("🔥 %d week streak · %d visits this month · %d lifetime visits", status.Streak, status.ThisMonth, status.LifetimeVisits)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", detail, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboard creates the Slack message for the club leaderboard,
// capped at the top ten rows.
func (s *Notifier) formatLeaderboard(entries []leaderboard.Entry) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🎾 Midweek Leaderboard 🎾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(entries) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No rated players yet. Book a Wednesday court!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for i, e := range entries {
		if i >= 10 {
			break
		}
		medal := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		lines = append(lines, fmt.Sprintf("%s %s · %.0f (%d-%d, %d pts)", medal, e.Name, e.Rating, e.Won, e.Lost, e.Points))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

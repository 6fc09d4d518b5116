package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midweekpadel/clubhouse/internal/club"
	"github.com/midweekpadel/clubhouse/internal/leaderboard"
	"github.com/midweekpadel/clubhouse/internal/loyalty"
	"github.com/midweekpadel/clubhouse/internal/metrics"
	"github.com/midweekpadel/clubhouse/internal/rating"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.NotifSentCount)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSentCount)
	assert.Equal(t, 0, metrics.NotifFailedCount)
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.sendMessage(slackapi.NewBlockMessage(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.NotifSentCount)
	assert.Equal(t, 1, metrics.NotifFailedCount)
}

func TestSendPodiumNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	notifier := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	tournament := &club.Tournament{ID: "t1", Name: "Autumn Open", CompletedAt: time.Now().Unix()}
	placements := []rating.Placement{{PlayerID: "a", Achievement: rating.AchievementWinner}}

	err := notifier.SendPodiumNotification(tournament, placements, map[string]string{"a": "Alice"}, false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendPodiumNotification")
}

func TestFormatPodium(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	tournament := &club.Tournament{ID: "t1", Name: "Autumn Open"}
	placements := []rating.Placement{
		{PlayerID: "a", Achievement: rating.AchievementWinner},
		{PlayerID: "b", Achievement: rating.AchievementRunnerUp},
		{PlayerID: "c", Achievement: rating.AchievementSemifinalist},
	}
	names := map[string]string{"a": "Alice", "b": "Bob"}

	msg := client.formatPodium(tournament, placements, names)
	require.Len(t, msg.Blocks.BlockSet, 3, "Expected header, podium and context blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Autumn Open")

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Champion: Alice")
	assert.Contains(t, section.Text.Text, "Runner-up: Bob")
	// Players without a roster entry fall back to their ID.
	assert.Contains(t, section.Text.Text, "Semifinalist: c")
}

func TestFormatTierPromotion(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	player := club.PlayerInfo{ID: "a", Name: "Alice"}
	status := loyalty.TierStatus{Tier: loyalty.TierGold, Streak: 3, ThisMonth: 3, LifetimeVisits: 27}

	msg := client.formatTierPromotion(player, status)
	require.Len(t, msg.Blocks.BlockSet, 3)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Alice")
	assert.Contains(t, section.Text.Text, "GOLD")
}

func TestFormatLeaderboard(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	entries := []leaderboard.Entry{
		{PlayerID: "a", Name: "Alice", Rating: 1540, Won: 3, Lost: 1, Points: 9},
		{PlayerID: "b", Name: "Bob", Rating: 1490, Won: 1, Lost: 3, Points: 3},
	}

	msg := client.formatLeaderboard(entries)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "🥇 Alice")
	assert.Contains(t, section.Text.Text, "🥈 Bob")
	assert.Contains(t, section.Text.Text, "1540")
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	client := &Notifier{channelID: "C123"}

	msg := client.formatLeaderboard(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "No rated players")
}

package tgclient

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandMessage(text string, cmdLen int) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 42,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: -100500},
		From:      &tgbotapi.User{UserName: "zezima"},
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func TestCommandFromMessage(t *testing.T) {
	cmd, ok := CommandFromMessage(commandMessage("/item  abyssal   whip", 5), "osrs_bot")
	require.True(t, ok)
	assert.Equal(t, Command{
		ChatID:    -100500,
		MessageID: 42,
		User:      "zezima",
		Name:      "item",
		Args:      []string{"abyssal", "whip"},
	}, cmd)
}

func TestCommandFromMessageBotSuffix(t *testing.T) {
	cmd, ok := CommandFromMessage(commandMessage("/Stats@OSRS_Bot Lynx Titan", 15), "osrs_bot")
	require.True(t, ok)
	assert.Equal(t, "stats", cmd.Name)
	assert.Equal(t, []string{"Lynx", "Titan"}, cmd.Args)
}

func TestCommandFromMessageOtherBot(t *testing.T) {
	_, ok := CommandFromMessage(commandMessage("/item@someotherbot abyssal whip", 18), "osrs_bot")
	assert.False(t, ok)

	// в личке или без суффикса имя бота не важно
	cmd, ok := CommandFromMessage(commandMessage("/item abyssal whip", 5), "")
	require.True(t, ok)
	assert.Equal(t, "item", cmd.Name)
}

func TestCommandFromMessageNoArgs(t *testing.T) {
	cmd, ok := CommandFromMessage(commandMessage("/house", 6), "osrs_bot")
	require.True(t, ok)
	assert.Equal(t, "house", cmd.Name)
	assert.Empty(t, cmd.Args)
}

func TestCommandFromMessageNotCommand(t *testing.T) {
	_, ok := CommandFromMessage(nil, "osrs_bot")
	assert.False(t, ok)

	_, ok = CommandFromMessage(&tgbotapi.Message{Text: "hello"}, "osrs_bot")
	assert.False(t, ok)
}

func TestCommandFromMessageNoSender(t *testing.T) {
	msg := commandMessage("/start", 6)
	msg.From = nil
	cmd, ok := CommandFromMessage(msg, "osrs_bot")
	require.True(t, ok)
	assert.Empty(t, cmd.User)
	assert.Equal(t, int64(-100500), cmd.ChatID)
}

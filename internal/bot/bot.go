package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/EgorLis/osrsbot/internal/itemdir"
	"github.com/EgorLis/osrsbot/internal/metrics"
	"github.com/EgorLis/osrsbot/internal/osrsapi"
	"github.com/EgorLis/osrsbot/internal/tgclient"
)

// API — то, что боту нужно от OSRS API (osrsapi.Client).
type API interface {
	LatestPrice(ctx context.Context, itemID int) (osrsapi.Price, error)
	ItemIcon(ctx context.Context, itemID int) (string, error)
	Hiscores(ctx context.Context, player string) (*osrsapi.Hiscores, error)
}

// Sender — куда отправлять ответы (tgclient.Client).
type Sender interface {
	SendText(ctx context.Context, chatID int64, replyTo int, text string, markdown bool) error
	SendPhoto(ctx context.Context, chatID int64, replyTo int, photoURL, caption string, markdown bool) error
}

// HouseConf — чей прогресс Construction показывает /house.
type HouseConf struct {
	Player      string
	Name        string
	TargetLevel int
	TargetXP    int64
}

type OSRSBot struct {
	api     API
	items   *itemdir.Directory
	sender  Sender
	tg      *tgclient.Client
	log     *zap.Logger
	metrics *metrics.Metrics

	wikiURL string
	house   HouseConf
}

func New(items *itemdir.Directory, api API) *OSRSBot {
	return &OSRSBot{
		api:     api,
		items:   items,
		log:     zap.NewNop(),
		wikiURL: "https://oldschool.runescape.wiki/w/",
		house: HouseConf{
			Player:      "Tricstar",
			Name:        "Joel",
			TargetLevel: 83,
			TargetXP:    2_673_114,
		},
	}
}

func (bot *OSRSBot) SetLogger(l *zap.Logger) {
	if l != nil {
		bot.log = l
	}
}

func (bot *OSRSBot) SetMetrics(m *metrics.Metrics) { bot.metrics = m }

func (bot *OSRSBot) SetWikiURL(u string) {
	if u != "" {
		bot.wikiURL = u
	}
}

func (bot *OSRSBot) SetHouse(h HouseConf) { bot.house = h }

func (bot *OSRSBot) SetSender(s Sender) { bot.sender = s }

// SetTelegramClient подключает транспорт: ответы идут через него,
// входящие команды — в Dispatch.
func (bot *OSRSBot) SetTelegramClient(tg *tgclient.Client) {
	bot.tg = tg
	bot.sender = tg

	tg.OnConnected = func(username string) {
		bot.log.Info("connected to telegram", zap.String("bot", username))
	}
	tg.OnError = func(err error) {
		bot.log.Warn("telegram send failed", zap.Error(err))
	}
	tg.OnCommand = func(ctx context.Context, cmd tgclient.Command) {
		bot.Dispatch(ctx, cmd)
	}
}

// Run блокирует до отмены ctx.
func (bot *OSRSBot) Run(ctx context.Context) error {
	if bot == nil {
		return errors.New("bot is not initialized")
	}
	if bot.tg == nil {
		return errors.New("telegram client is not set")
	}
	return bot.tg.Run(ctx)
}

// Dispatch выполняет команду и отправляет ровно один ответ.
// Неизвестные команды молча игнорируются.
func (bot *OSRSBot) Dispatch(ctx context.Context, cmd tgclient.Command) {
	start := time.Now()
	log := bot.log.With(
		zap.String("command", cmd.Name),
		zap.Int64("chat_id", cmd.ChatID),
		zap.String("user", cmd.User),
	)

	reply := bot.safeHandle(ctx, cmd, log)
	bot.metrics.ObserveCommand(commandLabel(cmd.Name, reply.Outcome), reply.Outcome)

	if reply.Outcome == OutcomeIgnored {
		return
	}

	err := bot.send(ctx, cmd, reply)
	if err != nil && reply.PhotoURL != "" {
		// картинку не приняли — хотя бы текст
		log.Warn("photo reply failed, falling back to text", zap.Error(err))
		reply.PhotoURL = ""
		err = bot.send(ctx, cmd, reply)
	}

	fields := []zap.Field{
		zap.String("outcome", reply.Outcome),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		log.Error("reply not delivered", append(fields, zap.Error(err))...)
		return
	}
	log.Info("command handled", fields...)
}

// commandLabel: имя команды приходит от пользователя, поэтому все
// неизвестные команды сводятся к одному лейблу метрики.
func commandLabel(name, outcome string) string {
	if outcome == OutcomeIgnored {
		return unknownCommand
	}
	return strings.ToLower(name)
}

// safeHandle не даёт панике в обработчике уронить цикл апдейтов.
func (bot *OSRSBot) safeHandle(ctx context.Context, cmd tgclient.Command, log *zap.Logger) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("command handler panicked", zap.String("panic", fmt.Sprint(r)), zap.Stack("stack"))
			reply = Reply{Text: msgInternalError, Outcome: OutcomeUpstreamError}
		}
	}()
	return bot.HandleCommand(ctx, cmd.Name, cmd.Args)
}

func (bot *OSRSBot) send(ctx context.Context, cmd tgclient.Command, r Reply) error {
	if bot.sender == nil {
		return errors.New("sender is not set")
	}
	if r.PhotoURL != "" {
		return bot.sender.SendPhoto(ctx, cmd.ChatID, cmd.MessageID, r.PhotoURL, r.Text, r.Markdown)
	}
	return bot.sender.SendText(ctx, cmd.ChatID, cmd.MessageID, r.Text, r.Markdown)
}

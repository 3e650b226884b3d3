package tgclient

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Command — входящая команда чата в разобранном виде.
type Command struct {
	ChatID    int64
	MessageID int
	User      string
	Name      string   // без "/" и без "@botname"
	Args      []string // токены через пробел; пустой срез — отдельный валидный случай
}

type Client struct {
	api         *tgbotapi.BotAPI
	log         *zap.Logger
	pollTimeout int

	wg sync.WaitGroup

	// "События"
	OnConnected func(username string)
	OnCommand   func(ctx context.Context, cmd Command)
	OnError     func(error)
}

// New авторизуется в Bot API (getMe). Ошибка тут фатальна для старта.
func New(token string, pollTimeout int, debug bool, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	// логи библиотеки — в наш zap
	_ = tgbotapi.SetLogger(zap.NewStdLog(log.Named("tgbotapi")))

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	if pollTimeout <= 0 {
		pollTimeout = 60
	}
	return &Client{api: api, log: log, pollTimeout: pollTimeout}, nil
}

// Run читает апдейты long polling'ом до отмены ctx. Каждая команда
// обрабатывается в своей горутине; перед выходом ждём все незавершённые.
func (c *Client) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.pollTimeout
	updates := c.api.GetUpdatesChan(u)

	if c.OnConnected != nil {
		c.OnConnected(c.api.Self.UserName)
	}

	defer c.wg.Wait()

	// обработчики доживают до ответа даже после отмены ctx
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			c.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			c.handleUpdate(handlerCtx, upd)
		}
	}
}

func (c *Client) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	cmd, ok := CommandFromMessage(upd.Message, c.api.Self.UserName)
	if !ok || c.OnCommand == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.OnCommand(ctx, cmd)
	}()
}

// CommandFromMessage вытаскивает команду из сообщения; не команда — false.
// Команда с суффиксом "@другой_бот" адресована не нам и тоже даёт false.
func CommandFromMessage(msg *tgbotapi.Message, botName string) (Command, bool) {
	if msg == nil || !msg.IsCommand() {
		return Command{}, false
	}
	if _, at, found := strings.Cut(msg.CommandWithAt(), "@"); found && !strings.EqualFold(at, botName) {
		return Command{}, false
	}
	cmd := Command{
		MessageID: msg.MessageID,
		Name:      strings.ToLower(msg.Command()),
		Args:      strings.Fields(msg.CommandArguments()),
	}
	if msg.Chat != nil {
		cmd.ChatID = msg.Chat.ID
	}
	if msg.From != nil {
		cmd.User = msg.From.UserName
	}
	return cmd, true
}

// SendText отвечает текстом на сообщение replyTo (0 — без reply).
func (c *Client) SendText(ctx context.Context, chatID int64, replyTo int, text string, markdown bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := tgbotapi.NewMessage(chatID, text)
	m.ReplyToMessageID = replyTo
	if markdown {
		m.ParseMode = tgbotapi.ModeMarkdown
	}
	return c.send(m)
}

// SendPhoto отправляет картинку по URL с подписью.
func (c *Client) SendPhoto(ctx context.Context, chatID int64, replyTo int, photoURL, caption string, markdown bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	p.Caption = caption
	p.ReplyToMessageID = replyTo
	if markdown {
		p.ParseMode = tgbotapi.ModeMarkdown
	}
	return c.send(p)
}

func (c *Client) send(m tgbotapi.Chattable) error {
	_, err := c.api.Send(m)
	if err != nil && c.OnError != nil {
		c.OnError(err)
	}
	return err
}

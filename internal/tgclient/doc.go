// Package tgclient — транспорт бота поверх Telegram Bot API
// (go-telegram-bot-api/v5): long polling апдейтов, разбор команд и отправка
// ответов (текст или фото с подписью, опционально Markdown).
//
// События (колбэки поля структуры):
//   - OnConnected — после авторизации и старта polling'а;
//   - OnCommand — на каждую входящую команду, в отдельной горутине;
//   - OnError — ошибки отправки.
//
// Пример:
//
//	tg, err := tgclient.New(token, 60, false, log)
//	if err != nil { log.Fatal(...) }
//	tg.OnCommand = func(ctx context.Context, cmd tgclient.Command) {
//	    _ = tg.SendText(ctx, cmd.ChatID, cmd.MessageID, "pong", false)
//	}
//	_ = tg.Run(ctx) // блокирует до отмены ctx
package tgclient

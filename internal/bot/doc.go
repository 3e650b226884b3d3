// Package bot — "склейка" вокруг tgclient, osrsapi и itemdir, реализующая
// чат-бота для Old School RuneScape. Бот:
//   - принимает команды чата (/start, /item, /stats, /mob, /wiki, /house);
//   - ходит в OSRS API (цены, карточка предмета, хайскоры);
//   - форматирует ответ (эмодзи, Markdown-ссылки на вики, фото предмета);
//   - на любую команду отправляет ровно один ответ, в том числе при
//     ошибках апстрима.
//
// Жизненный цикл:
//   - Построить справочник предметов itemdir.Load(...) до старта polling'а.
//   - Создать бота через New(items, api).
//   - Передать транспорт SetTelegramClient(...), (опционально) SetLogger,
//     SetMetrics, SetHouse, SetWikiURL.
//   - Запустить Run(ctx); остановка — отменой ctx.
//
// Пример:
//
//	api := osrsapi.NewClient(cfg.APIConf())
//	items := itemdir.Load(ctx, api, log)
//	b := bot.New(items, api)
//	b.SetTelegramClient(tg)
//	if err := b.Run(ctx); err != nil { log.Fatal(...) }
//
// HandleCommand чистая относительно чата: возвращает Reply, а отправкой
// занимается Dispatch. Это удобно в тестах.
package bot

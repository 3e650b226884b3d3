// Package osrsapi — HTTP-клиент к публичным API Old School RuneScape:
//
//   - mapping (prices.runescape.wiki) — каталог предметов id/name;
//   - latest (prices.runescape.wiki) — лента цен high/low по id;
//   - catalogue/detail (secure.runescape.com) — карточка предмета с иконкой;
//   - index_lite.json (secure.runescape.com) — хайскоры игрока.
//
// Клиент ничего не кэширует и не повторяет запросы: один вызов — один GET.
// Хайскоры разбираются по фиксированной таблице слотов SlotOrder, доступ к
// навыку идёт по имени (Hiscores.Skill), а не по индексу.
//
// Пример:
//
//	c := osrsapi.NewClient(osrsapi.Conf{UserAgent: "osrsbot"})
//	h, err := c.Hiscores(ctx, "Zezima")
//	if err != nil { ... }
//	fmt.Println(h.Skill(osrsapi.Overall).Level)
package osrsapi

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

// Исходы команды (лейбл метрики и поле лога)
const (
	OutcomeOK            = "ok"
	OutcomeUsage         = "usage"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
	OutcomeIgnored       = "ignored"
)

// лейбл метрики для всего, что не входит в список команд
const unknownCommand = "unknown"

const (
	msgItemNotFound       = "⚠️ Item not found. Check spelling."
	msgHiscoreUnavailable = "⚠️ Hiscores are unavailable right now, try again later."
	msgHouseError         = "Error fetching stats."
	msgInternalError      = "⚠️ Something went wrong, try again later."
)

// Reply — один ответ в чат. PhotoURL не пустой — фото с Text в подписи.
type Reply struct {
	Text     string
	PhotoURL string
	Markdown bool
	Outcome  string
}

func text(s, outcome string) Reply { return Reply{Text: s, Outcome: outcome} }

func markdown(s, outcome string) Reply { return Reply{Text: s, Markdown: true, Outcome: outcome} }

// HandleCommand выполняет команду name (без "/") и возвращает ответ.
// Для неизвестной команды Outcome == OutcomeIgnored.
func (bot *OSRSBot) HandleCommand(ctx context.Context, name string, args []string) Reply {
	switch strings.ToLower(name) {
	case "start":
		return bot.start()
	case "item":
		return bot.item(ctx, args)
	case "stats":
		return bot.stats(ctx, args)
	case "mob":
		return bot.mob(args)
	case "wiki":
		return bot.wiki(args)
	case "house":
		return bot.houseProgress(ctx)
	default:
		return Reply{Outcome: OutcomeIgnored}
	}
}

func (bot *OSRSBot) start() Reply {
	return text(strings.Join([]string{
		"👋 Welcome to OSRS Saudi Bot!",
		"Use the commands:",
		"/start - Welcome message",
		"/item <name> - Get item prices & image",
		"/stats <username> - Get player stats",
		"/mob <name> - Get monster stats",
		"/wiki <query> - Search OSRS Wiki",
		fmt.Sprintf("/house - %s's house progress", bot.house.Name),
	}, "\n")+"\n", OutcomeOK)
}

// ---------- ITEM ----------

func (bot *OSRSBot) item(ctx context.Context, args []string) Reply {
	if len(args) == 0 {
		return text("Usage: /item <item_name>", OutcomeUsage)
	}
	key := strings.ToLower(strings.Join(args, " "))
	it, ok := bot.items.Lookup(key)
	if !ok {
		return text(msgItemNotFound, OutcomeNotFound)
	}

	log := bot.log.With(zap.Int("item_id", it.ID))

	// битые/недоступные ответы не фатальны: цена 0, без картинки
	price, err := bot.api.LatestPrice(ctx, it.ID)
	if err != nil {
		log.Warn("price feed unavailable", zap.Error(err))
		price = osrsapi.Price{}
	}
	icon, err := bot.api.ItemIcon(ctx, it.ID)
	if err != nil {
		log.Warn("item detail unavailable", zap.Error(err))
		icon = ""
	}

	r := markdown(formatItem(it.Name, price, bot.wikiLink(strings.ReplaceAll(key, " ", "_"))), OutcomeOK)
	r.PhotoURL = icon
	return r
}

// ---------- STATS ----------

func (bot *OSRSBot) stats(ctx context.Context, args []string) Reply {
	if len(args) == 0 {
		return text("Please provide a username. Usage: /stats <username>", OutcomeUsage)
	}
	username := args[0]

	h, err := bot.api.Hiscores(ctx, username)
	if err != nil {
		if errors.Is(err, osrsapi.ErrUnexpectedStatus) {
			return text(fmt.Sprintf("%s is a bot 🤖", username), OutcomeNotFound)
		}
		bot.log.Warn("hiscores unavailable", zap.String("player", username), zap.Error(err))
		return text(msgHiscoreUnavailable, OutcomeUpstreamError)
	}
	return text(formatStats(username, h), OutcomeOK)
}

// ---------- MOB / WIKI ----------

func (bot *OSRSBot) mob(args []string) Reply {
	if len(args) == 0 {
		return text("Usage: /mob <monster_name>", OutcomeUsage)
	}
	link := bot.wikiLink(strings.Join(args, "_"))
	return markdown(fmt.Sprintf("🦴 *Monster Stats:*\n🔗 [Click here](%s)", link), OutcomeOK)
}

func (bot *OSRSBot) wiki(args []string) Reply {
	if len(args) == 0 {
		return text("Usage: /wiki <query>", OutcomeUsage)
	}
	link := bot.wikiLink(strings.Join(args, "_"))
	return markdown(fmt.Sprintf("🔗 *OSRS Wiki:* [Click here](%s)", link), OutcomeOK)
}

// ---------- HOUSE ----------

func (bot *OSRSBot) houseProgress(ctx context.Context) Reply {
	h, err := bot.api.Hiscores(ctx, bot.house.Player)
	if err != nil {
		log := bot.log.With(zap.String("player", bot.house.Player), zap.Error(err))
		if errors.Is(err, osrsapi.ErrUnexpectedStatus) {
			log.Warn("house hiscores returned non-200")
			return text(msgHouseError, OutcomeNotFound)
		}
		log.Warn("house hiscores unavailable")
		return text(msgHiscoreUnavailable, OutcomeUpstreamError)
	}
	return text(formatHouse(bot.house, h.Skill(osrsapi.Construction)), OutcomeOK)
}

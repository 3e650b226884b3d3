package bot

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

// gp: 2000000 -> "2,000,000 gp"
func gp(v int64) string {
	return humanize.Comma(v) + " gp"
}

// wikiLink: слаг экранируется, иначе ")" в названии рвёт markdown-ссылку.
func (bot *OSRSBot) wikiLink(slug string) string {
	return bot.wikiURL + url.PathEscape(slug)
}

// formatItem — подпись к фото предмета (legacy Markdown Telegram).
func formatItem(name string, p osrsapi.Price, link string) string {
	return strings.Join([]string{
		fmt.Sprintf("💰 *%s*", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, name)),
		fmt.Sprintf("- 📈 High: %s", gp(p.High)),
		fmt.Sprintf("- 📉 Low: %s", gp(p.Low)),
		fmt.Sprintf("- 🔗 [Item Wiki Link](%s)", link),
	}, "\n")
}

func formatHouse(h HouseConf, c osrsapi.SkillEntry) string {
	levels := h.TargetLevel - c.Level
	xp := h.TargetXP - c.XP
	return fmt.Sprintf("🏠 %s is %d levels away from %d Construction!\n\n🧰 Remaining XP: %s",
		h.Name, levels, h.TargetLevel, humanize.Comma(xp))
}

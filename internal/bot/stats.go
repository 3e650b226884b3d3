package bot

import (
	"fmt"
	"strings"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

type statLine struct {
	label string
	skill osrsapi.Skill
}

// боевые навыки — первый блок /stats
var combatStats = []statLine{
	{"⚔️ Attack", osrsapi.Attack},
	{"💪 Strength", osrsapi.Strength},
	{"🛡️ Defense", osrsapi.Defense},
	{"🏹 Ranged", osrsapi.Ranged},
	{"✨ Prayer", osrsapi.Prayer},
	{"🧙‍♂️ Magic", osrsapi.Magic},
	{"❤️ Hitpoints", osrsapi.Hitpoints},
}

// остальные — второй блок
var otherStats = []statLine{
	{"🏃 Agility", osrsapi.Agility},
	{"🍀 Herblore", osrsapi.Herblore},
	{"🕶️ Thieving", osrsapi.Thieving},
	{"🛠️ Crafting", osrsapi.Crafting},
	{"🥢 Fletching", osrsapi.Fletching},
	{"⛏️ Mining", osrsapi.Mining},
	{"🔨 Smithing", osrsapi.Smithing},
	{"🎣 Fishing", osrsapi.Fishing},
	{"🥧 Cooking", osrsapi.Cooking},
	{"🔥 Firemaking", osrsapi.Firemaking},
	{"🌳 Woodcutting", osrsapi.Woodcutting},
	{"⚡ Runecrafting", osrsapi.Runecrafting},
	{"💀 Slayer", osrsapi.Slayer},
	{"👩🏻‍🌾 Farming", osrsapi.Farming},
	{"🏠 Construction", osrsapi.Construction},
	{"🐾 Hunter", osrsapi.Hunter},
}

func formatStats(username string, h *osrsapi.Hiscores) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Displaying Stats for --- %s\n\nTotal Level: %d\n\n",
		username, h.Skill(osrsapi.Overall).Level)

	for _, l := range combatStats {
		fmt.Fprintf(&sb, "%s: %d\n", l.label, h.Skill(l.skill).Level)
	}
	sb.WriteString("\n")
	for _, l := range otherStats {
		fmt.Fprintf(&sb, "%s: %d\n", l.label, h.Skill(l.skill).Level)
	}
	return sb.String()
}

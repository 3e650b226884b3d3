package osrsapi

import (
	"context"
	"fmt"
	"net/url"
)

// Skill — имя навыка в том виде, в каком оно стоит в таблице хайскоров.
type Skill string

const (
	Overall      Skill = "Overall"
	Attack       Skill = "Attack"
	Defense      Skill = "Defense"
	Strength     Skill = "Strength"
	Hitpoints    Skill = "Hitpoints"
	Ranged       Skill = "Ranged"
	Prayer       Skill = "Prayer"
	Magic        Skill = "Magic"
	Cooking      Skill = "Cooking"
	Woodcutting  Skill = "Woodcutting"
	Fletching    Skill = "Fletching"
	Fishing      Skill = "Fishing"
	Firemaking   Skill = "Firemaking"
	Crafting     Skill = "Crafting"
	Smithing     Skill = "Smithing"
	Mining       Skill = "Mining"
	Herblore     Skill = "Herblore"
	Agility      Skill = "Agility"
	Thieving     Skill = "Thieving"
	Slayer       Skill = "Slayer"
	Farming      Skill = "Farming"
	Runecrafting Skill = "Runecrafting"
	Hunter       Skill = "Hunter"
	Construction Skill = "Construction"
)

// SlotOrder — позиционный контракт API: индекс в массиве skills -> навык.
// Порядок менять нельзя, он задан апстримом.
var SlotOrder = [...]Skill{
	Overall,
	Attack,
	Defense,
	Strength,
	Hitpoints,
	Ranged,
	Prayer,
	Magic,
	Cooking,
	Woodcutting,
	Fletching,
	Fishing,
	Firemaking,
	Crafting,
	Smithing,
	Mining,
	Herblore,
	Agility,
	Thieving,
	Slayer,
	Farming,
	Runecrafting,
	Hunter,
	Construction,
}

type SkillEntry struct {
	Name  Skill
	Level int
	XP    int64
}

// Hiscores — разобранная строка хайскоров одного игрока.
type Hiscores struct {
	Player string
	skills map[Skill]SkillEntry
}

// Skill возвращает запись навыка; неизвестный навык — нулевая запись.
func (h *Hiscores) Skill(s Skill) SkillEntry {
	return h.skills[s]
}

type hiscoreSlot struct {
	Level *int   `json:"level"`
	XP    *int64 `json:"xp"`
}

type hiscoreResponse struct {
	Skills []hiscoreSlot `json:"skills"`
}

// Hiscores запрашивает хайскоры игрока. Не-200 — *StatusError,
// неполный или битый массив навыков — ErrMalformed.
func (c *Client) Hiscores(ctx context.Context, player string) (*Hiscores, error) {
	u, err := url.Parse(c.hiscoreURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("player", player)
	u.RawQuery = q.Encode()

	var hr hiscoreResponse
	if err := c.getJSON(ctx, EndpointHiscore, u.String(), &hr); err != nil {
		return nil, err
	}
	return parseHiscores(player, hr.Skills)
}

func parseHiscores(player string, slots []hiscoreSlot) (*Hiscores, error) {
	if len(slots) < len(SlotOrder) {
		return nil, fmt.Errorf("%s: %w: %d skill slots, want %d",
			EndpointHiscore, ErrMalformed, len(slots), len(SlotOrder))
	}
	h := &Hiscores{Player: player, skills: make(map[Skill]SkillEntry, len(SlotOrder))}
	// лишние слоты (новые навыки в конце массива) игнорируем
	for i, name := range SlotOrder {
		s := slots[i]
		if s.Level == nil || s.XP == nil {
			return nil, fmt.Errorf("%s: %w: slot %d (%s) incomplete",
				EndpointHiscore, ErrMalformed, i, name)
		}
		h.skills[name] = SkillEntry{Name: name, Level: *s.Level, XP: *s.XP}
	}
	return h, nil
}

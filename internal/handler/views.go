package handler

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/QuestBot_Go/internal/domain"
	"github.com/osse101/QuestBot_Go/internal/game"
)

// displayName title-cases an identifier such as a class or item kind.
// cases.Caser is not safe for concurrent use, so one is built per call.
func displayName(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// ItemView is an item as shown to clients
type ItemView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	KindName    string `json:"kind_name"`
	Power       int    `json:"power"`
	Price       int    `json:"price"`
	SellValue   int    `json:"sell_value"`
	Description string `json:"description,omitempty"`
}

func newItemView(item domain.Item) ItemView {
	return ItemView{
		ID:          item.ID,
		Name:        item.Name,
		Kind:        string(item.Kind),
		KindName:    displayName(string(item.Kind)),
		Power:       item.Power,
		Price:       item.Price,
		SellValue:   item.SellValue(),
		Description: item.Description,
	}
}

func newItemViews(items []domain.Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		out = append(out, newItemView(item))
	}
	return out
}

func optionalItemView(item *domain.Item) *ItemView {
	if item == nil {
		return nil
	}
	v := newItemView(*item)
	return &v
}

// MonsterView is a monster as shown to clients. Loot stays hidden until it drops.
type MonsterView struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"max_health"`
	Damage    int    `json:"damage"`
}

func optionalMonsterView(m *domain.Monster) *MonsterView {
	if m == nil {
		return nil
	}
	return &MonsterView{Name: m.Name, Level: m.Level, Health: m.Health, MaxHealth: m.MaxHealth, Damage: m.Damage}
}

// EquipmentView lists the occupied slots
type EquipmentView struct {
	Weapon   *ItemView `json:"weapon"`
	Armor    *ItemView `json:"armor"`
	Artifact *ItemView `json:"artifact"`
}

// PlayerView is the player snapshot returned by every endpoint
type PlayerView struct {
	ID         int64         `json:"player_id"`
	Username   string        `json:"username"`
	Class      string        `json:"class"`
	ClassName  string        `json:"class_name"`
	Level      int           `json:"level"`
	Experience int           `json:"experience"`
	Health     int           `json:"health"`
	MaxHealth  int           `json:"max_health"`
	Gold       int           `json:"gold"`
	LocationID int           `json:"location_id"`
	Inventory  []ItemView    `json:"inventory"`
	Equipment  EquipmentView `json:"equipment"`
	InCombat   bool          `json:"in_combat"`
	Monster    *MonsterView  `json:"monster,omitempty"`
}

func newPlayerView(p *domain.Player) PlayerView {
	return PlayerView{
		ID:         p.ID,
		Username:   p.Username,
		Class:      string(p.Class),
		ClassName:  displayName(string(p.Class)),
		Level:      p.Level,
		Experience: p.Experience,
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
		Gold:       p.Gold,
		LocationID: p.LocationID,
		Inventory:  newItemViews(p.Inventory),
		Equipment: EquipmentView{
			Weapon:   optionalItemView(p.Equipment.Weapon),
			Armor:    optionalItemView(p.Equipment.Armor),
			Artifact: optionalItemView(p.Equipment.Artifact),
		},
		InCombat: p.InCombat,
		Monster:  optionalMonsterView(p.CurrentMonster),
	}
}

// LocationView is a location as shown to clients
type LocationView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	KindName      string `json:"kind_name"`
	Description   string `json:"description"`
	RequiredLevel int    `json:"required_level"`
	Connections   []int  `json:"connections"`
}

func newLocationView(loc domain.Location) LocationView {
	return LocationView{
		ID:            loc.ID,
		Name:          loc.Name,
		Kind:          string(loc.Kind),
		KindName:      displayName(string(loc.Kind)),
		Description:   loc.Description,
		RequiredLevel: loc.RequiredLevel,
		Connections:   loc.Connections,
	}
}

func newLocationViews(locs []domain.Location) []LocationView {
	out := make([]LocationView, 0, len(locs))
	for _, loc := range locs {
		out = append(out, newLocationView(loc))
	}
	return out
}

// StatusResponse is the body of GET /players/{id}
type StatusResponse struct {
	Player           PlayerView   `json:"player"`
	Location         LocationView `json:"location"`
	ExperienceToNext int          `json:"experience_to_next"`
	RequiredXP       int          `json:"required_experience"`
}

func newStatusResponse(st *game.Status) StatusResponse {
	return StatusResponse{
		Player:           newPlayerView(st.Player),
		Location:         newLocationView(st.Location),
		ExperienceToNext: st.ExperienceToNext,
		RequiredXP:       st.RequiredXP,
	}
}

// CombatView reports one combat step
type CombatView struct {
	Result           string       `json:"result"`
	Monster          *MonsterView `json:"monster,omitempty"`
	PlayerDamage     int          `json:"player_damage"`
	MonsterDamage    int          `json:"monster_damage"`
	Critical         bool         `json:"critical"`
	Healed           int          `json:"healed,omitempty"`
	ExperienceGained int          `json:"experience_gained,omitempty"`
	LevelsGained     int          `json:"levels_gained,omitempty"`
	GoldGained       int          `json:"gold_gained,omitempty"`
	GoldLost         int          `json:"gold_lost,omitempty"`
	Loot             []ItemView   `json:"loot,omitempty"`
}

// ExploreView reports one exploration
type ExploreView struct {
	Result  string       `json:"result"`
	Monster *MonsterView `json:"monster,omitempty"`
	Item    *ItemView    `json:"item,omitempty"`
	Gold    int          `json:"gold,omitempty"`
}

// ActionResponse is the body returned by every state-changing action
type ActionResponse struct {
	Action     string       `json:"action"`
	Player     PlayerView   `json:"player"`
	Combat     *CombatView  `json:"combat,omitempty"`
	Explore    *ExploreView `json:"explore,omitempty"`
	Item       *ItemView    `json:"item,omitempty"`
	GoldGained int          `json:"gold_gained,omitempty"`
	Healed     int          `json:"healed,omitempty"`
}

func newActionResponse(res *domain.ActionResult) ActionResponse {
	out := ActionResponse{
		Action:     string(res.Action),
		Player:     newPlayerView(res.Player),
		Item:       optionalItemView(res.Item),
		GoldGained: res.GoldGained,
		Healed:     res.Healed,
	}
	if c := res.Combat; c != nil {
		out.Combat = &CombatView{
			Result:           string(c.Result),
			Monster:          optionalMonsterView(c.Monster),
			PlayerDamage:     c.PlayerDamage,
			MonsterDamage:    c.MonsterDamage,
			Critical:         c.Critical,
			Healed:           c.Healed,
			ExperienceGained: c.ExperienceGained,
			LevelsGained:     c.LevelsGained,
			GoldGained:       c.GoldGained,
			GoldLost:         c.GoldLost,
		}
		if len(c.Loot) > 0 {
			out.Combat.Loot = newItemViews(c.Loot)
		}
	}
	if e := res.Explore; e != nil {
		out.Explore = &ExploreView{
			Result:  string(e.Result),
			Monster: optionalMonsterView(e.Monster),
			Item:    optionalItemView(e.Item),
			Gold:    e.Gold,
		}
	}
	return out
}

package editor

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

type fieldSetter func(c *entities.Creature, value string) error

var fieldSetters = map[string]fieldSetter{
	"name":                func(c *entities.Creature, v string) error { c.Name = v; return nil },
	"species_number":      intField(func(c *entities.Creature) **int { return &c.SpeciesNumber }),
	"category":            stringField(func(c *entities.Creature) **string { return &c.Category }),
	"type_primary":        stringField(func(c *entities.Creature) **string { return &c.TypePrimary }),
	"type_secondary":      stringField(func(c *entities.Creature) **string { return &c.TypeSecondary }),
	"color":               stringField(func(c *entities.Creature) **string { return &c.Color }),
	"height":              floatField(func(c *entities.Creature) **float64 { return &c.Height }),
	"height_unit":         stringField(func(c *entities.Creature) **string { return &c.HeightUnit }),
	"weight":              floatField(func(c *entities.Creature) **float64 { return &c.Weight }),
	"weight_unit":         stringField(func(c *entities.Creature) **string { return &c.WeightUnit }),
	"body_shape":          stringField(func(c *entities.Creature) **string { return &c.BodyShape }),
	"lore":                stringField(func(c *entities.Creature) **string { return &c.Lore }),
	"hp":                  intField(func(c *entities.Creature) **int { return &c.HP }),
	"attack":              intField(func(c *entities.Creature) **int { return &c.Attack }),
	"defense":             intField(func(c *entities.Creature) **int { return &c.Defense }),
	"sp_attack":           intField(func(c *entities.Creature) **int { return &c.SpAttack }),
	"sp_defense":          intField(func(c *entities.Creature) **int { return &c.SpDefense }),
	"speed":               intField(func(c *entities.Creature) **int { return &c.Speed }),
	"evolution_stage":     stringField(func(c *entities.Creature) **string { return &c.EvolutionStage }),
	"evolves_from":        stringField(func(c *entities.Creature) **string { return &c.EvolvesFrom }),
	"evolves_into":        stringField(func(c *entities.Creature) **string { return &c.EvolvesInto }),
	"evolution_trigger":   stringField(func(c *entities.Creature) **string { return &c.EvolutionTrigger }),
	"egg_group_1":         stringField(func(c *entities.Creature) **string { return &c.EggGroup1 }),
	"egg_group_2":         stringField(func(c *entities.Creature) **string { return &c.EggGroup2 }),
	"catch_rate":          intField(func(c *entities.Creature) **int { return &c.CatchRate }),
	"base_friendship":     intField(func(c *entities.Creature) **int { return &c.BaseFriendship }),
	"growth_rate":         stringField(func(c *entities.Creature) **string { return &c.GrowthRate }),
	"desired_visual":      stringField(func(c *entities.Creature) **string { return &c.DesiredVisual }),
	"desired_personality": stringField(func(c *entities.Creature) **string { return &c.DesiredPersonality }),
	"ability_1":           abilityField(func(c *entities.Creature) **entities.Ability { return &c.Ability1 }),
	"ability_2":           abilityField(func(c *entities.Creature) **entities.Ability { return &c.Ability2 }),
	"ability_3":           abilityField(func(c *entities.Creature) **entities.Ability { return &c.Ability3 }),
	"hidden_ability":      abilityField(func(c *entities.Creature) **entities.Ability { return &c.HiddenAbility }),
	"male_percentage": func(c *entities.Creature, v string) error {
		if v == "" {
			c.MalePercentage, c.FemalePercentage = nil, nil
			return nil
		}
		n, err := parseInt("male_percentage", v)
		if err != nil {
			return err
		}
		c.SetMalePercentage(n)
		return nil
	},
	"genderless": func(c *entities.Creature, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalidValue("genderless", v)
		}
		if b {
			c.SetGenderless()
		} else {
			c.Genderless = false
		}
		return nil
	},
	"tm_moves":  listField(func(c *entities.Creature) *[]string { return &c.TMMoves }),
	"egg_moves": listField(func(c *entities.Creature) *[]string { return &c.EggMoves }),
	"level_up_moves": func(c *entities.Creature, v string) error {
		// "Ember:5, Flame Wheel:12"
		var moves []entities.LevelUpMove
		for _, item := range splitList(v) {
			name, level, ok := strings.Cut(item, ":")
			if !ok {
				return invalidValue("level_up_moves", item)
			}
			n, err := parseInt("level_up_moves", strings.TrimSpace(level))
			if err != nil {
				return err
			}
			moves = append(moves, entities.LevelUpMove{Name: strings.TrimSpace(name), Level: n})
		}
		c.LevelUpMoves = moves
		return nil
	},
}

// ApplyField parses value into the named field of c. An empty value clears
// an optional field.
func ApplyField(c *entities.Creature, field, value string) error {
	setter, ok := fieldSetters[field]
	if !ok {
		return errors.InvalidArgumentf("unknown field %q", field).WithMeta("field", field)
	}
	return setter(c, strings.TrimSpace(value))
}

// Fields lists the names Set and ApplyField accept
func Fields() []string {
	names := make([]string, 0, len(fieldSetters))
	for name := range fieldSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func stringField(get func(*entities.Creature) **string) fieldSetter {
	return func(c *entities.Creature, v string) error {
		if v == "" {
			*get(c) = nil
			return nil
		}
		*get(c) = entities.Ptr(v)
		return nil
	}
}

func intField(get func(*entities.Creature) **int) fieldSetter {
	return func(c *entities.Creature, v string) error {
		if v == "" {
			*get(c) = nil
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalidValue("number", v)
		}
		*get(c) = entities.Ptr(n)
		return nil
	}
}

func floatField(get func(*entities.Creature) **float64) fieldSetter {
	return func(c *entities.Creature, v string) error {
		if v == "" {
			*get(c) = nil
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalidValue("number", v)
		}
		*get(c) = entities.Ptr(f)
		return nil
	}
}

// abilityField takes "Name: description"
func abilityField(get func(*entities.Creature) **entities.Ability) fieldSetter {
	return func(c *entities.Creature, v string) error {
		if v == "" {
			*get(c) = nil
			return nil
		}
		name, description, _ := strings.Cut(v, ":")
		*get(c) = &entities.Ability{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
		}
		return nil
	}
}

func listField(get func(*entities.Creature) *[]string) fieldSetter {
	return func(c *entities.Creature, v string) error {
		*get(c) = splitList(v)
		return nil
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseInt(field, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalidValue(field, v)
	}
	return n, nil
}

func invalidValue(field, v string) error {
	return errors.InvalidArgumentf("%q is not a valid %s", v, field)
}

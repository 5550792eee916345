package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// HitDieRoll is the outcome of spending one hit die
type HitDieRoll struct {
	Sides  int
	Rolled int
	Healed int
}

// SpendHitDie rolls one hit die of the named class and heals roll + CON, capped at max HP
func SpendHitDie(ch *dnd5e.Character, className string, roller dice.Roller) (*HitDieRoll, error) {
	if ch == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	cl := ch.FindClass(className)
	if cl == nil {
		return nil, errors.NotFoundf("class %s not found on character", className)
	}
	if cl.HitDiceUsed >= cl.Level {
		return nil, errors.FailedPreconditionf("no %s hit dice remaining", className).
			WithMeta("class", className).
			WithMeta("used", cl.HitDiceUsed)
	}

	sides := cl.HitDieSides
	if sides <= 0 {
		sides = dnd5e.DefaultHitDieSides
	}

	rolled, err := roller.Roll(sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll d%d", sides)
	}

	healing := rolled + ch.AbilityModifier(dnd5e.AbilityConstitution)
	if healing < 0 {
		healing = 0
	}

	before := ch.Combat.HPCurrent
	ch.Combat.HPCurrent += healing
	if ch.Combat.HPCurrent > ch.Combat.HPMax {
		ch.Combat.HPCurrent = ch.Combat.HPMax
	}
	if ch.Combat.HPCurrent < before {
		ch.Combat.HPCurrent = before
	}

	cl.HitDiceUsed++
	RecalculateHitDice(ch)

	return &HitDieRoll{
		Sides:  sides,
		Rolled: rolled,
		Healed: ch.Combat.HPCurrent - before,
	}, nil
}

// RestoreHitDice recovers up to half of the character's total hit dice (minimum one), largest dice first
func RestoreHitDice(ch *dnd5e.Character) int {
	if ch == nil {
		return 0
	}

	recoverable := ch.Level() / 2
	if recoverable < 1 {
		recoverable = 1
	}

	order := make([]int, len(ch.Identity.Classes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ch.Identity.Classes[order[a]].HitDieSides > ch.Identity.Classes[order[b]].HitDieSides
	})

	restored := 0
	for _, idx := range order {
		cl := &ch.Identity.Classes[idx]
		for cl.HitDiceUsed > 0 && restored < recoverable {
			cl.HitDiceUsed--
			restored++
		}
	}

	RecalculateHitDice(ch)
	return restored
}

// RecalculateHitDice rewrites the hit-dice expressions from the class list, e.g. "3d10 + 2d8"
func RecalculateHitDice(ch *dnd5e.Character) {
	if ch == nil {
		return
	}

	totals := make(map[int]int)
	remaining := make(map[int]int)
	for _, cl := range ch.Identity.Classes {
		sides := cl.HitDieSides
		if sides <= 0 {
			sides = dnd5e.DefaultHitDieSides
		}
		totals[sides] += cl.Level
		left := cl.Level - cl.HitDiceUsed
		if left < 0 {
			left = 0
		}
		remaining[sides] += left
	}

	ch.Combat.HitDiceTotal = formatDicePool(totals)
	ch.Combat.HitDiceRemaining = formatDicePool(remaining)
}

func formatDicePool(pool map[int]int) string {
	sides := make([]int, 0, len(pool))
	for side, count := range pool {
		if count > 0 {
			sides = append(sides, side)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sides)))

	parts := make([]string, 0, len(sides))
	for _, side := range sides {
		parts = append(parts, fmt.Sprintf("%dd%d", pool[side], side))
	}
	return strings.Join(parts, " + ")
}

package dnd5e

import "math"

// Level is the total character level across classes, never below 1
func (c *Character) Level() int {
	total := 0
	for _, cl := range c.Identity.Classes {
		total += cl.Level
	}
	if total < 1 {
		return 1
	}
	return total
}

// ProficiencyBonus is floor((level-1)/4) + 2
func (c *Character) ProficiencyBonus() int {
	return (c.Level()-1)/4 + 2
}

// AbilityModifier calculates floor((score-10)/2), rounding toward negative infinity
func (c *Character) AbilityModifier(ability Ability) int {
	return AbilityModifier(c.Abilities.Get(ability))
}

// AbilityModifier calculates the D&D 5e modifier for a raw score
func AbilityModifier(score int) int {
	diff := score - 10
	modifier := diff / 2
	if diff < 0 && diff%2 != 0 {
		modifier-- // Go truncates toward zero
	}
	return modifier
}

// SavingThrowBonus adds proficiency when the character is trained in the save
func (c *Character) SavingThrowBonus(ability Ability) int {
	bonus := c.AbilityModifier(ability)
	if c.HasSavingThrow(ability) {
		bonus += c.ProficiencyBonus()
	}
	return bonus
}

// SkillBonus adds the proficiency bonus scaled by the training level
func (c *Character) SkillBonus(skill Skill) int {
	return c.AbilityModifier(skill.Ability()) + c.SkillLevel(skill).Multiplier()*c.ProficiencyBonus()
}

// Initiative is the dexterity modifier plus any misc bonus
func (c *Character) Initiative() int {
	return c.AbilityModifier(AbilityDexterity) + c.Combat.InitiativeMiscBonus
}

// SpellSaveDC returns 8 + proficiency + casting modifier for a spellcasting feature.
// ok is false when the feature does not cast spells.
func (c *Character) SpellSaveDC(featureKey string) (int, bool) {
	data, ok := c.FeatureData[featureKey]
	if !ok || data == nil || data.Spells == nil {
		return 0, false
	}
	return 8 + c.ProficiencyBonus() + c.AbilityModifier(data.Spells.CastingAbility), true
}

// SpellAttackBonus returns proficiency + casting modifier for a spellcasting feature
func (c *Character) SpellAttackBonus(featureKey string) (int, bool) {
	data, ok := c.FeatureData[featureKey]
	if !ok || data == nil || data.Spells == nil {
		return 0, false
	}
	return c.ProficiencyBonus() + c.AbilityModifier(data.Spells.CastingAbility), true
}

// CasterLevel combines every class's level weighted by its caster coefficient
func (c *Character) CasterLevel() int {
	total := 0.0
	for _, cl := range c.Identity.Classes {
		total += float64(cl.Level) * cl.CasterCoefficient
	}
	// Guard against 0.1+0.2 style drift before flooring
	return int(math.Floor(total + 1e-9))
}

// HighestSlotLevel returns the highest spell level with any slots, or 0
func (c *Character) HighestSlotLevel() int {
	highest := 0
	for _, slot := range c.SpellSlots {
		if slot.Total > 0 && slot.Level > highest {
			highest = slot.Level
		}
	}
	return highest
}

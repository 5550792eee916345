package engine_test

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/rules"
)

func fighterClass() *rules.ClassDefinition {
	return &rules.ClassDefinition{
		Name:          "Fighter",
		Description:   "A master of martial combat.",
		HitDie:        10,
		Proficiencies: []dnd5e.Proficiency{dnd5e.ProficiencyLightArmor, dnd5e.ProficiencyMartialWeapons},
		SavingThrows:  []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		Features: []rules.FeatureDefinition{
			{
				Name:        "Second Wind",
				Description: "Regain hit points as a bonus action.",
				Fields: []rules.FieldDefinition{
					{
						Name:        "Healing",
						Description: "Hit points regained.",
						Kind:        dnd5e.FieldKindDie,
						Dice:        rules.LevelTable[string]{1: "1d10"},
					},
					{
						Name:   "Uses",
						Kind:   dnd5e.FieldKindPoints,
						Points: rules.LevelTable[int]{1: 1, 3: 2},
					},
				},
			},
			{
				Name:        "Fighting Style",
				Description: "Adopt a particular style of fighting.",
				Fields: []rules.FieldDefinition{
					{
						Name:  "Style",
						Kind:  dnd5e.FieldKindChoice,
						Slots: rules.LevelTable[int]{1: 1, 3: 3},
						Options: &rules.OptionSource{Inline: []rules.OptionDefinition{
							{Name: "Defense", Description: "+1 AC while wearing armor."},
							{Name: "Dueling", Description: "+2 damage with one-handed weapons."},
						}},
					},
				},
			},
			{
				Name:        "Action Surge",
				Description: "Take one additional action.",
				Languages:   []string{"Battle Cant"},
				Fields: []rules.FieldDefinition{
					{
						Name:  "Bonus",
						Kind:  dnd5e.FieldKindBonus,
						Bonus: rules.LevelTable[int]{2: 1, 3: 2},
					},
				},
			},
		},
		Levels: []rules.ClassLevelRules{
			{Features: []string{"Second Wind", "Fighting Style"}},
			{Features: []string{"Action Surge"}},
			{Features: []string{"Fighting Style"}},
		},
		Subclasses: []rules.SubclassDefinition{
			{
				Name: "Battle Master",
				Features: []rules.FeatureDefinition{
					{
						Name:        "Maneuvers",
						Description: "Special combat techniques.",
						Fields: []rules.FieldDefinition{
							{
								Name:  "Known",
								Kind:  dnd5e.FieldKindChoice,
								Slots: rules.LevelTable[int]{3: 2, 7: 4},
								Options: &rules.OptionSource{Inline: []rules.OptionDefinition{
									{Name: "Riposte", Description: "Strike back when missed.", Cost: 1},
									{Name: "Trip Attack", Description: "Knock a target prone.", Cost: 1},
								}},
							},
							{
								Name:    "Favored",
								Kind:    dnd5e.FieldKindChoice,
								Slots:   rules.LevelTable[int]{3: 1},
								Options: &rules.OptionSource{Ref: "Known"},
							},
							{
								Name:    "Style Echo",
								Kind:    dnd5e.FieldKindChoice,
								Slots:   rules.LevelTable[int]{3: 1},
								Options: &rules.OptionSource{Ref: "Fighting Style/Style"},
							},
						},
					},
				},
				Levels: rules.LevelTable[rules.SubclassLevelRules]{
					3: {Features: []string{"Maneuvers"}},
				},
			},
		},
	}
}

func wizardClass() *rules.ClassDefinition {
	return &rules.ClassDefinition{
		Name:         "Wizard",
		HitDie:       6,
		SavingThrows: []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
		Features: []rules.FeatureDefinition{
			{
				Name:        "Spellcasting",
				Description: "Cast wizard spells.",
				Spells: &rules.SpellsDefinition{
					CastingAbility:    dnd5e.AbilityIntelligence,
					CasterCoefficient: 1,
					List: rules.SpellListSource{Inline: []rules.SpellDefinition{
						{Name: "Fire Bolt", Level: 0, Description: "Hurl a mote of fire."},
						{Name: "Magic Missile", Level: 1, Description: "Three glowing darts.", Sticky: true, MinLevel: 2},
					}},
					Levels: rules.LevelTable[rules.SpellLevelRules]{
						1: {CantripsKnown: 3, SpellsKnown: 2, SpellSlots: []int{2}},
						2: {CantripsKnown: 3, SpellsKnown: 3, SpellSlots: []int{3}},
						3: {CantripsKnown: 3, SpellsKnown: 4, SpellSlots: []int{4, 2}},
					},
				},
			},
		},
		Levels: []rules.ClassLevelRules{
			{Features: []string{"Spellcasting"}},
			{},
			{},
		},
	}
}

func elfRace() *rules.RaceDefinition {
	return &rules.RaceDefinition{
		Name: "Elf",
		AbilityModifiers: map[dnd5e.Ability]int{
			dnd5e.AbilityDexterity: 2,
			dnd5e.AbilityStrength:  -12,
		},
		Speed: 35,
		Traits: []rules.TraitDefinition{
			{Name: "Darkvision", Description: "See in dim light within 60 feet."},
			{Name: "Fey Ancestry", Description: "Advantage against being charmed."},
		},
		Features: []rules.FeatureDefinition{
			{Name: "Elven Tongue", Description: "You speak Elvish.", Languages: []string{"Common", "Elvish"}},
		},
	}
}

func soldierBackground() *rules.BackgroundDefinition {
	return &rules.BackgroundDefinition{
		Name:               "Soldier",
		SkillProficiencies: []dnd5e.Skill{dnd5e.SkillAthletics, dnd5e.SkillIntimidation},
		Features: []rules.FeatureDefinition{
			{Name: "Military Rank", Description: "Soldiers loyal to your former organization recognize you."},
		},
	}
}

func fieldByName(ch *dnd5e.Character, feature, field string) *dnd5e.FeatureField {
	data, ok := ch.FeatureData[feature]
	if !ok {
		return nil
	}
	for i := range data.Fields {
		if data.Fields[i].Name == field {
			return &data.Fields[i]
		}
	}
	return nil
}

package dnd5e

// Ability is one of the six ability scores
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Abilities lists every ability in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// DisplayName returns the human readable ability name
func (a Ability) DisplayName() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return string(a)
}

// Skill is a proficiency-bearing skill tied to an ability
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal_handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight_of_hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// Skills lists every skill in sheet order
var Skills = []Skill{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillArcana,
	SkillAthletics,
	SkillDeception,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillReligion,
	SkillSleightOfHand,
	SkillStealth,
	SkillSurvival,
}

type skillInfo struct {
	name    string
	ability Ability
}

var skillTable = map[Skill]skillInfo{
	SkillAcrobatics:     {"Acrobatics", AbilityDexterity},
	SkillAnimalHandling: {"Animal Handling", AbilityWisdom},
	SkillArcana:         {"Arcana", AbilityIntelligence},
	SkillAthletics:      {"Athletics", AbilityStrength},
	SkillDeception:      {"Deception", AbilityCharisma},
	SkillHistory:        {"History", AbilityIntelligence},
	SkillInsight:        {"Insight", AbilityWisdom},
	SkillIntimidation:   {"Intimidation", AbilityCharisma},
	SkillInvestigation:  {"Investigation", AbilityIntelligence},
	SkillMedicine:       {"Medicine", AbilityWisdom},
	SkillNature:         {"Nature", AbilityIntelligence},
	SkillPerception:     {"Perception", AbilityWisdom},
	SkillPerformance:    {"Performance", AbilityCharisma},
	SkillPersuasion:     {"Persuasion", AbilityCharisma},
	SkillReligion:       {"Religion", AbilityIntelligence},
	SkillSleightOfHand:  {"Sleight of Hand", AbilityDexterity},
	SkillStealth:        {"Stealth", AbilityDexterity},
	SkillSurvival:       {"Survival", AbilityWisdom},
}

// Ability returns the ability the skill is keyed off
func (s Skill) Ability() Ability {
	return skillTable[s].ability
}

// DisplayName returns the human readable skill name
func (s Skill) DisplayName() string {
	if info, ok := skillTable[s]; ok {
		return info.name
	}
	return string(s)
}

// ProficiencyLevel is the training level in a skill
type ProficiencyLevel string

// Proficiency level constants
const (
	ProficiencyNone       ProficiencyLevel = "none"
	ProficiencyProficient ProficiencyLevel = "proficient"
	ProficiencyExpertise  ProficiencyLevel = "expertise"
)

// Multiplier returns how many times the proficiency bonus applies
func (p ProficiencyLevel) Multiplier() int {
	switch p {
	case ProficiencyProficient:
		return 1
	case ProficiencyExpertise:
		return 2
	default:
		return 0
	}
}

// Glyph renders the level as the sheet's circle marker
func (p ProficiencyLevel) Glyph() string {
	switch p {
	case ProficiencyProficient:
		return "●"
	case ProficiencyExpertise:
		return "◉"
	default:
		return "○"
	}
}

// Proficiency is an armor or weapon training
type Proficiency string

// Proficiency constants
const (
	ProficiencyLightArmor     Proficiency = "light_armor"
	ProficiencyMediumArmor    Proficiency = "medium_armor"
	ProficiencyHeavyArmor     Proficiency = "heavy_armor"
	ProficiencyShields        Proficiency = "shields"
	ProficiencySimpleWeapons  Proficiency = "simple_weapons"
	ProficiencyMartialWeapons Proficiency = "martial_weapons"
)

// Proficiencies lists every proficiency in sheet order
var Proficiencies = []Proficiency{
	ProficiencyLightArmor,
	ProficiencyMediumArmor,
	ProficiencyHeavyArmor,
	ProficiencyShields,
	ProficiencySimpleWeapons,
	ProficiencyMartialWeapons,
}

var proficiencyNames = map[Proficiency]string{
	ProficiencyLightArmor:     "Light Armor",
	ProficiencyMediumArmor:    "Medium Armor",
	ProficiencyHeavyArmor:     "Heavy Armor",
	ProficiencyShields:        "Shields",
	ProficiencySimpleWeapons:  "Simple Weapons",
	ProficiencyMartialWeapons: "Martial Weapons",
}

// DisplayName returns the human readable proficiency name
func (p Proficiency) DisplayName() string {
	if name, ok := proficiencyNames[p]; ok {
		return name
	}
	return string(p)
}

// Alignment is the character's moral outlook
type Alignment string

// Alignment constants
const (
	AlignmentLawfulGood     Alignment = "lawful_good"
	AlignmentNeutralGood    Alignment = "neutral_good"
	AlignmentChaoticGood    Alignment = "chaotic_good"
	AlignmentLawfulNeutral  Alignment = "lawful_neutral"
	AlignmentTrueNeutral    Alignment = "true_neutral"
	AlignmentChaoticNeutral Alignment = "chaotic_neutral"
	AlignmentLawfulEvil     Alignment = "lawful_evil"
	AlignmentNeutralEvil    Alignment = "neutral_evil"
	AlignmentChaoticEvil    Alignment = "chaotic_evil"
)

var alignmentNames = map[Alignment]string{
	AlignmentLawfulGood:     "Lawful Good",
	AlignmentNeutralGood:    "Neutral Good",
	AlignmentChaoticGood:    "Chaotic Good",
	AlignmentLawfulNeutral:  "Lawful Neutral",
	AlignmentTrueNeutral:    "True Neutral",
	AlignmentChaoticNeutral: "Chaotic Neutral",
	AlignmentLawfulEvil:     "Lawful Evil",
	AlignmentNeutralEvil:    "Neutral Evil",
	AlignmentChaoticEvil:    "Chaotic Evil",
}

// DisplayName returns the human readable alignment
func (a Alignment) DisplayName() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return string(a)
}

// Spell slot bounds
const (
	MinSpellLevel = 1
	MaxSpellLevel = 9
)

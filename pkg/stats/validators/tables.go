package validators

import "github.com/ShinyHobo/lslib/pkg/stats/expression"

// overrideEntry routes one specific field name to a validator kind,
// regardless of the field's declared type.
type overrideEntry struct {
	kind     Kind
	tag      string          // KindExpression only
	exprType expression.Type // KindExpression only
}

var boostOverride = overrideEntry{kind: KindExpression, tag: expression.TagProperties, exprType: expression.TypeBoost}
var descriptionParamsOverride = overrideEntry{kind: KindExpression, tag: expression.TagDescriptionParams, exprType: expression.TypeDescriptionParams}

// fieldOverrides is the field-name override table. It takes precedence over
// every type-based rule in the factory. These pairings are content-schema
// decisions, not derivable from type rules; audit and extend them here, not
// in the dispatch logic.
var fieldOverrides = map[string]overrideEntry{
	// Boost expression lists
	"Boosts":                boostOverride,
	"DefaultBoosts":         boostOverride,
	"BoostsOnEquipMainHand": boostOverride,
	"BoostsOnEquipOffHand":  boostOverride,

	// Tooltip / description parameter lists
	"DescriptionParams":        descriptionParamsOverride,
	"ExtraDescriptionParams":   descriptionParamsOverride,
	"ShortDescriptionParams":   descriptionParamsOverride,
	"TooltipDamage":            descriptionParamsOverride,
	"TooltipDamageList":        descriptionParamsOverride,
	"TooltipStatusApply":       descriptionParamsOverride,
	"TooltipConditionalDamage": descriptionParamsOverride,

	// UUID-valued fields
	"TooltipUpcastDescription": {kind: KindUUID},
	"RootTemplate":             {kind: KindUUID},

	// Dice-valued fields
	"Damage":          {kind: KindDiceRoll},
	"VersatileDamage": {kind: KindDiceRoll},

	// Use-cost fields
	"UseCosts":             {kind: KindUseCosts},
	"DualWieldingUseCosts": {kind: KindUseCosts},
	"TooltipUseCosts":      {kind: KindUseCosts},
	"RitualCosts":          {kind: KindUseCosts},
	"HitCosts":             {kind: KindUseCosts},

	// Hard-routed to the condition bridge
	"TargetConditions": {kind: KindCondition},
}

// flagEnumTypes is the allowlist of flag-like enumeration type names whose
// fields may combine multiple members in one `;`-separated value. Like the
// override table, this is content data, kept apart from dispatch.
var flagEnumTypes = map[string]bool{
	"AttributeFlags":        true,
	"SpellFlagList":         true,
	"WeaponFlags":           true,
	"ResistanceFlags":       true,
	"PassiveFlags":          true,
	"ProficiencyGroupFlags": true,
	"StatsFunctorContext":   true,
	"StatusEvent":           true,
	"StatusPropertyFlags":   true,
	"StatusGroupFlags":      true,
	"LineOfSightFlags":      true,
}

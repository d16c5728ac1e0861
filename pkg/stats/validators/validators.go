package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ShinyHobo/lslib/pkg/stats/expression"
	"github.com/ShinyHobo/lslib/pkg/stats/schema"
)

// Result is the outcome of validating one raw field value: a success flag,
// the typed or normalized value on success, and a human-readable message on
// failure. Validators never panic on malformed input; malformed input is
// always a reported failure.
type Result struct {
	OK      bool
	Value   any
	Message string
}

func success(value any) Result {
	return Result{OK: true, Value: value}
}

func failure(message string) Result {
	return Result{Message: message}
}

// ReferenceValidator is the consumed capability that knows whether a named
// entity of a given stat-type or GUID resource type exists. It must reflect
// the full universe of already-known stat entities and be safe for
// concurrent reads.
type ReferenceValidator interface {
	IsValidReference(name, statType string) bool
	IsValidGuidResource(name, resourceType string) bool
}

// Kind identifies one variant of the closed validator set.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindFloat
	KindString
	KindUUID
	KindEnum
	KindMultiValueEnum
	KindReference
	KindMultiValueReference
	KindUseCosts
	KindDiceRoll
	KindAnyOf
	KindExpression
	KindCondition
)

// maxStringLength caps plain string field values.
const maxStringLength = 2048

// Validator is one value validator of the closed variant set. Instances are
// stateless after construction and safe for concurrent use, provided the
// injected ReferenceValidator is itself safe for concurrent reads.
type Validator struct {
	kind Kind

	enum     *schema.Enumeration  // KindEnum, KindMultiValueEnum
	refs     ReferenceValidator   // reference, use-costs variants
	refTypes []string             // permitted target stat-types
	subs     []*Validator         // KindAnyOf, in declared order
	message  string               // KindAnyOf fixed override message
	tag      string               // KindExpression grammar variant tag
	exprType expression.Type      // KindExpression production set
}

// Kind returns the validator's variant.
func (v *Validator) Kind() Kind {
	return v.kind
}

// Validate checks one raw field value. Dispatch is a single exhaustive
// switch over the variant set; an unknown kind is a construction bug and
// panics.
func (v *Validator) Validate(value string) Result {
	switch v.kind {
	case KindBoolean:
		return v.validateBoolean(value)
	case KindInteger:
		return v.validateInteger(value)
	case KindFloat:
		return v.validateFloat(value)
	case KindString:
		return v.validateString(value)
	case KindUUID:
		return v.validateUUID(value)
	case KindEnum:
		return v.validateEnum(value)
	case KindMultiValueEnum:
		return v.validateMultiValueEnum(value)
	case KindReference:
		return v.validateReference(value)
	case KindMultiValueReference:
		return v.validateMultiValueReference(value)
	case KindUseCosts:
		return v.validateUseCosts(value)
	case KindDiceRoll:
		return v.validateDiceRoll(value)
	case KindAnyOf:
		return v.validateAnyOf(value)
	case KindExpression:
		return v.validateExpression(value)
	case KindCondition:
		return v.validateCondition(value)
	default:
		panic(fmt.Sprintf("validators: unknown validator kind %d", v.kind))
	}
}

// NewBoolean creates a boolean validator.
func NewBoolean() *Validator { return &Validator{kind: KindBoolean} }

// NewInteger creates a 32-bit signed integer validator.
func NewInteger() *Validator { return &Validator{kind: KindInteger} }

// NewFloat creates a float validator.
func NewFloat() *Validator { return &Validator{kind: KindFloat} }

// NewString creates a length-capped string validator.
func NewString() *Validator { return &Validator{kind: KindString} }

// NewUUID creates a UUID validator.
func NewUUID() *Validator { return &Validator{kind: KindUUID} }

// NewEnum creates a single-value enumeration validator.
func NewEnum(e *schema.Enumeration) *Validator {
	return &Validator{kind: KindEnum, enum: e}
}

// NewMultiValueEnum creates a validator for `;`-separated flag-like
// enumeration values.
func NewMultiValueEnum(e *schema.Enumeration) *Validator {
	return &Validator{kind: KindMultiValueEnum, enum: e}
}

// NewReference creates a stat-reference validator accepting any of the
// given target stat-types.
func NewReference(refs ReferenceValidator, statTypes []string) *Validator {
	return &Validator{kind: KindReference, refs: refs, refTypes: statTypes}
}

// NewMultiValueReference creates a validator for `;`-separated stat
// references.
func NewMultiValueReference(refs ReferenceValidator, statTypes []string) *Validator {
	return &Validator{kind: KindMultiValueReference, refs: refs, refTypes: statTypes}
}

// NewAnyOf creates a composite that accepts a value if any sub-validator
// does, tried in declared order. A non-empty message overrides the joined
// sub-errors on failure.
func NewAnyOf(message string, subs ...*Validator) *Validator {
	return &Validator{kind: KindAnyOf, message: message, subs: subs}
}

// NewExpression creates a validator routing values through the embedded
// expression grammar variant named by tag.
func NewExpression(tag string, exprType expression.Type) *Validator {
	return &Validator{kind: KindExpression, tag: tag, exprType: exprType}
}

// NewCondition creates a validator for Lua-like condition expressions.
func NewCondition() *Validator { return &Validator{kind: KindCondition} }

// NewUseCosts creates a use-costs validator. Resource names are checked
// against the injected validator as ActionResource or ActionResourceGroup
// GUID resources.
func NewUseCosts(refs ReferenceValidator) *Validator {
	return &Validator{kind: KindUseCosts, refs: refs}
}

// NewDiceRoll creates a dice-roll validator.
func NewDiceRoll() *Validator { return &Validator{kind: KindDiceRoll} }

func (v *Validator) validateBoolean(value string) Result {
	switch value {
	case "":
		return success(false)
	case "true":
		return success(true)
	case "false":
		return success(false)
	default:
		return failure("expected boolean value 'true' or 'false'")
	}
}

func (v *Validator) validateInteger(value string) Result {
	if value == "" {
		return success(int32(0))
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return failure("expected an integer value")
	}
	return success(int32(parsed))
}

func (v *Validator) validateFloat(value string) Result {
	if value == "" {
		return success(float32(0))
	}
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return failure("expected a float value")
	}
	return success(float32(parsed))
}

func (v *Validator) validateString(value string) Result {
	if len(value) > maxStringLength {
		return failure(fmt.Sprintf("Value cannot be longer than %d characters", maxStringLength))
	}
	return success(value)
}

func (v *Validator) validateUUID(value string) Result {
	if value == "" {
		return success(uuid.Nil)
	}
	// Only the canonical dashed form is legal; uuid.Parse is laxer.
	parsed, err := uuid.Parse(value)
	if err != nil || len(value) != 36 {
		return failure(fmt.Sprintf("'%s' is not a valid UUID", value))
	}
	return success(parsed)
}

func (v *Validator) validateEnum(value string) Result {
	if value == "" {
		return success(v.enum.Values[0])
	}
	if v.enum.Contains(value) {
		return success(value)
	}
	return failure("expected one of: " + enumHint(v.enum))
}

// enumHint lists the first 4 permitted values, with an ellipsis when the
// enumeration is larger.
func enumHint(e *schema.Enumeration) string {
	if len(e.Values) > 4 {
		return strings.Join(e.Values[:4], ", ") + ", ..."
	}
	return strings.Join(e.Values, ", ")
}

func (v *Validator) validateMultiValueEnum(value string) Result {
	if value == "" {
		return success(true)
	}
	single := &Validator{kind: KindEnum, enum: v.enum}
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if result := single.Validate(item); !result.OK {
			return failure(fmt.Sprintf("Value '%s' not supported; %s", item, result.Message))
		}
	}
	return success(value)
}

func (v *Validator) validateReference(value string) Result {
	if value == "" {
		return success("")
	}
	for _, statType := range v.refTypes {
		if v.refs.IsValidReference(value, statType) {
			return success(value)
		}
	}
	return failure(fmt.Sprintf("'%s' is not a valid %s reference", value, strings.Join(v.refTypes, "/")))
}

func (v *Validator) validateMultiValueReference(value string) Result {
	single := &Validator{kind: KindReference, refs: v.refs, refTypes: v.refTypes}
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if result := single.Validate(item); !result.OK {
			return result
		}
	}
	return success(value)
}

func (v *Validator) validateAnyOf(value string) Result {
	var messages []string
	for _, sub := range v.subs {
		result := sub.Validate(value)
		if result.OK {
			return result
		}
		messages = append(messages, result.Message)
	}
	if v.message != "" {
		return failure(v.message)
	}
	return failure(strings.Join(messages, "; "))
}

func (v *Validator) validateExpression(value string) Result {
	if strings.TrimSpace(value) == "" {
		return success(nil)
	}
	expr, err := expression.Validate(value, v.tag, v.exprType)
	if err != nil {
		return failure(err.Error())
	}
	return success(expr)
}

func (v *Validator) validateCondition(value string) Result {
	if strings.TrimSpace(value) == "" {
		return success(nil)
	}
	if err := expression.ValidateCondition(value); err != nil {
		return failure(err.Error())
	}
	return success(value)
}

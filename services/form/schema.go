package form

import (
	"fmt"
	"regexp"

	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// FieldType is the semantic type a rule validates and coerces to.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeEmail   FieldType = "email"
	TypeDate    FieldType = "date"
	TypePhone   FieldType = "phone"
	TypeURL     FieldType = "url"
	TypeEnum    FieldType = "enum"
	TypeCountry FieldType = "country"
	TypeBool    FieldType = "bool"
	TypeDecimal FieldType = "decimal"
	TypeFile    FieldType = "file"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
)

// Condition expresses a cross-field conditional requirement: the rule's
// field is required only when Field equals Value.
type Condition struct {
	Field string
	Value string
}

// Rule is one field's validation rule set. Rules are static data; the
// validator interprets them.
type Rule struct {
	Type       FieldType
	Required   bool
	RequiredIf *Condition
	MinLen     int
	MaxLen     int
	Pattern    *regexp.Regexp
	EnumList   string // reference list name for enum membership
	MustBeTrue bool   // bool fields that must be accepted (attestations)
	Nullable   bool   // may be cleared with the explicit clear sentinel
	Fields     map[string]Rule
	Elem       *Rule

	// File metadata used by the document resolver.
	Category string
	Side     string
}

// StepSchema is the rule set for one wizard step.
type StepSchema map[string]Rule

// MaxSteps returns the number of wizard steps for a kind.
func MaxSteps(kind types.SubmissionKind) int {
	if kind == types.KindBusiness {
		return len(businessSteps)
	}
	return len(individualSteps)
}

// Schema returns the validation rules for (kind, step). The rules are a
// pure function of the pair and can be enumerated for documentation.
func Schema(kind types.SubmissionKind, step int) (StepSchema, error) {
	var steps []StepSchema
	switch kind {
	case types.KindIndividual:
		steps = individualSteps
	case types.KindBusiness:
		steps = businessSteps
	default:
		return nil, fmt.Errorf("unknown submission kind: %s", kind)
	}
	if step < 1 || step > len(steps) {
		return nil, fmt.Errorf("step %d out of range for %s (1..%d)", step, kind, len(steps))
	}
	return steps[step-1], nil
}

var nameRule = Rule{Type: TypeString, Required: true, MinLen: 1, MaxLen: 100}

func addressRules(withProof bool) map[string]Rule {
	rules := map[string]Rule{
		"street_line_1": {Type: TypeString, Required: true, MaxLen: 200},
		"street_line_2": {Type: TypeString, MaxLen: 200, Nullable: true},
		"city":          {Type: TypeString, Required: true, MaxLen: 100},
		"state":         {Type: TypeString, MaxLen: 100, Nullable: true},
		"postal_code":   {Type: TypeString, MaxLen: 20, Nullable: true},
		"country":       {Type: TypeCountry, Required: true, EnumList: refdata.ListCountries},
	}
	if withProof {
		rules["proof_of_address"] = Rule{Type: TypeFile, Category: "proof_of_address"}
	}
	return rules
}

func identifyingInformationRule(required bool) Rule {
	return Rule{
		Type:     TypeArray,
		Required: required,
		Elem: &Rule{
			Type: TypeObject,
			Fields: map[string]Rule{
				"type":            {Type: TypeEnum, Required: true, EnumList: refdata.ListIdentificationType},
				"issuing_country": {Type: TypeCountry, Required: true},
				"number":          {Type: TypeString, Required: true, MaxLen: 100},
				"expiration":      {Type: TypeDate, Nullable: true},
				"image_front":     {Type: TypeFile, Required: true, Category: "identity_documents", Side: "front"},
				"image_back":      {Type: TypeFile, Category: "identity_documents", Side: "back"},
			},
		},
	}
}

func documentsRule() Rule {
	return Rule{
		Type: TypeArray,
		Elem: &Rule{
			Type: TypeObject,
			Fields: map[string]Rule{
				"file":         {Type: TypeFile, Required: true, Category: "supporting_documents"},
				"purpose_tags": {Type: TypeArray, Elem: &Rule{Type: TypeString, MaxLen: 50}},
				"description":  {Type: TypeString, MaxLen: 300, Nullable: true},
			},
		},
	}
}

var purposeRules = map[string]Rule{
	"purpose": {Type: TypeEnum, Required: true, EnumList: refdata.ListPurposes},
	"purpose_other": {
		Type:       TypeString,
		MaxLen:     200,
		RequiredIf: &Condition{Field: "purpose", Value: "other"},
		Nullable:   true,
	},
	"source_of_funds":         {Type: TypeEnum, Required: true, EnumList: refdata.ListSourcesOfFunds},
	"expected_monthly_volume": {Type: TypeDecimal, Nullable: true},
	"endorsements":            {Type: TypeArray, Elem: &Rule{Type: TypeEnum, EnumList: refdata.ListEndorsements}},
}

func withRules(base map[string]Rule, extra map[string]Rule) StepSchema {
	schema := make(StepSchema, len(base)+len(extra))
	for name, rule := range base {
		schema[name] = rule
	}
	for name, rule := range extra {
		schema[name] = rule
	}
	return schema
}

var individualSteps = []StepSchema{
	// Step 1: personal information
	{
		"first_name":  nameRule,
		"middle_name": {Type: TypeString, MaxLen: 100, Nullable: true},
		"last_name":   nameRule,
		"email":       {Type: TypeEmail, Required: true},
		"phone":       {Type: TypePhone, Required: true},
		"birth_date":  {Type: TypeDate, Required: true},
	},
	// Step 2: residential address
	{
		"residential_address": {Type: TypeObject, Required: true, Fields: addressRules(true)},
	},
	// Step 3: identity documents
	{
		"identifying_information": identifyingInformationRule(true),
	},
	// Step 4: employment and purpose
	withRules(purposeRules, map[string]Rule{
		"occupation": {Type: TypeEnum, Required: true, EnumList: refdata.ListOccupations},
	}),
	// Step 5: supporting documents and attestation
	{
		"documents":   documentsRule(),
		"attestation": {Type: TypeBool, Required: true, MustBeTrue: true},
	},
}

var businessSteps = []StepSchema{
	// Step 1: business information
	{
		"business_name":       nameRule,
		"legal_name":          {Type: TypeString, MaxLen: 200, Nullable: true},
		"description":         {Type: TypeString, MaxLen: 500, Nullable: true},
		"email":               {Type: TypeEmail, Required: true},
		"phone":               {Type: TypePhone, Required: true},
		"website":             {Type: TypeURL, Nullable: true},
		"tax_id":              {Type: TypeString, Required: true, MaxLen: 50},
		"registration_number": {Type: TypeString, Required: true, MaxLen: 50},
		"entity_type":         {Type: TypeEnum, Required: true, EnumList: refdata.ListEntityTypes},
	},
	// Step 2: registered and physical addresses
	{
		"registered_address": {Type: TypeObject, Required: true, Fields: addressRules(true)},
		"physical_address":   {Type: TypeObject, Fields: addressRules(true)},
	},
	// Step 3: registration documents
	{
		"identifying_information": identifyingInformationRule(true),
	},
	// Step 4: beneficial owners
	{
		"beneficial_owners": {
			Type:     TypeArray,
			Required: true,
			Elem: &Rule{
				Type: TypeObject,
				Fields: map[string]Rule{
					"full_name":            {Type: TypeString, Required: true, MaxLen: 160},
					"birth_date":           {Type: TypeDate, Required: true},
					"ownership_percentage": {Type: TypeDecimal, Required: true},
					"residential_address":  {Type: TypeObject, Required: true, Fields: addressRules(false)},
					"government_issued_id": {Type: TypeFile, Required: true, Category: "beneficial_owner_ids"},
				},
			},
		},
	},
	// Step 5: activity and purpose
	withRules(purposeRules, map[string]Rule{
		"high_risk_activities": {Type: TypeArray, Elem: &Rule{Type: TypeEnum, EnumList: refdata.ListHighRiskActivities}},
	}),
	// Step 6: supporting documents and attestation
	{
		"documents":   documentsRule(),
		"attestation": {Type: TypeBool, Required: true, MustBeTrue: true},
	},
}

package form

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/types"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
)

// Rejection kinds attached to types.ErrorData entries.
const (
	RejectionMissing                = "missing"
	RejectionMalformed              = "malformed"
	RejectionOutOfDomain            = "out_of_domain"
	RejectionConditionalUnsatisfied = "conditional_unsatisfied"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Validator checks a normalized payload against the schema for one
// (kind, step) pair. It coerces values as it validates: dates become
// time.Time, decimals become canonical strings, country codes are
// uppercased. The output map contains only schema-known fields.
type Validator struct {
	refdata  refdata.Provider
	validate *validator.Validate
}

// NewValidator builds a Validator backed by the given reference-data
// provider.
func NewValidator(provider refdata.Provider) *Validator {
	return &Validator{
		refdata:  provider,
		validate: validator.New(),
	}
}

// ValidateStep validates a normalized payload against the rules for
// (kind, step). On success it returns the coerced field map. Rejections
// are returned as structured entries and never as an error; the error
// return is reserved for internal failures (unknown step, reference-data
// lookup failure).
func (v *Validator) ValidateStep(ctx context.Context, kind types.SubmissionKind, step int, payload map[string]interface{}) (map[string]interface{}, []types.ErrorData, error) {
	schema, err := Schema(kind, step)
	if err != nil {
		return nil, nil, err
	}

	validated := map[string]interface{}{}
	var rejections []types.ErrorData
	if err := v.validateFields(ctx, "", schema, payload, validated, &rejections); err != nil {
		return nil, nil, err
	}
	if len(rejections) > 0 {
		sort.SliceStable(rejections, func(i, j int) bool {
			return rejections[i].Field < rejections[j].Field
		})
		return nil, rejections, nil
	}
	return validated, nil, nil
}

func (v *Validator) validateFields(ctx context.Context, prefix string, schema map[string]Rule, payload map[string]interface{}, out map[string]interface{}, rejections *[]types.ErrorData) error {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := schema[name]
		path := joinPath(prefix, name)
		value, present := payload[name]

		required := rule.Required
		if rule.RequiredIf != nil {
			required = conditionMet(payload, rule.RequiredIf)
		}

		if present && value == types.ClearSentinel {
			if required {
				*rejections = append(*rejections, types.ErrorData{
					Field: path, Kind: RejectionMalformed,
					Message: "This field cannot be cleared",
				})
				continue
			}
			out[name] = types.ClearSentinel
			continue
		}

		if !present || isEmpty(value) {
			if required {
				*rejections = append(*rejections, types.ErrorData{
					Field: path, Kind: RejectionMissing,
					Message: "This field is required",
				})
			}
			// Omission never clears an existing value.
			continue
		}

		coerced, err := v.coerce(ctx, path, rule, value, payload, rejections)
		if err != nil {
			return err
		}
		if coerced != nil {
			out[name] = coerced
		}
	}
	return nil
}

// coerce validates a single present value against its rule and returns the
// coerced form, or nil after appending rejections.
func (v *Validator) coerce(ctx context.Context, path string, rule Rule, value interface{}, siblings map[string]interface{}, rejections *[]types.ErrorData) (interface{}, error) {
	reject := func(kind, message string) {
		*rejections = append(*rejections, types.ErrorData{Field: path, Kind: kind, Message: message})
	}

	switch rule.Type {
	case TypeString:
		s, ok := asString(value)
		if !ok {
			reject(RejectionMalformed, "Expected a text value")
			return nil, nil
		}
		if rule.MinLen > 0 && len(s) < rule.MinLen {
			reject(RejectionMalformed, fmt.Sprintf("Must be at least %d characters", rule.MinLen))
			return nil, nil
		}
		if rule.MaxLen > 0 && len(s) > rule.MaxLen {
			reject(RejectionMalformed, fmt.Sprintf("Must be at most %d characters", rule.MaxLen))
			return nil, nil
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			reject(RejectionMalformed, "Invalid format")
			return nil, nil
		}
		return s, nil

	case TypeEmail:
		s, ok := asString(value)
		if !ok || v.validate.Var(s, "required,email") != nil {
			reject(RejectionMalformed, "Invalid email address")
			return nil, nil
		}
		return strings.ToLower(s), nil

	case TypePhone:
		s, ok := asString(value)
		if !ok || !u.IsValidPhoneNumber(s) {
			reject(RejectionMalformed, "Phone number must be in E.164 format")
			return nil, nil
		}
		return s, nil

	case TypeURL:
		s, ok := asString(value)
		if !ok || v.validate.Var(s, "required,url") != nil {
			reject(RejectionMalformed, "Invalid URL")
			return nil, nil
		}
		return s, nil

	case TypeDate:
		s, ok := asString(value)
		if !ok {
			reject(RejectionMalformed, "Expected a date in YYYY-MM-DD format")
			return nil, nil
		}
		parsed, err := time.Parse(DateLayout, s)
		if err != nil {
			reject(RejectionMalformed, "Expected a date in YYYY-MM-DD format")
			return nil, nil
		}
		return parsed, nil

	case TypeCountry:
		s, ok := asString(value)
		if !ok || !u.IsValidCountryCode(s) {
			reject(RejectionMalformed, "Expected an ISO country code")
			return nil, nil
		}
		code := strings.ToUpper(s)
		if rule.EnumList != "" {
			known, err := refdata.Contains(ctx, v.refdata, rule.EnumList, code)
			if err != nil {
				return nil, err
			}
			if !known {
				reject(RejectionOutOfDomain, "Unsupported country")
				return nil, nil
			}
		}
		return code, nil

	case TypeEnum:
		s, ok := asString(value)
		if !ok {
			reject(RejectionMalformed, "Expected a text value")
			return nil, nil
		}
		listName := rule.EnumList
		if listName == refdata.ListIdentificationType {
			// Identification types are scoped to the issuing country of
			// the same entry.
			if cc, ok := asString(siblings["issuing_country"]); ok && u.IsValidCountryCode(cc) {
				listName = refdata.ListIdentificationType + "_" + strings.ToUpper(cc)
			}
		}
		known, err := refdata.Contains(ctx, v.refdata, listName, s)
		if err != nil {
			return nil, err
		}
		if !known {
			reject(RejectionOutOfDomain, fmt.Sprintf("Value %q is not in the allowed set", s))
			return nil, nil
		}
		return s, nil

	case TypeBool:
		b, ok := asBool(value)
		if !ok {
			reject(RejectionMalformed, "Expected true or false")
			return nil, nil
		}
		if rule.MustBeTrue && !b {
			reject(RejectionConditionalUnsatisfied, "Must be accepted before continuing")
			return nil, nil
		}
		return b, nil

	case TypeDecimal:
		d, ok := asDecimal(value)
		if !ok {
			reject(RejectionMalformed, "Expected a numeric value")
			return nil, nil
		}
		if d.IsNegative() {
			reject(RejectionMalformed, "Must not be negative")
			return nil, nil
		}
		return d.String(), nil

	case TypeFile:
		switch f := value.(type) {
		case *types.FileUpload:
			if f == nil || f.Open == nil {
				reject(RejectionMalformed, "Expected a file upload")
				return nil, nil
			}
			return f, nil
		case string:
			if !u.IsValidFileURL(f) {
				reject(RejectionMalformed, "Expected a file upload or stored file reference")
				return nil, nil
			}
			return f, nil
		default:
			reject(RejectionMalformed, "Expected a file upload")
			return nil, nil
		}

	case TypeObject:
		child, ok := value.(map[string]interface{})
		if !ok {
			reject(RejectionMalformed, "Expected a nested object")
			return nil, nil
		}
		validated := map[string]interface{}{}
		if err := v.validateFields(ctx, path, rule.Fields, child, validated, rejections); err != nil {
			return nil, err
		}
		return validated, nil

	case TypeArray:
		items, ok := value.([]interface{})
		if !ok {
			reject(RejectionMalformed, "Expected a list")
			return nil, nil
		}
		if rule.Required && len(items) == 0 {
			reject(RejectionMissing, "At least one entry is required")
			return nil, nil
		}
		out := make([]interface{}, 0, len(items))
		for i, item := range items {
			elemPath := fmt.Sprintf("%s.%d", path, i)
			elemSiblings, _ := item.(map[string]interface{})
			coerced, err := v.coerce(ctx, elemPath, *rule.Elem, item, elemSiblings, rejections)
			if err != nil {
				return nil, err
			}
			if coerced != nil {
				out = append(out, coerced)
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("unhandled field type %q at %s", rule.Type, path)
}

func conditionMet(payload map[string]interface{}, cond *Condition) bool {
	s, ok := asString(payload[cond.Field])
	return ok && s == cond.Value
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func asString(value interface{}) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func asBool(value interface{}) (bool, bool) {
	switch b := value.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	}
	return false, false
}

func asDecimal(value interface{}) (decimal.Decimal, bool) {
	switch n := value.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	}
	return decimal.Zero, false
}

package form

import (
	"strings"
	"time"

	"github.com/towoju5/bridge-verification-system-sub001/services/transliterate"
	"github.com/towoju5/bridge-verification-system-sub001/types"
)

// Name fields that get a transliterated companion attribute. The companion
// key is "transliterated_" + field and is written whenever the name is.
var transliteratedFields = map[string]bool{
	"first_name":    true,
	"middle_name":   true,
	"last_name":     true,
	"business_name": true,
	"legal_name":    true,
	"full_name":     true,
}

// proofFieldRename maps upload field names to the attribute the stored
// reference is persisted under.
const (
	proofOfAddressField = "proof_of_address"
	proofOfAddressAttr  = "proof_of_address_ref"
)

// MappedStep is the projection of one validated, document-resolved step
// onto submission attributes. Fields merges additively into the record;
// Documents and IdentifyingInformation replace their arrays wholesale when
// the owning step sets them. Cleared lists the dotted paths an explicit
// clear removed.
type MappedStep struct {
	Fields                 map[string]interface{}
	Documents              []types.DocumentRef
	IdentifyingInformation []types.IdentifyingInformation
	SetDocuments           bool
	SetIdentifying         bool
	Cleared                []string
}

// Mapper projects validated step payloads onto submission attributes.
type Mapper struct {
	transliterator transliterate.Transliterator
}

// NewMapper builds a Mapper using the given transliterator for name
// variants.
func NewMapper(t transliterate.Transliterator) *Mapper {
	return &Mapper{transliterator: t}
}

// Map converts a resolved step payload into its persisted form. The input
// must already be validated and have every file upload replaced by its
// storage reference.
func (m *Mapper) Map(kind types.SubmissionKind, step int, resolved map[string]interface{}) (*MappedStep, error) {
	if _, err := Schema(kind, step); err != nil {
		return nil, err
	}

	mapped := &MappedStep{Fields: map[string]interface{}{}}

	for name, value := range resolved {
		switch name {
		case "documents":
			mapped.Documents = m.mapDocuments(value)
			mapped.SetDocuments = true
		case "identifying_information":
			mapped.IdentifyingInformation = m.mapIdentifying(value)
			mapped.SetIdentifying = true
		default:
			m.mapField(mapped, "", name, value)
		}
	}

	return mapped, nil
}

func (m *Mapper) mapField(mapped *MappedStep, prefix, name string, value interface{}) {
	path := joinPath(prefix, name)

	if value == types.ClearSentinel {
		mapped.Cleared = append(mapped.Cleared, path)
		return
	}

	switch v := value.(type) {
	case time.Time:
		setNested(mapped.Fields, path, v.Format(DateLayout))
	case map[string]interface{}:
		for childName, childValue := range v {
			attr := childName
			if childName == proofOfAddressField {
				attr = proofOfAddressAttr
			}
			m.mapField(mapped, path, attr, childValue)
		}
	case []interface{}:
		setNested(mapped.Fields, path, mapSlice(v))
	case string:
		setNested(mapped.Fields, path, v)
		if prefix == "" && transliteratedFields[name] {
			result := m.transliterator.Transliterate(v)
			setNested(mapped.Fields, "transliterated_"+name, result.Transliterated)
		}
	default:
		setNested(mapped.Fields, path, v)
	}
}

func mapSlice(items []interface{}) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case time.Time:
			out = append(out, v.Format(DateLayout))
		case map[string]interface{}:
			child := map[string]interface{}{}
			for k, val := range v {
				switch t := val.(type) {
				case time.Time:
					child[k] = t.Format(DateLayout)
				case []interface{}:
					child[k] = mapSlice(t)
				default:
					child[k] = val
				}
			}
			out = append(out, child)
		default:
			out = append(out, v)
		}
	}
	return out
}

func (m *Mapper) mapDocuments(value interface{}) []types.DocumentRef {
	items, _ := value.([]interface{})
	docs := make([]types.DocumentRef, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		doc := types.DocumentRef{}
		if ref, ok := entry["file"].(string); ok {
			doc.StorageReference = ref
		}
		if desc, ok := entry["description"].(string); ok {
			doc.Description = desc
		}
		if tags, ok := entry["purpose_tags"].([]interface{}); ok {
			for _, tag := range tags {
				if s, ok := tag.(string); ok {
					doc.PurposeTags = append(doc.PurposeTags, s)
				}
			}
		}
		docs = append(docs, doc)
	}
	return docs
}

func (m *Mapper) mapIdentifying(value interface{}) []types.IdentifyingInformation {
	items, _ := value.([]interface{})
	out := make([]types.IdentifyingInformation, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		info := types.IdentifyingInformation{}
		info.Type, _ = entry["type"].(string)
		info.IssuingCountry, _ = entry["issuing_country"].(string)
		info.Number, _ = entry["number"].(string)
		if exp, ok := entry["expiration"].(time.Time); ok {
			info.Expiration = exp.Format(DateLayout)
		}
		info.ImageFrontRef, _ = entry["image_front"].(string)
		info.ImageBackRef, _ = entry["image_back"].(string)
		out = append(out, info)
	}
	return out
}

// setNested writes value under a dotted path, creating intermediate maps.
func setNested(root map[string]interface{}, path string, value interface{}) {
	segments := strings.Split(path, ".")
	current := root
	for i, segment := range segments {
		if i == len(segments)-1 {
			current[segment] = value
			return
		}
		child, ok := current[segment].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			current[segment] = child
		}
		current = child
	}
}

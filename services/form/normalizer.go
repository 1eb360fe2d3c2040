// Package form implements the step-sequenced form engine: payload
// normalization, per-step schema tables, validation and the projection of
// validated fields onto submission attributes.
package form

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Clients encode the same logical field three ways. Dotted keys win over
// indexed keys, which win over underscored-prefix keys; normalization
// applies the encodings lowest-priority first so the later writes win.
//
// The underscored encoding is only recognized for the fixed prefixes below.
// Splitting arbitrary underscores would mangle field names that
// legitimately contain them (e.g. "first_name").
var objectPrefixes = []string{
	"residential_address",
	"registered_address",
	"physical_address",
}

var arrayPrefixes = []string{
	"identifying_information",
	"beneficial_owners",
	"documents",
	"endorsements",
	"high_risk_activities",
	"purpose_tags",
}

var indexedPatterns = buildIndexedPatterns()

func buildIndexedPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(arrayPrefixes))
	for _, prefix := range arrayPrefixes {
		patterns[prefix] = regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_([0-9]+)(?:_(.+))?$`)
	}
	return patterns
}

// sparseList collects array writes by index until finalization, so gaps in
// the provided indices compact away instead of becoming nulls.
type sparseList struct {
	items map[int]interface{}
}

func newSparseList() *sparseList {
	return &sparseList{items: map[int]interface{}{}}
}

// Normalize rewrites a flat, arbitrarily-encoded payload into one nested
// mapping keyed by logical field name. Values are opaque: scalars and file
// handles pass through untouched. Keys matching no known encoding are
// copied as-is.
func Normalize(flat map[string]interface{}) map[string]interface{} {
	root := map[string]interface{}{}

	var plain, underscored, indexed, dotted []string
	for key := range flat {
		switch classify(key) {
		case encDotted:
			dotted = append(dotted, key)
		case encIndexed:
			indexed = append(indexed, key)
		case encUnderscored:
			underscored = append(underscored, key)
		default:
			plain = append(plain, key)
		}
	}
	sort.Strings(plain)
	sort.Strings(underscored)
	sort.Strings(indexed)
	sort.Strings(dotted)

	for _, key := range plain {
		root[key] = flat[key]
	}
	for _, key := range underscored {
		prefix, rest := splitObjectPrefix(key)
		setPath(root, []string{prefix, rest}, flat[key])
	}
	for _, key := range indexed {
		setPath(root, splitIndexed(key), flat[key])
	}
	for _, key := range dotted {
		setPath(root, strings.Split(key, "."), flat[key])
	}

	return finalizeMap(root)
}

type encoding int

const (
	encPlain encoding = iota
	encDotted
	encIndexed
	encUnderscored
)

func classify(key string) encoding {
	if strings.Contains(key, ".") {
		return encDotted
	}
	for _, pattern := range indexedPatterns {
		if pattern.MatchString(key) {
			return encIndexed
		}
	}
	for _, prefix := range objectPrefixes {
		if strings.HasPrefix(key, prefix+"_") {
			return encUnderscored
		}
	}
	return encPlain
}

func splitObjectPrefix(key string) (prefix, rest string) {
	for _, p := range objectPrefixes {
		if strings.HasPrefix(key, p+"_") {
			return p, strings.TrimPrefix(key, p+"_")
		}
	}
	return key, ""
}

func splitIndexed(key string) []string {
	for prefix, pattern := range indexedPatterns {
		match := pattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		segments := []string{prefix, match[1]}
		if match[2] != "" {
			segments = append(segments, match[2])
		}
		return segments
	}
	return []string{key}
}

// setPath writes value at the given path, creating intermediate maps and
// sparse lists. An existing scalar in the way is replaced: the encodings
// are applied in priority order, so the later write is the one that wins.
func setPath(root map[string]interface{}, path []string, value interface{}) {
	var container interface{} = root

	for i, segment := range path {
		last := i == len(path)-1
		idx, isIndex := parseIndex(segment)

		switch parent := container.(type) {
		case map[string]interface{}:
			if isIndex {
				// A numeric segment under a map key should not occur for
				// recognized paths; store it as a literal key.
			}
			if last {
				parent[segment] = value
				return
			}
			child := parent[segment]
			child = ensureContainer(child, path[i+1])
			parent[segment] = child
			container = child
		case *sparseList:
			if !isIndex {
				return
			}
			if last {
				parent.items[idx] = value
				return
			}
			child := ensureContainer(parent.items[idx], path[i+1])
			parent.items[idx] = child
			container = child
		default:
			return
		}
	}
}

// ensureContainer returns child if it already is the right container kind
// for the next path segment, otherwise a fresh one.
func ensureContainer(child interface{}, nextSegment string) interface{} {
	if _, isIndex := parseIndex(nextSegment); isIndex {
		if list, ok := child.(*sparseList); ok {
			return list
		}
		return newSparseList()
	}
	if m, ok := child.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func parseIndex(segment string) (int, bool) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func finalizeMap(m map[string]interface{}) map[string]interface{} {
	for key, value := range m {
		m[key] = finalizeValue(value)
	}
	return m
}

func finalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return finalizeMap(v)
	case *sparseList:
		indices := make([]int, 0, len(v.items))
		for idx := range v.items {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		out := make([]interface{}, 0, len(indices))
		for _, idx := range indices {
			out = append(out, finalizeValue(v.items[idx]))
		}
		return out
	default:
		return value
	}
}

// GetPath reads a value from a normalized payload by its canonical dotted
// path. Numeric segments index arrays.
func GetPath(root map[string]interface{}, path string) (interface{}, bool) {
	var current interface{} = root
	for _, segment := range strings.Split(path, ".") {
		switch parent := current.(type) {
		case map[string]interface{}:
			value, ok := parent[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			idx, isIndex := parseIndex(segment)
			if !isIndex || idx >= len(parent) {
				return nil, false
			}
			current = parent[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

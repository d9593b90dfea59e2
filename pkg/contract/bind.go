package contract

import "reflect"

// resolved is one constrained argument with the value the caller supplied.
type resolved struct {
	rule  Rule
	value any
}

// resolve maps each rule's argument name to the effective caller-supplied
// value. Keyword arguments win over positionals; a name with no keyword
// entry and no filled positional slot is absent and omitted from the
// result. In legacy mode a resolved value that is falsy (nil, zero,
// empty) is also treated as absent, matching the historical behavior.
func resolve(params []string, rules []Rule, args []any, kwargs map[string]any, legacy bool) []resolved {
	out := make([]resolved, 0, len(rules))
	for _, r := range rules {
		value, ok := lookupArg(params, r.Name, args, kwargs)
		if !ok {
			continue
		}
		if legacy && falsy(value) {
			continue
		}
		out = append(out, resolved{rule: r, value: value})
	}
	return out
}

func lookupArg(params []string, name string, args []any, kwargs map[string]any) (any, bool) {
	if kwargs != nil {
		if v, ok := kwargs[name]; ok {
			return v, true
		}
	}
	if idx := paramIndex(params, name); idx >= 0 && idx < len(args) {
		return args[idx], true
	}
	return nil, false
}

func paramIndex(params []string, name string) int {
	for i, p := range params {
		if p == name {
			return i
		}
	}
	return -1
}

// falsy reports whether a value would be skipped under legacy presence
// semantics: nil, numeric zero, false, and empty strings or collections.
func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}

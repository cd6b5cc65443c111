package layer

import "strings"

// DeepMerge merges src into dst and returns dst. Tables present in both are
// merged recursively; any other src value replaces the dst value. Values
// taken from src are copied.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, sv := range src {
		sm, srcTable := sv.(map[string]any)
		dm, dstTable := dst[k].(map[string]any)
		if srcTable && dstTable {
			dst[k] = DeepMerge(dm, sm)
			continue
		}
		dst[k] = cloneValue(sv)
	}
	return dst
}

// Clone returns a deep copy of a nested map.
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// SplitPath splits "a.b.c" into its non-empty segments.
func SplitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// GetByPath returns the value at a dot-separated path.
func GetByPath(data map[string]any, path string) (any, bool) {
	parts := SplitPath(path)
	if len(parts) == 0 || data == nil {
		return nil, false
	}

	var cur any = data
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetByPath stores value at a dot-separated path, creating intermediate
// tables. It reports false when a non-table value is in the way.
func SetByPath(data map[string]any, path string, value any) bool {
	parts := SplitPath(path)
	if len(parts) == 0 || data == nil {
		return false
	}

	cur := data
	for _, p := range parts[:len(parts)-1] {
		next, exists := cur[p]
		if !exists {
			m := make(map[string]any)
			cur[p] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return false
		}
		cur = m
	}
	cur[parts[len(parts)-1]] = value
	return true
}

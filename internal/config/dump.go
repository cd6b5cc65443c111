package config

import (
	"regexp"
	"sort"

	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// identKey matches keys that are safe as sjson path components.
var identKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Dump returns the merged settings as indented JSON. A non-empty pattern
// keeps only matching entries; "*" and "?" are wildcards. Entries are
// addressed as "section.key", except sections whose keys are not plain
// names, such as keymap, which match by section name as a whole.
func (c *Config) Dump(pattern string) ([]byte, error) {
	merged := c.Merged()

	sections := make([]string, 0, len(merged))
	for name := range merged {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	keep := func(path string) bool {
		return pattern == "" || match.Match(path, pattern)
	}

	out := []byte("{}")
	var err error
	for _, name := range sections {
		value := merged[name]
		table, ok := value.(map[string]any)
		if !ok || !identKey.MatchString(name) || !plainKeys(table) {
			if keep(name) {
				if out, err = sjson.SetBytes(out, escapePath(name), value); err != nil {
					return nil, err
				}
			}
			continue
		}

		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			path := name + "." + k
			if !keep(path) {
				continue
			}
			if out, err = sjson.SetBytes(out, path, table[k]); err != nil {
				return nil, err
			}
		}
	}
	return pretty.PrettyOptions(out, &pretty.Options{Width: 80, Indent: "  ", SortKeys: true}), nil
}

func plainKeys(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !identKey.MatchString(k) {
			return false
		}
	}
	return true
}

// escapePath escapes sjson path syntax in a single key.
func escapePath(key string) string {
	var b []byte
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			b = append(b, '\\')
		}
		b = append(b, key[i])
	}
	return string(b)
}

// Package charinfo describes codepoints for display and parses the
// codepoint jump input.
//
// Names come from golang.org/x/text/unicode/runenames, general categories
// from the standard unicode tables and block labels from a BlockTable
// loaded from YAML. A default table covering common blocks is embedded.
package charinfo

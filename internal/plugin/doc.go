// Package plugin runs user glyph scripts at startup.
//
// Scripts are Lua files listed under plugins.scripts in the settings or
// passed with -script. Relative paths resolve against the user config
// directory. See package lua for the script API.
package plugin

// Package parse reads JSON or YAML text into IR nodes.
//
// Object field order is kept as it appears in the text, and numbers keep
// the distinction between integers and floats.
//
//	node, err := parse.Parse(data)
//	node, err = parse.Parse(data, parse.ParseFormat(format.YAMLFormat))
package parse

// Package clarg provides declarative command-line argument definition and parsing.
//
// Quick Start:
//
//	reg := clarg.NewRegistry()
//	reg.MustDefine("verbose", clarg.Properties{Bool: true, Aliases: []string{"v"}})
//	reg.MustDefine("tags", clarg.Properties{List: true})
//	reg.MustDefine("count", clarg.Properties{Check: clarg.Builtin("number"), Default: clarg.Literal("1")})
//
//	res, err := reg.Parse(os.Args[1:])
//
// Flags may use any number of leading dashes (-x, --x) and take values inline
// (--name=value) or from the next token (-name value). Names resolve by exact
// name or alias, then by unambiguous prefix of a canonical name. A "--" token
// ends flag parsing.
//
// See example_test.go and the schemafile package for declaring arguments in files.
package clarg

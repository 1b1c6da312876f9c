// Package schemafile declares arguments from YAML, JSON, TOML or HCL files.
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml, .hcl).
// Arguments are listed in order; registration order is preserved.
//
// YAML example:
//
//	arguments:
//	  - name: tags
//	    alias: [t]
//	    list: true
//	  - name: count
//	    check: number
//	    default: 1
//	  - name: mode
//	    check: /^(fast|slow)$/
//	    description: Run mode
//
// HCL example:
//
//	argument "verbose" {
//	  alias = ["v"]
//	  bool  = true
//	}
//
// Example:
//
//	reg, err := schemafile.Load("args.yaml", schemafile.Options{Required: true})
package schemafile

// Package mapping provides the YAML schema, parsing and validation of binding
// declaration files, and the plan format resolution results are written in.
//
// A declaration file pins the declarations of one or more bound elements so
// they can be resolved and checked outside the host application.
//
// # Schema Overview
//
//	version: "1"
//	bindings:
//	  - name: profile
//	    expose: "user.name,&save"     # explicit export list
//	    attributes:                   # raw attribute mapping
//	      ":title": page.title
//	      v-model: form.email
//	      "@click": save()
//	# Optional fixture used by `bindbridge check`
//	scope:
//	  user: {name: Ann}
//	  page: {title: Home}
//	  form: {email: ""}
//	delegates: [save]                 # host functions, bound to no-ops
//
// # Plan Output
//
// Resolved declarations are written back as a Plan: one entry per binding
// with its sorted paths, delegates, sync mapping and diagnostics.
package mapping

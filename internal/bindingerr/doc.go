// Package bindingerr provides the structured error type shared by the path,
// resolution and wiring layers.
//
// Errors are categorized by Phase (where the failure was detected) and Kind
// (what went wrong). All three kinds are fatal to the operation that raised
// them: nothing is retried and no partial binding is left active.
//
//	err := bindingerr.UnsupportedValue("v-model", "123abc")
//	if errors.Is(err, bindingerr.ErrUnsupportedBindingValue) {
//		// fix the declaration
//	}
//
// Use errors.As to recover the offending attribute, expression or value.
package bindingerr

package renderkit

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors naming the expected usage-error modes (spec.md §7). Usage
// errors are refused-but-continue: they are reported through
// reportDiagnostic, and no function in this package returns these values.
var (
	// ErrOnMountedOutsideSetup names the usage error of calling OnMounted
	// outside a component's setup.
	ErrOnMountedOutsideSetup = errors.New("renderkit: OnMounted called outside of setup()")
	// ErrWriteToProp names the usage error of a render-context write that
	// targets a prop.
	ErrWriteToProp = errors.New("renderkit: cannot write to a component prop from its render context")
	// ErrUnknownRenderContextKey names the usage error of a render-context
	// read/write that targets no known container.
	ErrUnknownRenderContextKey = errors.New("renderkit: unknown render context key")
)

// reportDiagnostic reports a usage error (spec.md §7): the operation is
// refused but execution continues. The teacher's reactive core has no
// external logging dependency for this narrow, very-hot-path concern
// (see pkg/vango's checkEffectTimeWrite, which also just prints), so this
// stays on stdlib fmt/os rather than pulling in a logging library.
func reportDiagnostic(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "renderkit: "+format+"\n", args...)
}

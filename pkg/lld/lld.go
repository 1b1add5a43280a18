package lld

import (
	"strings"

	"github.com/GriffinCanCode/linka/pkg/logger"
)

// Link runs the LLD driver for flavor with args, exactly once, and blocks
// until it returns. args must not include the program name. Concurrent
// calls are serialized by the native shim.
func Link(flavor Flavor, args []string) Result {
	if !flavor.Valid() {
		return failure(flavor, "lld: unsupported flavor %s", flavor)
	}
	for i, arg := range args {
		if strings.IndexByte(arg, 0) >= 0 {
			return failure(flavor, "lld: argument %d contains a NUL byte", i)
		}
	}

	logger.LogLinkStart(flavor.String(), len(args))
	res := invoke(flavor, args)
	res.Flavor = flavor
	logger.LogLinkComplete(flavor.String(), res.Success, len(res.Messages))
	return res
}

// Available reports whether this binary was built with the native bridge.
func Available() bool {
	return nativeAvailable
}

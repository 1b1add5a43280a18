//go:build !lld

package lld

const nativeAvailable = false

func invoke(flavor Flavor, _ []string) Result {
	return failure(flavor, "lld: built without lld support; run go generate ./pkg/lld and build with -tags lld")
}

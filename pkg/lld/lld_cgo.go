//go:build lld

package lld

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

const nativeAvailable = true

func invoke(flavor Flavor, args []string) Result {
	// calloc needs a non-zero count; argv may be empty.
	argv := (**C.char)(C.calloc(C.size_t(len(args)+1), C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	defer C.free(unsafe.Pointer(argv))

	slots := unsafe.Slice(argv, len(args)+1)
	for i, arg := range args {
		slots[i] = C.CString(arg)
	}
	defer func() {
		for i := range args {
			C.free(unsafe.Pointer(slots[i]))
		}
	}()

	cres := C.lld_link(C.LldFlavor(flavor), C.int(len(args)), argv)
	defer C.link_free_result(&cres)

	res := Result{Success: bool(cres.success)}
	if cres.messages != nil {
		res.Messages = C.GoString(cres.messages)
	}
	return res
}

//go:build lld && lldfake

package lld

/*
int lld_fake_link_calls(void);
int lld_fake_free_calls(void);
void lld_fake_reset(void);
*/
import "C"

// fakeCounts reports how often the stand-in driver ran and how often its
// result was released since the last resetFakeCounts.
func fakeCounts() (calls, frees int) {
	return int(C.lld_fake_link_calls()), int(C.lld_fake_free_calls())
}

func resetFakeCounts() {
	C.lld_fake_reset()
}

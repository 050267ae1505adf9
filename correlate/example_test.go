package correlate_test

import (
	"fmt"

	"github.com/katalvlaran/gnssviz/correlate"
)

// ExampleAutocorrelate shows the linear profile of an alternating code.
func ExampleAutocorrelate() {
	profile := correlate.Autocorrelate([]int{1, -1, 1, -1})
	fmt.Println(len(profile), profile[3])
	// Output:
	// 7 1
}

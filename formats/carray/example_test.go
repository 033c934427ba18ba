// SPDX-License-Identifier: EPL-2.0

package carray_test

import (
	"fmt"
	"os"

	"github.com/ik5/pcmgen/formats/carray"
)

func ExampleWrite() {
	samples := []int16{0, 23170, 32767, 23170, 0, -23170, -32767, -23170}

	err := carray.Write(os.Stdout, samples, carray.Layout{
		Name:     "tone",
		Comments: []string{"8 samples of a 1000 Hz tone at 8000 Hz"},
	})
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// // 8 samples of a 1000 Hz tone at 8000 Hz
	//
	// #include <stdint.h>
	//
	// const int16_t tone[] = {
	//     0, 23170, 32767, 23170, 0, -23170, -32767, -23170
	// };
	//
	// const size_t tone_size = 8;
}

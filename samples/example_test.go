// SPDX-License-Identifier: MIT
package samples_test

import (
	"fmt"

	"github.com/katalvlaran/sptable/samples"
)

func ExampleCSV() {
	fmt.Print(samples.CSV(samples.Small()))
	// Output:
	// ,P1,P2,P3,P4,P5
	// S001,1,1,1,1,1
	// S002,1,1,1,1,0
	// S003,1,1,1,0,0
	// S004,1,1,0,0,0
	// S005,1,0,0,0,0
}

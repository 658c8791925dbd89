package env

import (
	"os"
)

func init() {
	// gorgonia.org/tensor refuses to start on Go releases it has not been verified against unless this is set.
	os.Setenv("ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH", "go1.24")
}

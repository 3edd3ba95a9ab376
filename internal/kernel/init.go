package kernel

import (
	_ "github.com/cwbudde/algo-fixed/internal/kernel/generic" // register generic backend
)

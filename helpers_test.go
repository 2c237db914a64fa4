package di_test

import (
	"github.com/sectrean/di-bench/internal/testutils"
)

var (
	LogError             = testutils.LogError
	ContextWithTestValue = testutils.ContextWithTestValue
)

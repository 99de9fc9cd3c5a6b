//go:build !debug

package joint

func assertf(truth bool, msg ...interface{}) {}

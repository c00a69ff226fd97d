package assert

import "github.com/picarlo/picarlo/perror"

// IsTrue panics with a *perror.Error built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(perror.New(message, args...))
	}
}

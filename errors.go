package sima

import "fmt"

// SError is the concrete error type for the root package. It fullfills the
// sima.Error interface. Record readers define their own richer types.
type SError struct {
	message string
	deco    []string
}

func (err SError) Error() string {
	return err.message
}

// Decorate adds the dec string to the decoration slice of strings of the error,
// and returns the resulting slice.
func (err SError) Decorate(dec string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(caller, format string, a ...interface{}) SError {
	return SError{message: fmt.Sprintf(format, a...), deco: []string{caller}}
}

// Package panicerr converts abnormal goroutine exits into error values.
package panicerr

import "runtime/debug"

// Recover runs f in a new goroutine, returning its error. Any panic, or call
// to runtime.Goexit, within f is instead returned as a non-nil error; the
// given name prefixes any such error.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		returned := false
		defer func() {
			if returned {
				return
			}
			// a nil recover() here means that f called runtime.Goexit
			if e := recover(); e != nil {
				errch <- panicError{name, e, debug.Stack()}
			} else {
				errch <- exitError(name)
			}
		}()
		err := f()
		returned = true
		errch <- err
	}()
	return <-errch
}

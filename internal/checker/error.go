package checker

import "fmt"

// TypeError is the single failure kind of the checker: a proof term
// whose shape does not fit the proposition required at some position.
// Expected and Found describe proposition shapes; Path locates the
// offending subterm from the root, e.g. "apply.fn".
type TypeError struct {
	Expected string
	Found    string
	Path     string
}

func (e *TypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type error: expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("type error at %s: expected %s, found %s", e.Path, e.Expected, e.Found)
}

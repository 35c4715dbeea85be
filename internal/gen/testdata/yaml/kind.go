package example

type MyErrorKind int

const (
	InvalidCommand MyErrorKind = iota
	InvalidArgument
	Forgotten
)

type MyError struct{ kind MyErrorKind }

func (e *MyError) Error() string { return "my error" }

func (e *MyError) Variant() MyErrorKind { return e.kind }

package valid

import "fmt"

// MyErrorKind classifies MyError.
//
//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status error=*MyError
type MyErrorKind int

const (
	//errinfo:variant code=IC app_code=400
	InvalidCommand MyErrorKind = iota
	//errinfo:variant code=IA app_code=400 client_msg="friendly msg"
	InvalidArgument
	// Upstream failures.
	//errinfo:variant code=UP app_code=502 client_msg="upstream said \"no\""
	UpstreamFailed
	//errinfo:variant code=NA
	NotAssigned
)

const retries = 3

const (
	alpha, beta = "a", "b"
)

type other int

const (
	//errinfo:variant code=ZZ
	otherValue other = iota
	_
)

// MyError is the error carrying a MyErrorKind.
type MyError struct {
	Kind MyErrorKind
	Arg  string
}

func (e *MyError) Error() string { return fmt.Sprintf("%d: %s", e.Kind, e.Arg) }

// Variant returns the kind.
func (e *MyError) Variant() MyErrorKind { return e.Kind }

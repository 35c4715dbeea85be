package noenum

//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status
type Kind int

var First Kind = 1

func (k Kind) Error() string { return "kind" }

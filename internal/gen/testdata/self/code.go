package self

// Code is both the enum and the error.
//
//errinfo:taxonomy prefix=ST- app_type=dirpx.dev/errinfo/rpccode.Code
type Code uint8

const (
	//errinfo:variant code=404 app_code=NOT_FOUND client_msg="no such object"
	Missing = Code(iota + 1)
	//errinfo:variant code=503 app_code=14
	Busy
)

func (c Code) Error() string { return "storage error" }

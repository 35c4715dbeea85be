package broken

//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status error=*Failure
type Kind int

const (
	//errinfo:variant code=AA app_code=400
	First Kind = iota
	Second
	//errinfo:variant code=CC app_code=400 severity=high
	Third
	//errinfo:variant code=DD client_msg="unterminated
	Fourth
)

type Failure struct{ k Kind }

func (f *Failure) Error() string { return "failure" }

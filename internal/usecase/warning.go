package usecase

// Warning is the diagnostic record attached to degraded responses: the call
// succeeded, but a fallback data path produced the result.
type Warning struct {
	Msg    string `json:"msg"`
	Status *int   `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func newWarning(msg, detail string) *Warning {
	return &Warning{Msg: msg, Detail: detail}
}

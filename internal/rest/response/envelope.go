package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// ServerErrorMessage is the only message a 5xx response ever carries.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

func SuccessMessage(message string) Envelope {
	return Envelope{Status: StatusSuccess, Message: message}
}

func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

func ServerError() Envelope {
	return Envelope{Status: StatusError, Message: ServerErrorMessage}
}

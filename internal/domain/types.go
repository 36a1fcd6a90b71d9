package domain

// Status is the estado column shared by schedule and sales rows.
type Status string

const (
	StatusActive    Status = "ACTIVO"
	StatusCancelled Status = "CANCELADO"
)

// NoticeType is the category of a transient user notice.
type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeWarning NoticeType = "warning"
)

// Notice is a short auto-dismissing message for the operator.
type Notice struct {
	Type    NoticeType `json:"type"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

func (n Notice) IsZero() bool { return n.Type == "" }

func Success(title, msg string) Notice { return Notice{Type: NoticeSuccess, Title: title, Message: msg} }
func Failure(title, msg string) Notice { return Notice{Type: NoticeError, Title: title, Message: msg} }
func Warning(title, msg string) Notice { return Notice{Type: NoticeWarning, Title: title, Message: msg} }

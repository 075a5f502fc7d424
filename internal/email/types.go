package email

// Email is a plain-text outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Provider sends outbound mail. Failures are reported to the caller; there is
// no retry layer.
type Provider interface {
	Send(msg *Email) error
}

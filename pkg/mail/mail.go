package mail

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender submits a single message to an SMTP relay.
type Sender interface {
	Send(msg Message) error
	Host() string
	Port() int
}

type sender struct {
	dialer *gomail.Dialer
	log    *zap.SugaredLogger
}

// NewSender builds a Sender that authenticates against host:port with the
// given credentials. Port 465 uses implicit TLS; other ports negotiate
// STARTTLS through the dialer's defaults.
func NewSender(host string, port int, user, password string, log *zap.SugaredLogger) Sender {
	log.Debugw("initializing mail sender", "host", host, "port", port, "user", user)
	d := gomail.NewDialer(host, port, user, password)
	d.SSL = port == 465
	return &sender{dialer: d, log: log}
}

func (s *sender) Send(msg Message) error {
	s.log.Debugw("sending mail", "to", msg.To, "subject", msg.Subject, "host", s.Host())
	if err := s.dialer.DialAndSend(msg.wire()); err != nil {
		s.log.Debugw("mail send failed", "error", err)
		return err
	}
	s.log.Debugw("mail sent", "to", msg.To)
	return nil
}

func (s *sender) Host() string {
	return s.dialer.Host
}

func (s *sender) Port() int {
	return s.dialer.Port
}

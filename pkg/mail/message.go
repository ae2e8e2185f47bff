package mail

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Message is one outgoing plain-text mail. It exists only for the duration
// of a single send attempt.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	Body     string
}

func (m Message) wire() *gomail.Message {
	msg := gomail.NewMessage()
	if m.FromName != "" {
		msg.SetAddressHeader("From", m.From, m.FromName)
	} else {
		msg.SetHeader("From", m.From)
	}
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), addressDomain(m.From)))
	msg.SetBody("text/plain", m.Body)
	return msg
}

// WriteTo renders the message in wire format without sending it.
func (m Message) WriteTo(w io.Writer) (int64, error) {
	return m.wire().WriteTo(w)
}

func addressDomain(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}

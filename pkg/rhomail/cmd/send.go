package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runrho/rhomail/pkg/mail"
	"github.com/runrho/rhomail/pkg/rhomail/config"
)

var (
	errUsage         = errors.New("missing handle argument")
	errConfiguration = errors.New("missing mail credentials")
)

const appPasswordHint = "Generate an app password at: https://myaccount.google.com/apppasswords"

func runSend(cmd *cobra.Command, args []string) error {
	rt, err := getRuntime(cmd)
	if err != nil {
		return err
	}
	w := rt.Writer()

	if len(args) < 1 || args[0] == "" {
		fmt.Fprintln(w, "Usage: rhomail <handle> [subject] [body]")
		return errUsage
	}
	handle := args[0]
	subject := config.DefaultSubject
	if len(args) > 1 {
		subject = args[1]
	}
	body := config.DefaultBody
	if len(args) > 2 {
		body = args[2]
	}

	user := os.Getenv("GMAIL_USER")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	if user == "" || password == "" {
		fmt.Fprintln(w, "ERROR: Set GMAIL_USER and GMAIL_APP_PASSWORD environment variables")
		fmt.Fprintln(w, appPasswordHint)
		return errConfiguration
	}

	msg := mail.Message{
		From:     user,
		FromName: rt.cfg.SenderName,
		To:       rt.cfg.RecipientAddress(handle),
		Subject:  subject,
		Body:     body,
	}

	if rt.dryRun {
		rt.log.Debugw("dry run, not sending", "to", msg.To)
		if _, err := msg.WriteTo(w); err != nil {
			fmt.Fprintf(w, "ERROR: %v\n", err)
			return err
		}
		return nil
	}

	sender := rt.newSender(rt.cfg, user, password, rt.log)
	if err := sender.Send(msg); err != nil {
		fmt.Fprintf(w, "ERROR: %v\n", err)
		return err
	}

	fmt.Fprintf(w, "Sent to %s: %s\n", msg.To, subject)
	return nil
}

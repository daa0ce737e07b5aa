package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendContactEmail transmet un message du formulaire de contact à la boutique
func SendContactEmail(name, phone, from, message string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(os.Getenv("CONTACT_EMAIL")); err != nil {
		return err
	}
	if err := msg.ReplyTo(from); err != nil {
		return err
	}

	msg.Subject("Nouveau message du formulaire de contact")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Nom: %s\nTéléphone: %s\nEmail: %s\n\n%s\n", name, phone, from, message))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du message de contact de", from)
	return client.DialAndSend(msg)
}

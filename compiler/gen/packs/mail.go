package packs

import "github.com/JNZader/apigen-sub011/compiler/gen"

// Mail emits an SMTP mail sender configured from the environment.
type Mail struct{}

// Feature returns the gating flag.
func (Mail) Feature() gen.Feature { return gen.FeatureMail }

// Generate returns the pack files for the config's target.
func (Mail) Generate(c *gen.Config) (*gen.FileMap, error) {
	fm := gen.NewFileMap()
	d := newPackData(c)
	switch c.Target {
	case "kotlin":
		if err := render(fm, mailKotlinTmpl, "src/main/kotlin/"+d.NsDir+"/mail/MailService.kt", d); err != nil {
			return nil, err
		}
	case "dotnet":
		if err := render(fm, mailDotnetTmpl, "Mail/MailService.cs", d); err != nil {
			return nil, err
		}
	case "go":
		if err := render(fm, mailGoTmpl, "internal/mail/mail.go", d); err != nil {
			return nil, err
		}
	}
	return fm, nil
}

var mailKotlinTmpl = parse("mail-kotlin", `package {{.Namespace}}.mail

import org.springframework.mail.SimpleMailMessage
import org.springframework.mail.javamail.JavaMailSender
import org.springframework.stereotype.Service

@Service
class MailService(private val sender: JavaMailSender) {

    fun send(to: String, subject: String, body: String) {
        val message = SimpleMailMessage()
        message.setTo(to)
        message.subject = subject
        message.text = body
        sender.send(message)
    }
}
`)

var mailDotnetTmpl = parse("mail-dotnet", `using System.Net;
using System.Net.Mail;

namespace {{.Namespace}}.Mail;

public class MailService(IConfiguration configuration)
{
    public async Task SendAsync(string to, string subject, string body)
    {
        using var client = new SmtpClient(configuration["Smtp:Host"] ?? "localhost")
        {
            Port = int.Parse(configuration["Smtp:Port"] ?? "25"),
            Credentials = new NetworkCredential(configuration["Smtp:User"], configuration["Smtp:Password"]),
        };
        await client.SendMailAsync(new MailMessage(configuration["Smtp:From"] ?? "noreply@{{.Project}}", to, subject, body));
    }
}
`)

var mailGoTmpl = parse("mail-go", `// Code generated by apigen. DO NOT EDIT.

// Package mail sends plain text mail over SMTP.
package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"os"
)

// Send delivers a plain text message through the SMTP host named by
// SMTP_ADDR, authenticating with SMTP_USER and SMTP_PASSWORD.
func Send(to, subject, body string) error {
	addr := os.Getenv("SMTP_ADDR")
	if addr == "" {
		addr = "localhost:25"
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@{{.Project}}"
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body)
	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		host, _, _ := net.SplitHostPort(addr)
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)
	}
	return smtp.SendMail(addr, auth, from, []string{to}, []byte(msg))
}
`)

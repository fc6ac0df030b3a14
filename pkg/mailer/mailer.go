// Package mailer delivers reminder emails over SMTP. It is the concrete
// notification sink behind service.MailerI.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/limbo/leetsquad/internal/service"
	"github.com/wneessen/go-mail"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>{{.GroupName}}</h2>
  <p>No problems solved today yet. Your group is waiting for you!</p>
  <h3>Today's leaderboard</h3>
  <ol>
  {{range .Ranking}}
    <li>{{.User.Name}}{{if .User.LeetcodeUsername}} (@{{.User.LeetcodeUsername}}){{end}} &mdash; {{.SolvedCount}} solved</li>
  {{else}}
    <li>Nobody has reported yet. Be the first!</li>
  {{end}}
  </ol>
  <p>{{.ActiveToday}} of {{.TotalMembers}} members already reported today.</p>
  <p><a href="https://leetcode.com/problemset/">Start solving</a></p>
  <p style="color: #666; font-size: 12px;">You can turn these reminders off in your notification preferences.</p>
</div>`))

type SMTPCfg struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	client *mail.Client
	from   string
}

func New(cfg *SMTPCfg) *Mailer {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		log.Fatal("creating smtp client error: " + err.Error())
	}
	return &Mailer{
		client: client,
		from:   cfg.From,
	}
}

func (m *Mailer) SendReminder(ctx context.Context, to string, data *service.ReminderEmail) error {
	var body strings.Builder
	if err := reminderTmpl.Execute(&body, data); err != nil {
		return errors.New("rendering reminder body error: " + err.Error())
	}
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.New("setting sender error: " + err.Error())
	}
	if err := msg.To(to); err != nil {
		return errors.New("setting recipient error: " + err.Error())
	}
	msg.Subject(fmt.Sprintf("%s - daily problem reminder", data.GroupName))
	msg.SetBodyString(mail.TypeTextHTML, body.String())
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.New("sending reminder error: " + err.Error())
	}
	return nil
}

package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"text/template"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/erro"
	"github.com/fredymanu76/lms-platform-sub001/internal/metrics"
	"github.com/fredymanu76/lms-platform-sub001/internal/model"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const timeLayout = "Mon, 02 Jan 2006 15:04 MST"

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	addr      string
	from      string
	auth      smtp.Auth
	send      sendFunc
	templates *template.Template
	logger    *zap.Logger
}

type emailData struct {
	Recipient   *model.UserProfile
	Counterpart *model.UserProfile
	Role        string
	Session     *model.Session
	Start       string
	End         string
}

func NewSMTPMailer(config configs.SMTPConfig, logger *zap.Logger) (*SMTPMailer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	m := &SMTPMailer{
		addr:      net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
		from:      config.From,
		send:      smtp.SendMail,
		templates: templates,
		logger:    logger,
	}
	if config.Username != "" {
		m.auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return m, nil
}

// SendSessionEmail mails every participant that has an address on file.
func (m *SMTPMailer) SendSessionEmail(ctx context.Context, event *model.SessionEvent) error {
	session := event.Session
	recipients := []struct {
		role              string
		self, counterpart *model.UserProfile
	}{
		{"instructor", session.Instructor, session.Student},
		{"student", session.Student, session.Instructor},
	}
	for _, r := range recipients {
		if r.self == nil || r.self.Email == "" {
			m.logger.Warn("Participant without email address", zap.String("session", session.Id.String()), zap.String("role", r.role))
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		counterpart := r.counterpart
		if counterpart == nil {
			counterpart = &model.UserProfile{}
		}
		msg, err := m.render(event.Type, emailData{Recipient: r.self, Counterpart: counterpart, Role: r.role, Session: session})
		if err != nil {
			metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "render_failed").Inc()
			return err
		}
		if err = m.send(m.addr, m.auth, m.from, []string{r.self.Email}, msg); err != nil {
			metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "mail_failed").Inc()
			return err
		}
		metrics.ClassroomNotificationsTotal.WithLabelValues(event.Type, "mailed").Inc()
	}
	return nil
}

// render builds the full RFC 5322 message for one recipient.
func (m *SMTPMailer) render(eventType string, data emailData) ([]byte, error) {
	data.Start = data.Session.StartTime.UTC().Format(timeLayout)
	data.End = data.Session.EndTime.UTC().Format(timeLayout)
	var subject, body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&subject, eventType+"/subject", data); err != nil {
		return nil, fmt.Errorf(erro.ErrorRenderEmail, err)
	}
	if err := m.templates.ExecuteTemplate(&body, eventType+"/body", data); err != nil {
		return nil, fmt.Errorf(erro.ErrorRenderEmail, err)
	}
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", data.Recipient.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject.String())
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}

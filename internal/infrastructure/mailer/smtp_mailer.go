package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/leads"
	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain/entity"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/config"
)

// Verificar en tiempo de compilación que SMTPMailer implementa Mailer.
var _ leads.Mailer = (*SMTPMailer)(nil)

// SMTPMailer despacha las dos notificaciones de una solicitud por SMTP.
// Cada envío es independiente; el pipeline decide qué hacer con las fallas.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	adminTo string
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		adminTo: cfg.AdminTo,
	}
}

var adminTemplate = template.Must(template.New("admin").Parse(`
<h2>Nueva solicitud de {{.TipoLegible}}</h2>
<table cellpadding="4">
  <tr><td><b>Nombre</b></td><td>{{.S.Nombre}}</td></tr>
  <tr><td><b>Email</b></td><td>{{.S.Email}}</td></tr>
  {{if .S.Telefono}}<tr><td><b>Teléfono</b></td><td>{{.S.Telefono}}</td></tr>{{end}}
  {{if .S.TipoServicio}}<tr><td><b>Servicio</b></td><td>{{.S.TipoServicio}}</td></tr>{{end}}
  {{if .S.Presupuesto}}<tr><td><b>Presupuesto</b></td><td>{{.S.Presupuesto}}</td></tr>{{end}}
  {{if .FechaInicio}}<tr><td><b>Fecha de inicio</b></td><td>{{.FechaInicio}}</td></tr>{{end}}
  <tr><td><b>Mensaje</b></td><td>{{.S.Mensaje}}</td></tr>
  <tr><td><b>IP</b></td><td>{{.S.IPOrigen}}</td></tr>
  <tr><td><b>Puntaje spam</b></td><td>{{printf "%.2f" .S.PuntajeSpam}}</td></tr>
</table>
`))

var ackTemplate = template.Must(template.New("ack").Parse(`
<p>Hola {{.S.Nombre}},</p>
<p>Recibimos tu solicitud de {{.TipoLegible}} y la revisaremos en breve.
Te responderemos al correo {{.S.Email}}.</p>
<p>Gracias por contactarnos.</p>
`))

type mailData struct {
	S           *entity.Solicitud
	TipoLegible string
	FechaInicio string
}

func newMailData(s *entity.Solicitud) mailData {
	d := mailData{S: s, TipoLegible: "contacto"}
	if s.Tipo == entity.TipoCotizacion {
		d.TipoLegible = "cotización"
	}
	if s.FechaInicio != nil {
		d.FechaInicio = s.FechaInicio.Format("2006-01-02")
	}
	return d
}

// SendAdminNotification envía el detalle completo al correo interno configurado.
func (m *SMTPMailer) SendAdminNotification(s *entity.Solicitud) error {
	if m.adminTo == "" {
		return fmt.Errorf("mailer: SMTP_ADMIN_TO no configurado")
	}
	data := newMailData(s)
	var body bytes.Buffer
	if err := adminTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("mailer: render notificación interna: %w", err)
	}
	subject := fmt.Sprintf("[%s] %s — %s", data.TipoLegible, s.Nombre, s.CreatedAt.Format(time.DateOnly))
	return m.send(m.adminTo, subject, body.String())
}

// SendAcknowledgment envía la confirmación al remitente de la solicitud.
func (m *SMTPMailer) SendAcknowledgment(s *entity.Solicitud) error {
	data := newMailData(s)
	var body bytes.Buffer
	if err := ackTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("mailer: render confirmación: %w", err)
	}
	return m.send(s.Email, "Recibimos tu solicitud", body.String())
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	return nil
}

package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

type BookingConfirmationData struct {
	To          string
	GuestName   string
	Code        string
	Title       string // room or event name
	When        string
	Quantity    int
	TotalAmount float64
}

type CertificateMailData struct {
	To     string
	Name   string
	Code   string
	Amount float64
	PNG    []byte
}

// SMTPMailer sends booking confirmations through gomail and certificates through
// jordan-wright/email. A zero Host disables sending.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var bookingTemplate = template.Must(template.New("booking").Parse(`<h2>Booking confirmed</h2>
<p>Hi {{.GuestName}},</p>
<p>Your booking <b>{{.Code}}</b> for <b>{{.Title}}</b> ({{.When}}) is confirmed.</p>
<p>Quantity: {{.Quantity}}<br>Total: {{printf "%.2f" .TotalAmount}}</p>
<p>Show the attached QR code at arrival.</p>`))

func (m SMTPMailer) Enabled() bool {
	return m.Host != ""
}

// SendBookingConfirmation renders the mail and sends it in the background.
func (m SMTPMailer) SendBookingConfirmation(data BookingConfirmationData) {
	if !m.Enabled() || data.To == "" {
		return
	}
	go func() {
		var body bytes.Buffer
		if err := bookingTemplate.Execute(&body, data); err != nil {
			log.Printf("booking mail render failed: %v", err)
			return
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.From)
		msg.SetHeader("To", data.To)
		msg.SetHeader("Subject", "Booking confirmation #"+data.Code)
		msg.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(data.Code, 256)
		if err != nil {
			log.Printf("booking QR for %s failed: %v", data.Code, err)
		} else {
			filename := fmt.Sprintf("booking_%s.png", data.Code)
			msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qrBytes))
				return err
			}))
		}

		d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
		if err := d.DialAndSend(msg); err != nil {
			log.Printf("booking mail to %s failed: %v", data.To, err)
			return
		}
		log.Printf("booking confirmation %s sent to %s", data.Code, data.To)
	}()
}

// SendCertificate mails the carbon offset certificate PNG in the background.
func (m SMTPMailer) SendCertificate(data CertificateMailData) {
	if !m.Enabled() || data.To == "" {
		return
	}
	go func() {
		e := email.NewEmail()
		e.From = m.From
		e.To = []string{data.To}
		e.Subject = "Your carbon offset certificate " + data.Code
		e.Text = []byte(fmt.Sprintf("Thank you %s for offsetting %.2f kg of CO2.", data.Name, data.Amount))
		if _, err := e.Attach(bytes.NewReader(data.PNG), "certificate_"+data.Code+".png", "image/png"); err != nil {
			log.Printf("certificate attach failed: %v", err)
			return
		}

		addr := m.Host + ":" + strconv.Itoa(m.Port)
		auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
		if err := e.Send(addr, auth); err != nil {
			log.Printf("certificate mail to %s failed: %v", data.To, err)
			return
		}
		log.Printf("certificate %s sent to %s", data.Code, data.To)
	}()
}

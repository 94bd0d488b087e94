// Package notify composes outbound message text for appointment and report
// records. Composition is pure string building over the record; turning the
// result into a WhatsApp deep link and opening it belongs to the caller.
package notify

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mrhealth/nutrition-platform/internal/catalog"
	"github.com/mrhealth/nutrition-platform/internal/records"
)

const signOff = "MrHealth Nutrition Centre"

// GeneralConsultation is the display fallback when a booking carries no
// services.
const GeneralConsultation = "General Consultation"

const appointmentTemplate = `To: {{.Name}}
Date: {{.Date}}
Service: {{.ServiceList}}

Dear {{.Name}},

This is to confirm your appointment scheduled for {{.Date}}, regarding your {{.Program}} program. Please ensure you arrive on time and bring any necessary documents or prior medical records for a smoother consultation.

If you have any questions or need to reschedule, feel free to contact us in advance.

Best regards,
` + signOff

const reportTemplate = `Health Report for {{.Name}}:
BMI: {{.BMI}}
BMR: {{.BMR}} kcal/day
Body Fat Percentage: {{.BodyFat}}%
Ideal Weight: {{.IdealWeight}} kg
Status: {{.WeightStatus}}

Dear {{.Name}},

Please find your health report above. If you have any questions or need further assistance, feel free to reach out.

Best regards,
` + signOff

// Message is a composed outbound message: a target contact handle and the
// text body. Nothing is sent here.
type Message struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Composer builds outbound message bodies from records.
type Composer struct {
	renderer renderer
}

// NewComposer creates a composer.
func NewComposer() Composer {
	return Composer{}
}

// AppointmentConfirmation composes the booking confirmation addressed to the
// appointment's contact number. Service ids are resolved to display titles
// against the given catalog; an empty service set falls back to
// "General Consultation".
func (c Composer) AppointmentConfirmation(appt *records.Appointment, services []catalog.Service) (Message, error) {
	titles := catalog.Titles(services, appt.Services)
	serviceList := strings.Join(titles, ", ")
	program := serviceList
	if serviceList == "" {
		serviceList = GeneralConsultation
		program = "consultation"
	}

	body, err := c.renderer.render("appointment_confirmation", appointmentTemplate, map[string]string{
		"Name":        appt.Name,
		"Date":        appt.Date,
		"ServiceList": serviceList,
		"Program":     program,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: appt.Number, Body: body}, nil
}

// ReportSummary composes the health report summary addressed to the
// report's phone number. Metrics left undefined by the engine render as
// "N/A".
func (c Composer) ReportSummary(rep *records.Report) (Message, error) {
	body, err := c.renderer.render("report_summary", reportTemplate, map[string]string{
		"Name":         rep.Name,
		"BMI":          formatMetric(rep.BMI),
		"BMR":          formatMetric(rep.BMR),
		"BodyFat":      formatMetric(rep.BodyFat),
		"IdealWeight":  formatMetric(rep.IdealWeight),
		"WeightStatus": rep.WeightStatus,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{To: rep.PhoneNumber, Body: body}, nil
}

// WhatsAppLink builds the messaging deep link for a composed message:
// https://<host>/<handle>?text=<url-encoded body>.
func WhatsAppLink(host string, msg Message) string {
	encoded := strings.ReplaceAll(url.QueryEscape(msg.Body), "+", "%20")
	return "https://" + host + "/" + msg.To + "?text=" + encoded
}

func formatMetric(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/VICTORTBK/Portfolio/clipboard"
	"github.com/VICTORTBK/Portfolio/content"
	"github.com/VICTORTBK/Portfolio/log"
)

var validate = validator.New()

// contactSubmission is validated before anything leaves the form.
type contactSubmission struct {
	Name    string `validate:"required,min=2,max=80"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10,max=2000"`
}

type mailResultMsg struct {
	delivered bool
	err       error
}

type contactField int

const (
	fieldName contactField = iota
	fieldEmail
	fieldMessage
)

type contactModel struct {
	info    content.Contact
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   contactField
	errs    map[contactField]string
	status  string
	sending bool
}

func newContactModel(info content.Contact) contactModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120

	message := textarea.New()
	message.Placeholder = "What would you like to say?"
	message.CharLimit = 2000
	message.SetHeight(6)

	return contactModel{
		info:    info,
		name:    name,
		email:   email,
		message: message,
		errs:    map[contactField]string{},
	}
}

func (m contactModel) Update(msg tea.Msg) (contactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			if msg.String() == "down" && m.focus == fieldMessage {
				break // let the textarea handle cursor movement
			}
			m.setFocus((m.focus + 1) % 3)
			return m, nil
		case "shift+tab", "up":
			if msg.String() == "up" && m.focus == fieldMessage {
				break
			}
			m.setFocus((m.focus + 2) % 3)
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "ctrl+y":
			if clipboard.Available() && m.info.Email != "" {
				if err := clipboard.Copy(m.info.Email); err == nil {
					m.status = "email address copied"
				}
			}
			return m, nil
		}

	case mailResultMsg:
		m.sending = false
		switch {
		case msg.err != nil:
			m.status = "delivery failed; your message was logged locally"
		case msg.delivered:
			m.status = "message sent, thank you!"
			m.clear()
		default:
			m.status = "message logged (mail delivery not configured)"
			m.clear()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *contactModel) setFocus(f contactField) {
	m.focus = f
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch f {
	case fieldName:
		m.name.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldMessage:
		m.message.Focus()
	}
}

func (m *contactModel) clear() {
	m.name.SetValue("")
	m.email.SetValue("")
	m.message.SetValue("")
	m.errs = map[contactField]string{}
	m.setFocus(fieldName)
}

func (m contactModel) submit() (contactModel, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	sub := contactSubmission{
		Name:    strings.TrimSpace(m.name.Value()),
		Email:   strings.TrimSpace(m.email.Value()),
		Message: strings.TrimSpace(m.message.Value()),
	}
	m.errs = validateSubmission(sub)
	if len(m.errs) > 0 {
		m.status = "please fix the highlighted fields"
		return m, nil
	}
	m.sending = true
	m.status = "sending..."
	return m, deliverContact(sub, m.info.Email)
}

// validateSubmission maps validator failures to short per-field messages.
func validateSubmission(sub contactSubmission) map[contactField]string {
	errs := map[contactField]string{}
	err := validate.Struct(sub)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	ok := false
	if verrs, ok = err.(validator.ValidationErrors); !ok {
		errs[fieldName] = "invalid input"
		return errs
	}
	for _, e := range verrs {
		switch e.Field() {
		case "Name":
			if e.Tag() == "required" {
				errs[fieldName] = "name is required"
			} else {
				errs[fieldName] = "name must be 2-80 characters"
			}
		case "Email":
			if e.Tag() == "required" {
				errs[fieldEmail] = "email is required"
			} else {
				errs[fieldEmail] = "not a valid email address"
			}
		case "Message":
			if e.Tag() == "required" {
				errs[fieldMessage] = "message is required"
			} else {
				errs[fieldMessage] = "message must be 10-2000 characters"
			}
		}
	}
	return errs
}

// deliverContact mails the submission when SMTP is configured, otherwise
// just records it. Either way the message ends up in the local log.
func deliverContact(sub contactSubmission, defaultTo string) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := loadMailConfig(defaultTo)
		if !ok {
			log.ContactMessage(sub.Name, sub.Email, "logged")
			return mailResultMsg{delivered: false}
		}
		if err := sendContactEmail(cfg, sub.Name, sub.Email, sub.Message); err != nil {
			log.Errorf("contact delivery: %v", err)
			log.ContactMessage(sub.Name, sub.Email, "failed")
			return mailResultMsg{err: err}
		}
		log.ContactMessage(sub.Name, sub.Email, "sent")
		return mailResultMsg{delivered: true}
	}
}

func (m contactModel) View(width int) string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	var b strings.Builder
	b.WriteString(label.Render("Name") + "\n")
	b.WriteString(m.name.View() + "\n")
	if e := m.errs[fieldName]; e != "" {
		b.WriteString(errStyle.Render("  "+e) + "\n")
	}
	b.WriteString("\n" + label.Render("Email") + "\n")
	b.WriteString(m.email.View() + "\n")
	if e := m.errs[fieldEmail]; e != "" {
		b.WriteString(errStyle.Render("  "+e) + "\n")
	}
	b.WriteString("\n" + label.Render("Message") + "\n")
	b.WriteString(m.message.View() + "\n")
	if e := m.errs[fieldMessage]; e != "" {
		b.WriteString(errStyle.Render("  "+e) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := "tab next field · ctrl+s send"
	if m.info.Email != "" {
		help += fmt.Sprintf(" · ctrl+y copy %s", m.info.Email)
	}
	b.WriteString("\n" + label.Render(help))

	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

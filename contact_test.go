package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VICTORTBK/Portfolio/content"
)

func validTestSubmission() contactSubmission {
	return contactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I enjoyed reading about your terminal projects.",
	}
}

func TestValidateSubmissionAccepts(t *testing.T) {
	errs := validateSubmission(validTestSubmission())
	assert.Empty(t, errs)
}

func TestValidateSubmissionRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*contactSubmission)
		field  contactField
		want   string
	}{
		{"missing name", func(s *contactSubmission) { s.Name = "" }, fieldName, "name is required"},
		{"short name", func(s *contactSubmission) { s.Name = "A" }, fieldName, "name must be 2-80 characters"},
		{"missing email", func(s *contactSubmission) { s.Email = "" }, fieldEmail, "email is required"},
		{"bad email", func(s *contactSubmission) { s.Email = "not-an-email" }, fieldEmail, "not a valid email address"},
		{"missing message", func(s *contactSubmission) { s.Message = "" }, fieldMessage, "message is required"},
		{"short message", func(s *contactSubmission) { s.Message = "hi" }, fieldMessage, "message must be 10-2000 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validTestSubmission()
			tc.mutate(&sub)
			errs := validateSubmission(sub)
			require.NotEmpty(t, errs)
			assert.Equal(t, tc.want, errs[tc.field])
		})
	}
}

func TestContactFocusCycle(t *testing.T) {
	m := newContactModel(content.Default().Contact)
	require.Equal(t, fieldName, m.focus)

	tab := tea.KeyMsg{Type: tea.KeyTab}
	m, _ = m.Update(tab)
	assert.Equal(t, fieldEmail, m.focus)
	m, _ = m.Update(tab)
	assert.Equal(t, fieldMessage, m.focus)
	m, _ = m.Update(tab)
	assert.Equal(t, fieldName, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldMessage, m.focus)
}

func TestContactSubmitBlocksInvalid(t *testing.T) {
	m := newContactModel(content.Default().Contact)

	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.False(t, m.sending)
	assert.NotEmpty(t, m.errs)
	assert.Contains(t, m.status, "fix")
}

func TestContactSubmitValid(t *testing.T) {
	m := newContactModel(content.Default().Contact)
	m.name.SetValue("Ada Lovelace")
	m.email.SetValue("ada@example.com")
	m.message.SetValue("I enjoyed reading about your terminal projects.")

	m, cmd := m.submit()
	assert.NotNil(t, cmd)
	assert.True(t, m.sending)
	assert.Empty(t, m.errs)
}

func TestContactMailResultClearsForm(t *testing.T) {
	m := newContactModel(content.Default().Contact)
	m.name.SetValue("Ada Lovelace")
	m.sending = true

	m, _ = m.Update(mailResultMsg{delivered: true})
	assert.False(t, m.sending)
	assert.Empty(t, m.name.Value())
	assert.Contains(t, m.status, "sent")
}

func TestLoadMailConfigDefaults(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")
	t.Setenv("TO_EMAIL", "")

	cfg, ok := loadMailConfig("owner@example.com")
	assert.False(t, ok)
	assert.Equal(t, "smtp.gmail.com", cfg.host)
	assert.Equal(t, "587", cfg.port)
	assert.Equal(t, "owner@example.com", cfg.to)
}

func TestLoadMailConfigConfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("SMTP_PASS", "hunter2")
	t.Setenv("TO_EMAIL", "inbox@example.com")

	cfg, ok := loadMailConfig("owner@example.com")
	require.True(t, ok)
	assert.Equal(t, "mail.example.com", cfg.host)
	assert.Equal(t, "2525", cfg.port)
	assert.Equal(t, "inbox@example.com", cfg.to)
}

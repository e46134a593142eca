package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFormPasswordsMustMatch(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{}}
	f := NewAccountRegisterForm(dir)
	f.Bind(url.Values{
		"email":           {"new@example.com"},
		"password_first":  {"secret"},
		"password_second": {"different"},
	})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"Passwords do not match"}, f.ErrorsFor("password_second"))
	assert.Empty(t, f.ErrorsFor("password_first"))
}

func TestRegisterFormNoMatchCheckOnMissingPassword(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{}}
	f := NewAccountRegisterForm(dir)
	f.Bind(url.Values{
		"email":          {"new@example.com"},
		"password_first": {"secret"},
	})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"This field is required."}, f.ErrorsFor("password_second"))
}

func TestRegisterFormEmailTaken(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{"taken@example.com": true}}
	f := NewAccountRegisterForm(dir)
	f.Bind(url.Values{
		"email":           {"taken@example.com"},
		"password_first":  {"secret"},
		"password_second": {"secret"},
	})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"This email is already registered"}, f.ErrorsFor("email"))
}

func TestRegisterFormValid(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{}}
	f := NewAccountRegisterForm(dir)
	f.Bind(url.Values{
		"email":           {"new@example.com"},
		"password_first":  {"secret"},
		"password_second": {"secret"},
	})

	assert.True(t, f.IsValid())
	assert.Equal(t, "new@example.com", f.Cleaned("email"))
}

func TestUserRegistrationFormEmployeeChoice(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{}}

	f := NewUserRegistrationForm(dir)
	f.Bind(url.Values{
		"email":           {"tech@example.com"},
		"password_first":  {"secret"},
		"password_second": {"secret"},
		"employee":        {"janitor"},
	})
	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"Select a valid choice."}, f.ErrorsFor("employee"))

	f = NewUserRegistrationForm(dir)
	f.Bind(url.Values{
		"email":           {"tech@example.com"},
		"password_first":  {"secret"},
		"password_second": {"secret"},
		"employee":        {"technician"},
	})
	assert.True(t, f.IsValid())
	assert.Equal(t, "technician", f.Cleaned("employee"))
}

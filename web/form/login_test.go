package form

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeDirectory matches the store contract: exact, case-insensitive.
type fakeDirectory struct {
	emails map[string]bool
	err    error
}

func (d *fakeDirectory) EmailExists(email string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.emails[strings.ToLower(email)], nil
}

type fakeAuth struct {
	email    string
	password string
}

func (a *fakeAuth) CheckCredentials(email, password, twoFactorCode string) bool {
	return email == a.email && password == a.password
}

func TestLoginFormUnknownEmail(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{}}
	f := NewLoginForm(dir, &fakeAuth{})
	f.Bind(url.Values{"email": {"nobody@example.com"}, "password": {"secret"}})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"This email does not exist"}, f.ErrorsFor("email"))
	assert.Empty(t, f.ErrorsFor("password"))
}

func TestLoginFormWrongPassword(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{"admin@example.com": true}}
	auth := &fakeAuth{email: "admin@example.com", password: "secret"}
	f := NewLoginForm(dir, auth)
	f.Bind(url.Values{"email": {"admin@example.com"}, "password": {"wrong"}})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"Incorrect password"}, f.ErrorsFor("password"))
	assert.False(t, f.HasCleaned("password"))
}

func TestLoginFormSuccess(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{"admin@example.com": true}}
	auth := &fakeAuth{email: "admin@example.com", password: "secret"}
	f := NewLoginForm(dir, auth)
	f.Bind(url.Values{"email": {"Admin@Example.com"}, "password": {"secret"}})

	assert.True(t, f.IsValid())
}

func TestLoginFormSkipsCleanStepOnFieldError(t *testing.T) {
	dir := &fakeDirectory{emails: map[string]bool{"admin@example.com": true}}
	auth := &fakeAuth{email: "admin@example.com", password: "secret"}
	f := NewLoginForm(dir, auth)
	f.Bind(url.Values{"email": {"admin@example.com"}})

	assert.False(t, f.IsValid())
	// the missing password already failed, the credential check must not
	// stack a second error on top
	assert.Equal(t, []string{"This field is required."}, f.ErrorsFor("password"))
}

func TestLoginFormDirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("db closed")}
	f := NewLoginForm(dir, &fakeAuth{})
	f.Bind(url.Values{"email": {"admin@example.com"}, "password": {"secret"}})

	assert.False(t, f.IsValid())
	assert.Equal(t, []string{"Unable to verify this email right now"}, f.ErrorsFor("email"))
}

package form

import "strings"

// CredentialChecker verifies a credential pair (and optional second factor)
// against the auth store.
type CredentialChecker interface {
	CheckCredentials(email, password, twoFactorCode string) bool
}

// LoginForm authenticates an existing account. The clean step verifies the
// password against the auth store once both fields passed their own checks.
type LoginForm struct {
	*BasicForm
	auth CredentialChecker
}

func NewLoginForm(dir EmailDirectory, auth CredentialChecker) *LoginForm {
	email := &Field{
		Name:       "email",
		Label:      "Email",
		Type:       TypeEmail,
		Required:   true,
		MaxLength:  50,
		Validators: []Validator{ValidateEmailExists(dir)},
	}
	SetupField(email, "Enter email here")

	password := &Field{
		Name:      "password",
		Label:     "Password",
		Type:      TypePassword,
		Required:  true,
		MaxLength: 50,
	}
	SetupField(password, "Enter password here")

	twoFactorCode := &Field{
		Name:      "two_factor_code",
		Label:     "Two-factor code",
		Type:      TypeText,
		MaxLength: 6,
	}
	SetupField(twoFactorCode, "Two-factor code (if enabled)")

	return &LoginForm{
		BasicForm: NewBasicForm(email, password, twoFactorCode),
		auth:      auth,
	}
}

func (f *LoginForm) IsValid() bool {
	f.validateFields()
	if f.HasCleaned("email") && f.HasCleaned("password") {
		email := strings.ToLower(f.Cleaned("email"))
		if !f.auth.CheckCredentials(email, f.Cleaned("password"), f.Cleaned("two_factor_code")) {
			f.MarkError("password", "Incorrect password")
		}
	}
	return f.Valid()
}

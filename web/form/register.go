package form

import "extractor/database/model"

func registerFields(dir EmailDirectory) []*Field {
	email := &Field{
		Name:       "email",
		Label:      "Email",
		Type:       TypeEmail,
		Required:   true,
		MaxLength:  50,
		Validators: []Validator{ValidateEmailAvailable(dir)},
	}
	SetupField(email, "Enter email here")

	passwordFirst := &Field{
		Name:      "password_first",
		Label:     "Password",
		Type:      TypePassword,
		Required:  true,
		MinLength: 1,
		MaxLength: 50,
	}
	SetupField(passwordFirst, "Enter password here")

	passwordSecond := &Field{
		Name:      "password_second",
		Label:     "",
		Type:      TypePassword,
		Required:  true,
		MinLength: 1,
		MaxLength: 50,
	}
	SetupField(passwordSecond, "Enter password again")

	return []*Field{email, passwordFirst, passwordSecond}
}

// checkPasswordsMatch is the shared clean step of the registration forms:
// when both password fields individually validated, they must be equal.
func checkPasswordsMatch(f *BasicForm) {
	first := f.Cleaned("password_first")
	second := f.Cleaned("password_second")
	if first != "" && second != "" && first != second {
		f.MarkError("password_second", "Passwords do not match")
	}
}

// AccountRegisterForm creates a credentialed account: email plus a confirmed
// password. Used by both the setup and register views.
type AccountRegisterForm struct {
	*BasicForm
}

func NewAccountRegisterForm(dir EmailDirectory) *AccountRegisterForm {
	return &AccountRegisterForm{BasicForm: NewBasicForm(registerFields(dir)...)}
}

func (f *AccountRegisterForm) IsValid() bool {
	f.validateFields()
	checkPasswordsMatch(f.BasicForm)
	return f.Valid()
}

// UserRegistrationForm is the account form with an optional employee subtype
// selection, used when an admin provisions staff accounts.
type UserRegistrationForm struct {
	*BasicForm
}

func NewUserRegistrationForm(dir EmailDirectory) *UserRegistrationForm {
	fields := registerFields(dir)

	employee := &Field{
		Name:    "employee",
		Label:   "Employee type",
		Type:    TypeChoice,
		Choices: choicesFrom(model.EmployeeRoles),
	}
	SetupField(employee)

	return &UserRegistrationForm{BasicForm: NewBasicForm(append(fields, employee)...)}
}

func (f *UserRegistrationForm) IsValid() bool {
	f.validateFields()
	checkPasswordsMatch(f.BasicForm)
	return f.Valid()
}

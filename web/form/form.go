// Package form implements the declarative form framework behind the panel's
// server-rendered pages: typed field descriptors with constraints and
// validators, bootstrap-style field decoration, and a two-phase validation
// model (per-field checks followed by a cross-field clean step on the
// concrete forms).
package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

type FieldType string

const (
	TypeText     FieldType = "text"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
	TypeChoice   FieldType = "choice"
	TypeFile     FieldType = "file"
)

// Validator checks a single non-empty submitted value.
type Validator func(value string) error

// Choice is one selectable option of a choice field.
type Choice struct {
	Value string
	Label string
}

// Field describes one form field: its constraints, validators and the
// widget attributes used when rendering it.
type Field struct {
	Name       string
	Label      string
	Type       FieldType
	Required   bool
	MinLength  int
	MaxLength  int
	Choices    []Choice
	Validators []Validator
	Attrs      map[string]string
}

// Attr returns the widget attribute for key, or "" when unset.
func (f *Field) Attr(key string) string {
	if f.Attrs == nil {
		return ""
	}
	return f.Attrs[key]
}

// Template helpers.
func (f *Field) IsChoice() bool    { return f.Type == TypeChoice }
func (f *Field) IsFile() bool      { return f.Type == TypeFile }
func (f *Field) IsPassword() bool  { return f.Type == TypePassword }
func (f *Field) InputType() string { return string(f.Type) }

// Disabled reports whether the field has been marked non-editable.
func (f *Field) Disabled() bool {
	if f.Attrs == nil {
		return false
	}
	_, ok := f.Attrs["disabled"]
	return ok
}

// SetupField configures the field to play nice with the bootstrap theme and
// optionally sets a placeholder text.
func SetupField(f *Field, placeholder ...string) {
	if f.Attrs == nil {
		f.Attrs = make(map[string]string)
	}
	f.Attrs["class"] = "form-control"
	if len(placeholder) > 0 {
		f.Attrs["placeholder"] = placeholder[0]
	}
}

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// BasicForm holds the bound raw values, the cleaned values of fields that
// passed validation, and the per-field error lists.
type BasicForm struct {
	fields  []*Field
	data    map[string]string
	cleaned map[string]string
	errors  map[string][]string
}

func NewBasicForm(fields ...*Field) *BasicForm {
	for _, f := range fields {
		if f.Attrs == nil {
			f.Attrs = make(map[string]string)
		}
	}
	return &BasicForm{
		fields:  fields,
		data:    make(map[string]string),
		cleaned: make(map[string]string),
		errors:  make(map[string][]string),
	}
}

// Fields returns the ordered field descriptors for rendering.
func (f *BasicForm) Fields() []*Field {
	return f.fields
}

// Field returns the descriptor with the given name, or nil.
func (f *BasicForm) Field(name string) *Field {
	for _, field := range f.fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// Bind stores the submitted values for later validation.
func (f *BasicForm) Bind(values url.Values) {
	for _, field := range f.fields {
		f.data[field.Name] = values.Get(field.Name)
	}
}

// Set stores a single raw value, used for file fields whose "value" is the
// uploaded file name.
func (f *BasicForm) Set(name, value string) {
	f.data[name] = value
}

// Value returns the raw submitted value, used to re-render the form with
// the user's input preserved.
func (f *BasicForm) Value(name string) string {
	return f.data[name]
}

// Cleaned returns the cleaned value for name, or "" when the field did not
// pass validation.
func (f *BasicForm) Cleaned(name string) string {
	return f.cleaned[name]
}

// HasCleaned reports whether name passed validation.
func (f *BasicForm) HasCleaned(name string) bool {
	_, ok := f.cleaned[name]
	return ok
}

// DisableField marks the field as non-editable in the rendered form.
func (f *BasicForm) DisableField(name string) {
	if field := f.Field(name); field != nil {
		field.Attrs["disabled"] = ""
	}
}

// MarkError records description as the sole error for the field and discards
// its cleaned value, so a force-failed field is never treated as valid.
func (f *BasicForm) MarkError(name, description string) {
	f.errors[name] = []string{description}
	delete(f.cleaned, name)
}

// ClearErrors resets the error mapping for all fields.
func (f *BasicForm) ClearErrors() {
	f.errors = make(map[string][]string)
}

// Errors returns the error mapping.
func (f *BasicForm) Errors() map[string][]string {
	return f.errors
}

// ErrorsFor returns the error list for one field.
func (f *BasicForm) ErrorsFor(name string) []string {
	return f.errors[name]
}

// Valid reports whether the error mapping is empty.
func (f *BasicForm) Valid() bool {
	return len(f.errors) == 0
}

// IsValid runs the per-field validation pass. Concrete forms with a clean
// step shadow this with their own IsValid.
func (f *BasicForm) IsValid() bool {
	f.validateFields()
	return f.Valid()
}

func (f *BasicForm) addError(name, msg string) {
	f.errors[name] = append(f.errors[name], msg)
}

// validateFields runs the syntactic phase: required, length, format, choice
// membership, then the field's validators. A field's cleaned value is set
// only when every check passed.
func (f *BasicForm) validateFields() {
	f.errors = make(map[string][]string)
	f.cleaned = make(map[string]string)

	for _, field := range f.fields {
		value := strings.TrimSpace(f.data[field.Name])

		if value == "" {
			if field.Required {
				f.addError(field.Name, "This field is required.")
			} else {
				f.cleaned[field.Name] = ""
			}
			continue
		}

		// length limits count characters, not bytes
		if field.MaxLength > 0 && utf8.RuneCountInString(value) > field.MaxLength {
			f.addError(field.Name, fmt.Sprintf("Ensure this value has at most %d characters.", field.MaxLength))
			continue
		}
		if field.MinLength > 0 && utf8.RuneCountInString(value) < field.MinLength {
			f.addError(field.Name, fmt.Sprintf("Ensure this value has at least %d characters.", field.MinLength))
			continue
		}
		if field.Type == TypeEmail && !emailRegexp.MatchString(value) {
			f.addError(field.Name, "Enter a valid email address.")
			continue
		}
		if field.Type == TypeChoice && !validChoice(field.Choices, value) {
			f.addError(field.Name, "Select a valid choice.")
			continue
		}

		failed := false
		for _, validate := range field.Validators {
			if err := validate(value); err != nil {
				f.addError(field.Name, err.Error())
				failed = true
				break
			}
		}
		if !failed {
			f.cleaned[field.Name] = value
		}
	}
}

func validChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// optional maps an empty cleaned value to nil, so optional columns are
// stored as NULL.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// choicesFrom builds a choice list whose labels title-case the values.
func choicesFrom(values []string) []Choice {
	choices := make([]Choice, 0, len(values))
	for _, v := range values {
		label := v
		if len(label) > 0 {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		choices = append(choices, Choice{Value: v, Label: label})
	}
	return choices
}

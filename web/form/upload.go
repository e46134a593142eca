package form

// UploadForm accepts a single archive for extraction. The controller binds
// the uploaded file's name, so the required check fires when no file was
// attached.
type UploadForm struct {
	*BasicForm
}

func NewUploadForm() *UploadForm {
	file := &Field{
		Name:     "file",
		Label:    "Archive",
		Type:     TypeFile,
		Required: true,
	}
	SetupField(file, "Choose a zip")

	return &UploadForm{BasicForm: NewBasicForm(file)}
}

// BindFile records the uploaded file's original name as the field value.
func (f *UploadForm) BindFile(filename string) {
	f.Set("file", filename)
}

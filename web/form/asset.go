package form

import "extractor/database/model"

// AssetForm creates or edits a single extracted asset.
type AssetForm struct {
	*BasicForm
}

func NewAssetForm() *AssetForm {
	imgName := &Field{Name: "img_name", Label: "Image name", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(imgName, "Enter the Image name")

	imgPath := &Field{Name: "img_path", Label: "Image path", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(imgPath, "Enter the image path")

	latitude := &Field{Name: "latitude", Label: "Latitude", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(latitude, "Enter the latitude")

	longitude := &Field{Name: "longitude", Label: "Longitude", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(longitude, "Enter the longitude")

	extractedText := &Field{Name: "extracted_text", Label: "Extracted text", Type: TypeText, MaxLength: 500}
	SetupField(extractedText, "Enter the extracted text")

	department := &Field{Name: "department", Label: "Department", Type: TypeChoice, Required: true, Choices: choicesFrom(model.Departments)}
	SetupField(department, "Enter the department")

	inputTextType := &Field{Name: "input_text_type", Label: "Asset type", Type: TypeText, MaxLength: 50}
	SetupField(inputTextType, "Enter the type of asset")

	inputTextCapacity := &Field{Name: "input_text_capacity", Label: "Capacity", Type: TypeText, MaxLength: 50}
	SetupField(inputTextCapacity, "Enter the capacity")

	return &AssetForm{BasicForm: NewBasicForm(
		imgName, imgPath, latitude, longitude, extractedText, department, inputTextType, inputTextCapacity,
	)}
}

// Assign copies the cleaned values onto the asset record. Optional fields
// are stored as NULL when left blank.
func (f *AssetForm) Assign(a *model.Asset) {
	a.ImgName = f.Cleaned("img_name")
	a.ImgPath = f.Cleaned("img_path")
	a.Latitude = f.Cleaned("latitude")
	a.Longitude = f.Cleaned("longitude")
	a.ExtractedText = optional(f.Cleaned("extracted_text"))
	a.Department = f.Cleaned("department")
	a.InputTextType = optional(f.Cleaned("input_text_type"))
	a.InputTextCapacity = optional(f.Cleaned("input_text_capacity"))
}

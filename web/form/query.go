package form

import "extractor/database/model"

// QueryForm searches stored assets around a coordinate. Coordinates and
// distance stay strings here; the asset service parses them when the query
// runs.
type QueryForm struct {
	*BasicForm
}

func NewQueryForm() *QueryForm {
	latitude := &Field{Name: "latitude", Label: "Latitude", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(latitude, "Enter the latitude")

	longitude := &Field{Name: "longitude", Label: "Longitude", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(longitude, "Enter the longitude")

	distance := &Field{Name: "distance", Label: "Distance", Type: TypeText, Required: true, MaxLength: 50}
	SetupField(distance, "Enter the distance(in km)")

	department := &Field{Name: "department", Label: "Department", Type: TypeChoice, Required: true, Choices: choicesFrom(model.Departments)}
	SetupField(department, "Select the department")

	year := &Field{Name: "year", Label: "Year", Type: TypeText, MaxLength: 4}
	SetupField(year, "Enter the start year")

	inputTextType := &Field{Name: "input_text_type", Label: "Asset type", Type: TypeText, MaxLength: 50}
	SetupField(inputTextType, "Enter the type of asset")

	inputTextCapacity := &Field{Name: "input_text_capacity", Label: "Capacity", Type: TypeText, MaxLength: 50}
	SetupField(inputTextCapacity, "Enter the capacity")

	return &QueryForm{BasicForm: NewBasicForm(
		latitude, longitude, distance, department, year, inputTextType, inputTextCapacity,
	)}
}

// Assign copies the cleaned values onto the query record. Optional fields
// are stored as NULL when left blank.
func (f *QueryForm) Assign(q *model.Query) {
	q.Department = f.Cleaned("department")
	q.Latitude = f.Cleaned("latitude")
	q.Longitude = f.Cleaned("longitude")
	q.Distance = f.Cleaned("distance")
	q.Year = optional(f.Cleaned("year"))
	q.InputTextType = optional(f.Cleaned("input_text_type"))
	q.InputTextCapacity = optional(f.Cleaned("input_text_capacity"))
}

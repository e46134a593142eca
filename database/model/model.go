package model

import "time"

// Account roles. The first account created through the setup flow is always
// an admin; later registrations currently receive the same role (see the
// register handler).
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleSurveyor   = "surveyor"
)

// EmployeeRoles lists the selectable employee subtypes on the registration form.
var EmployeeRoles = []string{RoleTechnician, RoleSurveyor}

// Departments lists the infrastructure departments an asset can belong to.
var Departments = []string{"electrical", "water", "gas", "telecom"}

type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Role     string `json:"role" gorm:"not null"`
}

// Asset is a geo-tagged infrastructure asset extracted from an uploaded
// survey image. Optional columns are pointers so an absent value is stored
// as NULL rather than an empty string.
type Asset struct {
	Id                int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	ImgName           string    `json:"imgName" form:"imgName"`
	ImgPath           string    `json:"imgPath" form:"imgPath"`
	Latitude          string    `json:"latitude" form:"latitude"`
	Longitude         string    `json:"longitude" form:"longitude"`
	ExtractedText     *string   `json:"extractedText" form:"extractedText"`
	Department        string    `json:"department" form:"department"`
	InputTextType     *string   `json:"inputTextType" form:"inputTextType"`
	InputTextCapacity *string   `json:"inputTextCapacity" form:"inputTextCapacity"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Query is an executed asset search, kept so the profile page can list a
// user's recent searches.
type Query struct {
	Id                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId            int       `json:"-" gorm:"index"`
	Latitude          string    `json:"latitude"`
	Longitude         string    `json:"longitude"`
	Distance          string    `json:"distance"`
	Department        string    `json:"department"`
	Year              *string   `json:"year"`
	InputTextType     *string   `json:"inputTextType"`
	InputTextCapacity *string   `json:"inputTextCapacity"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Upload records an archive uploaded for extraction. The archive itself is
// stored on disk under StoredName.
type Upload struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId     int       `json:"-" gorm:"index"`
	FileName   string    `json:"fileName"`
	StoredName string    `json:"storedName" gorm:"uniqueIndex"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" gorm:"index"`
	Value string `json:"value"`
}

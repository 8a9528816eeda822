package field

// ID identifies a form input.
type ID string

// Fields tracked in the registry, in the order they are checked on submit.
const (
	FirstName   ID = "firstName"
	Surname     ID = "surname"
	Email       ID = "email"
	Age         ID = "age"
	DOBDay      ID = "dobDay"
	DOBMonth    ID = "dobMonth"
	DOBYear     ID = "dobYear"
	Country     ID = "country"
	CountryCode ID = "countryCode"
	PhoneNumber ID = "phoneNumber"
	Terms       ID = "terms"
)

// Inputs that take part in validation without a registry entry.
const (
	// Secrets is the "reveal secrets" checkbox gating the File upload.
	Secrets ID = "secrets"
	// File holds the uploaded file name; empty means nothing was uploaded.
	File ID = "file"
)

// Message targets that are not inputs themselves.
const (
	// DOB receives the unified date-of-birth / age message.
	DOB ID = "dob"
	// Feedback receives the form-level outcome after a submit.
	Feedback ID = "formFeedback"
)

var ordered = []ID{
	FirstName, Surname, Email, Age,
	DOBDay, DOBMonth, DOBYear, Country,
	CountryCode, PhoneNumber, Terms,
}

// All returns the registered fields in check order.
// The returned slice is a copy and may be modified by the caller.
func All() []ID {
	out := make([]ID, len(ordered))
	copy(out, ordered)
	return out
}

// Known reports whether id has a registry entry.
func Known(id ID) bool {
	for _, f := range ordered {
		if f == id {
			return true
		}
	}
	return false
}

// IsDOB reports whether id feeds the date-of-birth / age consistency check.
func IsDOB(id ID) bool {
	switch id {
	case DOBDay, DOBMonth, DOBYear, Age:
		return true
	default:
		return false
	}
}

// IsCheckbox reports whether id carries a boolean value.
func IsCheckbox(id ID) bool {
	return id == Terms || id == Secrets
}

func (id ID) String() string {
	return string(id)
}

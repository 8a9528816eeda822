package rules

import "fmt"

// User-facing messages. They are English only.
const (
	MsgFirstNameRequired = "First name is required."
	MsgFirstNameInvalid  = "First name must contain only letters and spaces."
	MsgSurnameRequired   = "Surname is required."
	MsgSurnameInvalid    = "Surname can have letters, spaces, and optionally end with a number."
	MsgEmailInvalid      = "Enter a valid email address."
	MsgPhoneInvalid      = "Phone number must be 10 to 15 digits and not start with 0."
	MsgCountryCodeFormat = "Country code must match the format +12 or +123-456."
	MsgCountryCodeEmpty  = "Country and code cannot be empty."
	MsgCountryCodeMatch  = "Country and code must match (e.g., United Kingdom and +44)."
	MsgTermsRequired     = "You must agree to the terms and conditions."
	MsgSecretsFile       = "Please upload your secrets file."

	MsgInvalidDay   = "Invalid day."
	MsgInvalidMonth = "Invalid month."
	MsgInvalidYear  = "Invalid year."
	MsgInvalidDate  = "Invalid date."
	MsgAgeMismatch  = "Age does not match DOB."

	MsgFormSent = "Form Successfully Sent!"
)

// AgeMessage returns the age range message for the given bounds.
func AgeMessage(minAge, maxAge int) string {
	return fmt.Sprintf("Age must be between %d and %d.", minAge, maxAge)
}

package domain

import (
	"regexp"
	"strings"
)

const (
	NameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	AddressConstraints = "Addresses can take any values, and it should not be blank"
	EmailConstraints   = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."
)

var (
	nameRe    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRe   = regexp.MustCompile(`^\d{3,}$`)
	addressRe = regexp.MustCompile(`^\S.*$`)
	emailRe   = regexp.MustCompile(`^[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*@([A-Za-z0-9]+(-[A-Za-z0-9]+)*\.)*[A-Za-z0-9]{2,}(-[A-Za-z0-9]+)*$`)
)

// Name is a person's full name.
type Name string

// NewName validates s as a person name.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return "", &ConstraintError{Field: "Name", Message: NameConstraints}
	}
	return Name(s), nil
}

func IsValidName(s string) bool { return nameRe.MatchString(s) }

// Phone is a phone number made of digits.
type Phone string

func NewPhone(s string) (Phone, error) {
	if !IsValidPhone(s) {
		return "", &ConstraintError{Field: "Phone", Message: PhoneConstraints}
	}
	return Phone(s), nil
}

func IsValidPhone(s string) bool { return phoneRe.MatchString(s) }

// Email is an email address.
type Email string

func NewEmail(s string) (Email, error) {
	if !IsValidEmail(s) {
		return "", &ConstraintError{Field: "Email", Message: EmailConstraints}
	}
	return Email(s), nil
}

func IsValidEmail(s string) bool { return emailRe.MatchString(s) }

// Address is a free-form postal address.
type Address string

func NewAddress(s string) (Address, error) {
	if !IsValidAddress(s) {
		return "", &ConstraintError{Field: "Address", Message: AddressConstraints}
	}
	return Address(s), nil
}

func IsValidAddress(s string) bool { return addressRe.MatchString(s) }

// Person is a contact record. Values are never mutated in place; edits build a new Person.
type Person struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Tags    []Tag
}

// NewPerson builds a person with a normalised tag set.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag) Person {
	return Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    NewTagSet(tags...),
	}
}

// IsSamePerson reports whether both records describe the same contact.
func (p Person) IsSamePerson(other Person) bool {
	return p.Name == other.Name
}

// Equal compares every field.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		TagsEqual(p.Tags, other.Tags)
}

func (p Person) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.Name))
	sb.WriteString("; Phone: ")
	sb.WriteString(string(p.Phone))
	sb.WriteString("; Email: ")
	sb.WriteString(string(p.Email))
	sb.WriteString("; Address: ")
	sb.WriteString(string(p.Address))
	sb.WriteString("; Tags: ")
	sb.WriteString(FormatTags(p.Tags))
	return sb.String()
}

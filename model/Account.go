package model

// Account is a single registered account. It is a raw map rather than a
// struct: registration persists the submitted body verbatim, extra fields
// included, and a fixed struct would drop them.
type Account map[string]interface{}

func (a Account) EmailAddress() string {
	email, _ := a["email_address"].(string)
	return email
}

func (a Account) Password() string {
	password, _ := a["password"].(string)
	return password
}

// Credentials is the accounts.json envelope.
type Credentials struct {
	Accounts []Account `json:"accounts"`
}

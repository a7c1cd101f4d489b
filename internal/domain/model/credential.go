package model

// Credentials holds one session's SAP connection credentials: the Basic auth
// identity/secret pair and the base address of the sales-order service.
// Held in process memory only; never persisted.
type Credentials struct {
	Username string
	Password string
	APIURL   string
}

// Complete reports whether all three fields are present. Field content is not
// validated beyond non-emptiness; that is the connection form's job.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.Password != "" && c.APIURL != ""
}

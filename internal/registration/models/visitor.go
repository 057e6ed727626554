package models

import "time"

// Visitor is one stored registration submission. The whatsapp number is
// kept exactly as submitted; normalization happens only at lookup time.
// Visitors are never updated or deleted by this system.
type Visitor struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Whatsapp      string    `json:"whatsapp"`
	Age           int       `json:"age"`
	Birthdate     string    `json:"birthdate"`
	MaritalStatus string    `json:"maritalStatus"`
	CreatedAt     time.Time `json:"timestamp"`
}

// RegistrationRequest mirrors the POST /cadastro body. No field beyond
// JSON well-formedness is validated; an absent whatsapp decodes to "".
type RegistrationRequest struct {
	Name          string `json:"name"`
	Whatsapp      string `json:"whatsapp"`
	Age           int    `json:"age"`
	Birthdate     string `json:"birthdate"`
	MaritalStatus string `json:"maritalStatus"`
}

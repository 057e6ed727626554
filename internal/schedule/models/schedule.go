// Package models defines the schedule entities. Field and JSON names are
// Portuguese because the public site consumes them as-is.
package models

// Culto is a recurring service slot. Created and deleted through the
// admin API only; never updated in place.
type Culto struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Dia     string `json:"dia"`
	Horario string `json:"horario"`
}

// Evento is a one-off event. Descricao is optional.
type Evento struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Data      string `json:"data"`
	Descricao string `json:"descricao"`
}

// Schedule is the aggregate served to the public page. Both slices are
// always non-nil so empty stores serialize as [] rather than null.
type Schedule struct {
	Cultos  []Culto  `json:"cultos"`
	Eventos []Evento `json:"eventos"`
}

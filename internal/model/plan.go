package model

import "time"

// Plan представляет туристический план (пакет), опубликованный агентством.
type Plan struct {
	ID          int       `db:"id"`
	AgencyID    int       `db:"agency_id"` // владелец плана (пользователь с ролью agency)
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Destination string    `db:"destination"`
	Duration    string    `db:"duration"` // произвольный текст, например "7 дней"
	Price       string    `db:"price"`
	CreatedAt   time.Time `db:"created_at"`
}

// PlanWithAgency — план вместе с названием агентства (для публичных списков).
type PlanWithAgency struct {
	Plan
	AgencyName *string `db:"agency_name"`
}

package domain

import "time"

// SlotDuration длительность одного слота бронирования
const SlotDuration = time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxClientNameLength    = 255
	MaxClientContactLength = 255
	MaxNotesLength         = 1000
)

// DefaultNotes подпись для бронирования без темы
const DefaultNotes = "не указана"

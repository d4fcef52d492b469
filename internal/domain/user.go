package domain

import "time"

// Role роль пользователя платформы
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSpecialist Role = "specialist"
)

// User специалист или администратор
type User struct {
	ID             int64
	Email          string
	Name           string
	Role           Role
	Bio            *string
	PhotoURL       *string
	TelegramChatID *int64
	TgLinkCode     *string
	CreatedAt      time.Time
}

// HasTelegram у пользователя привязан чат Telegram
func (u *User) HasTelegram() bool {
	return u.TelegramChatID != nil && *u.TelegramChatID != 0
}

// Identity аутентифицированный вызывающий
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin вызывающий является администратором
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanManage вызывающий может управлять данными специалиста (свои данные или администратор)
func (i Identity) CanManage(specialistID int64) bool {
	return i.IsAdmin() || i.UserID == specialistID
}

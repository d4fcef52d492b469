package models

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// SpecialistResponse публичная карточка специалиста
// Контакты и привязка Telegram наружу не отдаются
type SpecialistResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// SpecialistListResponse список специалистов
type SpecialistListResponse struct {
	Specialists []SpecialistResponse `json:"specialists"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *SpecialistResponse {
	if u == nil {
		return nil
	}

	return &SpecialistResponse{
		ID:       u.ID,
		Name:     u.Name,
		Bio:      u.Bio,
		PhotoURL: u.PhotoURL,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *SpecialistListResponse {
	resp := &SpecialistListResponse{
		Specialists: make([]SpecialistResponse, 0, len(users)),
	}
	for _, u := range users {
		if u == nil {
			continue
		}
		resp.Specialists = append(resp.Specialists, *FromDomainUser(u))
	}
	return resp
}

package dto

import "time"

type CreateTemplateRequest struct {
	Type    string `json:"type" validate:"required,oneof=interview examination recommendations"`
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type TemplateResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

package dto

type CreateSupportMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ActionSupportMessageRequest struct {
	Status    string `json:"status" validate:"required,oneof=open in_progress resolved"`
	AdminNote string `json:"admin_note"`
}

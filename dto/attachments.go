package dto

type CreateAttachmentRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id" binding:"required"`
	Filename   string `json:"filename" binding:"required"`
	Filetype   string `json:"filetype"`
	URL        string `json:"url" binding:"required"`
}

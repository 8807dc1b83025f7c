package dto

type MediaDTO struct {
	ID       uint   `json:"id,omitempty"`
	URL      string `json:"url" validate:"required,url"`
	FileName string `json:"file_name" validate:"required"`
	Size     int64  `json:"size" validate:"gte=0"`
	MimeType string `json:"mime_type" validate:"required"`
}

type MediaPatch struct {
	URL      *string `json:"url,omitempty" validate:"omitempty,url"`
	FileName *string `json:"file_name,omitempty"`
	Size     *int64  `json:"size,omitempty" validate:"omitempty,gte=0"`
	MimeType *string `json:"mime_type,omitempty"`
}

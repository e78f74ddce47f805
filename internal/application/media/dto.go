package media

// UploadRequest carries a base64-encoded image. Data URI prefixes
// ("data:image/png;base64,...") are accepted and stripped.
type UploadRequest struct {
	Image  string `json:"image" binding:"required"`
	Folder string `json:"folder" binding:"required,oneof=pets products avatars logos"`
}

// UploadResponse returns the public URL of the stored object
type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

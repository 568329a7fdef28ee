package dto

// UploadResponse upload output: where the stored file is reachable.
type UploadResponse struct {
	FilePath string `json:"filePath"`
}

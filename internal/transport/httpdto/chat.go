package httpdto

type CreateChatRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

// SendMessageRequest is deliberately loose here; presence checks live in the
// chat service so REST and any future transport validate identically.
type SendMessageRequest struct {
	Text   string `json:"text"`
	UserID uint   `json:"userId"`
}

type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	SizeBytes   int64  `json:"sizeBytes" binding:"omitempty,gt=0"`
}

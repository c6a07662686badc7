package domain

var (
	MessageSuccessSendDigest = "expiry digest sent"
	MessageFailedSendDigest  = "failed to send expiry digest"
)

type (
	SendDigestRequest struct {
		Email      string `json:"email" validate:"required,email"`
		WithinDays int    `json:"within_days" validate:"omitempty,min=1"`
	}

	SendDigestResponse struct {
		Email     string `json:"email"`
		ItemCount int    `json:"item_count"`
	}
)

package model

// ShortenRequest представляет тело запроса POST /shorten.
type ShortenRequest struct {
	LongURL string `json:"long_url"`
}

// CustomShortenRequest представляет тело запроса POST /shorten/custom.
type CustomShortenRequest struct {
	LongURL     string `json:"long_url"`
	CustomAlias string `json:"custom_alias"`
	UserName    string `json:"user_name"`
}

// ShortenResponse представляет успешный ответ эндпоинтов сокращения.
type ShortenResponse struct {
	ShortURL string `json:"short_url"`
}

// LinkRequest представляет тело запроса POST /api/link-account.
type LinkRequest struct {
	PrimaryUserID   string `json:"primary_user_id"`
	SecondaryUserID string `json:"secondary_user_id"`
	Provider        string `json:"provider"`
}

// LinkResponse представляет успешный ответ эндпоинта связывания аккаунтов.
type LinkResponse struct {
	Message string `json:"message"`
}

package handler

// VerifyResponse is the envelope for POST /api/verify-human. Reasons are
// deliberately absent: callers learn the verdict, never the signals behind it.
type VerifyResponse struct {
	Success   bool   `json:"success"`
	IsHuman   bool   `json:"isHuman"`
	RiskScore int    `json:"riskScore"`
	Message   string `json:"message"`
}

// CaptchaResponse is the envelope for POST /api/verify-captcha.
type CaptchaResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package domain

// LoginInput carries the submitted credentials. No shape constraints are
// enforced here: empty strings are legal inputs that simply never match
type LoginInput struct {
	Identity string `json:"identity" example:"judge"`
	Secret   string `json:"secret" example:"hackathon"`
}

// LoginResponse is returned on a successful credential match
type LoginResponse struct {
	Token    string `json:"token" example:"7b9f3c6e-1d24-4b39-9f3c-2a1d24b39f3c"`
	Identity string `json:"identity" example:"judge"`
}

package dto

type GreetingRequest struct {
	UserInfo string `json:"user_info" validate:"required"`
}

type GreetingResponse struct {
	Greeting string `json:"greeting"`
}

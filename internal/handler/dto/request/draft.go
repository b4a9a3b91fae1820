package request

type PartySizeRequest struct {
	Count int `json:"count" binding:"required"`
}

type ParticipantNameRequest struct {
	Name string `json:"name" binding:"max=120"`
}

// Bracket is "0-5" or "6-10"; sending the current bracket again clears it
type BracketRequest struct {
	Bracket string `json:"bracket" binding:"required,oneof=0-5 6-10"`
}

type PhoneRequest struct {
	Phone string `json:"phone" binding:"max=32"`
}

type CouponRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

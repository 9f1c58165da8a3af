package v1

// Статусы и тексты ответов /send-sos
const (
	StatusSuccess = "success"
	StatusError   = "error"

	MsgSent           = "SOS SMS sent successfully"
	MsgInvalidRequest = "Invalid request"
)

// SendSOSRequest DTO для отправки SOS.
// Координаты - указатели, чтобы отличить отсутствующее поле от нуля.
// @Description DTO для отправки SOS
type SendSOSRequest struct {
	Message   string   `json:"message" validate:"required" example:"Help!"`
	Latitude  *float64 `json:"lat" validate:"required" example:"12.9"`
	Longitude *float64 `json:"lng" validate:"required" example:"77.6"`
}

// SOSResponse DTO результата рассылки
// @Description DTO результата рассылки
type SOSResponse struct {
	Status string `json:"status" example:"success"`
	Msg    string `json:"msg" example:"SOS SMS sent successfully"`
}

package v1

import "github.com/shenikar/sos_alert_relay/internal/models"

// DTOToAlertModel преобразует провалидированный запрос в доменную модель
func DTOToAlertModel(dto SendSOSRequest) *models.Alert {
	return &models.Alert{
		Message: dto.Message,
		Location: models.Location{
			Latitude:  *dto.Latitude,
			Longitude: *dto.Longitude,
		},
	}
}

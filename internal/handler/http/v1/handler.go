package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_relay/internal/metrics"
	"github.com/shenikar/sos_alert_relay/internal/service"
	"github.com/sirupsen/logrus"
)

const alertIDHeader = "X-Alert-ID"

type Handler struct {
	alertService service.AlertService
	logger       *logrus.Logger
	validate     *validator.Validate
	metrics      *metrics.Metrics
}

func NewHandler(alertService service.AlertService, logger *logrus.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		alertService: alertService,
		logger:       logger,
		validate:     validator.New(),
		metrics:      m,
	}
}

// @Summary Send an SOS alert
// @Description Relay an SOS message with a map link to every configured recipient via SMS.
// @Tags SOS
// @Accept json
// @Produce json
// @Param alert body SendSOSRequest true "SOS request"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} SOSResponse "Invalid request"
// @Failure 500 {object} SOSResponse "Provider error"
// @Router /send-sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input SendSOSRequest
	log := h.logger.WithFields(logrus.Fields{
		"method":     "sendSOS",
		"request_id": c.GetString(requestIDKey),
	})

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		h.invalidRequest(c)
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		h.invalidRequest(c)
		return
	}

	alert := DTOToAlertModel(input)
	err := h.alertService.SendSOS(c.Request.Context(), alert)
	if alert.ID != uuid.Nil {
		c.Header(alertIDHeader, alert.ID.String())
	}
	if err != nil {
		log.WithError(err).WithField("alert_id", alert.ID).Error("Failed to dispatch SOS alert")
		h.metrics.ObserveRequest(metrics.ResultError)
		c.JSON(http.StatusInternalServerError, SOSResponse{Status: StatusError, Msg: dispatchErrorMessage(err)})
		return
	}

	h.metrics.ObserveRequest(metrics.ResultSuccess)
	c.JSON(http.StatusOK, SOSResponse{Status: StatusSuccess, Msg: MsgSent})
}

func (h *Handler) invalidRequest(c *gin.Context) {
	h.metrics.ObserveRequest(metrics.ResultInvalid)
	c.JSON(http.StatusBadRequest, SOSResponse{Status: StatusError, Msg: MsgInvalidRequest})
}

// dispatchErrorMessage возвращает текст ошибки провайдера без обертки сервиса
func dispatchErrorMessage(err error) string {
	var dispatchErr *service.DispatchError
	if errors.As(err, &dispatchErr) && dispatchErr.Err != nil {
		return dispatchErr.Err.Error()
	}
	return err.Error()
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_relay/internal/config"
	"github.com/shenikar/sos_alert_relay/internal/metrics"
	"github.com/shenikar/sos_alert_relay/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

const alertMarker = "🚨 SOS ALERT 🚨"

// MessageSender определяет контракт провайдера SMS
type MessageSender interface {
	Send(ctx context.Context, from, to, body string) error
}

// AlertService определяет контракт для рассылки SOS-оповещений
type AlertService interface {
	SendSOS(ctx context.Context, alert *models.Alert) error
}

// DispatchError - ошибка провайдера при отправке одному из получателей.
// Получатели после упавшего не обрабатываются.
type DispatchError struct {
	RecipientIndex int // номер получателя, начиная с 1
	Sent           int // сколько отправок прошло до ошибки
	Err            error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch to recipient %d failed after %d sent: %v", e.RecipientIndex, e.Sent, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

type alertService struct {
	sender     MessageSender
	logger     *logrus.Logger
	from       string
	recipients []string
	metrics    *metrics.Metrics
}

func NewAlertService(sender MessageSender, logger *logrus.Logger, cfg *config.Config, m *metrics.Metrics) AlertService {
	return &alertService{
		sender:     sender,
		logger:     logger,
		from:       cfg.TwilioFromNumber,
		recipients: cfg.Recipients,
		metrics:    m,
	}
}

// FormatAlertBody собирает текст SMS: маркер, сообщение и ссылку на карту
func FormatAlertBody(alert *models.Alert) string {
	return fmt.Sprintf("%s\n%s\nLocation: %s", alertMarker, alert.Message, alert.Location.MapURL())
}

// SendSOS отправляет оповещение всем получателям по порядку.
// Первая ошибка провайдера прерывает рассылку; отмена ctx рассылку не прерывает.
func (s *alertService) SendSOS(ctx context.Context, alert *models.Alert) error {
	ctx = context.WithoutCancel(ctx)
	alert.ID = uuid.New()
	alert.CreatedAt = time.Now().UTC()

	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "SendSOS",
		"alert_id":   alert.ID,
		"recipients": len(s.recipients),
	})
	log.Info("Dispatching SOS alert")

	body := FormatAlertBody(alert)

	for i, to := range s.recipients {
		err := s.sender.Send(ctx, s.from, to, body)
		s.metrics.ObserveSend(err)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"recipient_index": i + 1,
				"recipient":       maskPhone(to),
			}).Error("Failed to send SOS SMS")
			return &DispatchError{RecipientIndex: i + 1, Sent: i, Err: err}
		}
		log.WithField("recipient", maskPhone(to)).Debug("SOS SMS sent")
	}

	log.Info("SOS alert dispatched to all recipients")
	return nil
}

// maskPhone оставляет видимыми только последние 4 цифры номера
func maskPhone(phone string) string {
	const visible = 4
	if len(phone) <= visible {
		return phone
	}
	return strings.Repeat("*", len(phone)-visible) + phone[len(phone)-visible:]
}

package background

import (
	"github.com/jinzhu/gorm"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/roadguard/roadguard-api/utils"
)

// notification copy fallbacks, used when the i18n bundle misses an entry
var defaultNotificationText = map[string][2]string{
	"request_created":    {"Request received", "We received your service request and are finding help."},
	"assigned":           {"Mechanic assigned", "A mechanic has been assigned to your request."},
	"status_accepted":    {"Request accepted", "The mechanic accepted your request and is on the way."},
	"status_in-progress": {"Work in progress", "Work on your vehicle has started."},
	"status_completed":   {"Request completed", "Your service request has been completed."},
	"status_rejected":    {"Request rejected", "The mechanic could not take your request."},
	"status_cancelled":   {"Request cancelled", "The service request has been cancelled."},
}

func localize(lc *i18n.Localizer, id, fallback string) string {
	text, err := lc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return fallback
	}
	return text
}

// NotifyRequestEvent is the machinery task delivering a lifecycle event to
// the given accounts. Recipients that no longer resolve to an account are
// skipped. Per-recipient failures are logged and do not fail the remaining
// deliveries; the task never retries.
func (m *BackgroundManager) NotifyRequestEvent(eventType, requestID string, recipients []string) error {
	fallback, ok := defaultNotificationText[eventType]
	if !ok {
		fallback = [2]string{"Request update", "Your service request was updated."}
	}

	lc := utils.NewLocalizer("en")
	title := localize(lc, eventType+"_title", fallback[0])
	body := localize(lc, eventType+"_body", fallback[1])

	data := map[string]interface{}{
		"id":    requestID,
		"event": eventType,
	}

	for _, accountID := range recipients {
		if accountID == "" {
			continue
		}

		if _, err := m.store.GetAccount(accountID); err != nil {
			if gorm.IsRecordNotFoundError(err) {
				log.WithFields(log.Fields{
					"prefix":  "background",
					"event":   eventType,
					"account": accountID,
				}).Warn("skip notification for unknown account")
				continue
			}
			// the push is still attempted; a degraded account store must
			// not drop deliveries
			log.WithField("prefix", "background").WithError(err).Error("resolve notification recipient")
		}

		if err := m.notifier.NotifyAccountByText(accountID,
			map[string]string{"en": title},
			map[string]string{"en": body},
			data,
		); err != nil {
			log.WithFields(log.Fields{
				"prefix":  "background",
				"event":   eventType,
				"request": requestID,
				"account": accountID,
			}).WithError(err).Error("deliver request notification")
		}
	}

	return nil
}

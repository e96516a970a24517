package background

import (
	"context"

	"github.com/roadguard/roadguard-api/external/onesignal"
)

// NotificationCenter delivers out-of-band notifications to accounts. It is
// best effort by contract: callers log failures and move on.
type NotificationCenter interface {
	NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyAccountByText pushes a text notification to the devices tagged with
// the given account id.
func (o *OnesignalNotificationCenter) NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_id",
			"relation": "=",
			"value":    accountID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "request_updates",
	}
	return o.client.SendNotification(context.Background(), req)
}

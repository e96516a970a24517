package background

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/roadguard/roadguard-api/external/onesignal"
)

func TestNotifyAccountByText(t *testing.T) {
	var captured onesignal.NotificationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "Basic test-api-key", r.Header.Get("Authorization"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	viper.Set("onesignal.endpoint", server.URL)
	viper.Set("onesignal.key", "test-api-key")
	defer viper.Set("onesignal.endpoint", "")

	center := NewOnesignalNotificationCenter("test-app", onesignal.NewClient(http.DefaultClient))

	err := center.NotifyAccountByText("account-1",
		map[string]string{"en": "Mechanic assigned"},
		map[string]string{"en": "A mechanic has been assigned to your request."},
		map[string]interface{}{"id": "req-1", "event": "assigned"},
	)
	assert.NoError(t, err)

	assert.Equal(t, "test-app", captured.AppID)
	assert.Equal(t, "Mechanic assigned", captured.Headings["en"])
	assert.Equal(t, "request_updates", captured.LocalChannelID)

	assert.Len(t, captured.Filters, 1)
	assert.Equal(t, "account_id", captured.Filters[0]["key"])
	assert.Equal(t, "account-1", captured.Filters[0]["value"])
}

func TestNotifyAccountByTextRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	viper.Set("onesignal.endpoint", server.URL)
	defer viper.Set("onesignal.endpoint", "")

	center := NewOnesignalNotificationCenter("test-app", onesignal.NewClient(http.DefaultClient))

	err := center.NotifyAccountByText("account-1",
		map[string]string{"en": "t"}, map[string]string{"en": "b"}, nil)
	assert.Error(t, err)
}

package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadguard/roadguard-api/external/onesignal"
	"github.com/roadguard/roadguard-api/store"
)

// TaskNotifyRequestEvent is the queue name of the lifecycle notification task.
const TaskNotifyRequestEvent = "notify_request_event"

// BackgroundManager runs the queue workers delivering lifecycle
// notifications out of band.
type BackgroundManager struct {
	store store.RoadGuardCore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	core := store.NewRoadGuardStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
		nil,
	))

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:      core,
		notifier:   NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("roadguard-worker", 5)
	return m.worker.Launch()
}

package main

import (
	"fmt"
	"time"

	"github.com/towoju5/bridge-verification-system-sub001/config"
	"github.com/towoju5/bridge-verification-system-sub001/routers"
	"github.com/towoju5/bridge-verification-system-sub001/services/email"
	"github.com/towoju5/bridge-verification-system-sub001/services/form"
	"github.com/towoju5/bridge-verification-system-sub001/services/providers"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
	"github.com/towoju5/bridge-verification-system-sub001/services/transliterate"
	"github.com/towoju5/bridge-verification-system-sub001/services/upload"
	"github.com/towoju5/bridge-verification-system-sub001/storage"
	"github.com/towoju5/bridge-verification-system-sub001/tasks"
	"github.com/towoju5/bridge-verification-system-sub001/utils/logger"
)

func main() {
	// Set timezone
	conf := config.ServerConfig()
	loc, _ := time.LoadLocation(conf.Timezone)
	time.Local = loc

	// Connect to the database
	DSN := config.DBConfig()
	if err := storage.DBConnection(DSN); err != nil {
		logger.Fatalf("database DBConnection: %s", err)
	}
	defer storage.GetClient().Close()

	// Initialize Redis
	if err := storage.InitializeRedis(); err != nil {
		logger.Fatalf("Redis initialization: %v", err)
	}

	var refdataProvider refdata.Provider = refdata.NewStaticProvider()
	if storage.RedisClient != nil {
		refdataProvider = refdata.NewCachedProvider(refdataProvider, storage.RedisClient, 12*time.Hour)
	}

	storageConf := config.StorageConfig()
	backend, err := upload.NewBackend(storageConf)
	if err != nil {
		logger.Fatalf("document storage: %v", err)
	}

	var notifier email.EmailServiceInterface
	if config.NotificationConfig().EmailEnabled {
		notifier = email.NewEmailService()
	}

	engine := submission.NewEngine(
		storage.NewSubmissionStore(storage.GetClient()),
		form.NewValidator(refdataProvider),
		form.NewMapper(transliterate.NewLatinFolder()),
		upload.NewResolver(backend, storageConf.StoreTimeout),
		providers.NewFromConfig(config.ProviderConfig()),
		notifier,
	)

	// Start cron jobs
	tasks.StartCronJobs(engine, refdataProvider)

	// Run the server
	router := routers.Routes(engine, refdataProvider)

	appServer := fmt.Sprintf("%s:%s", conf.Host, conf.Port)
	logger.Infof("Server Running at :%v", appServer)

	logger.Fatalf("%v", router.Run(appServer))
}

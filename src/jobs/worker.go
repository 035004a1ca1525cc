package jobs

import (
	"log"
	"os"

	"Agency-Backend/src/database"
	"Agency-Backend/src/services/contacts"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server and the nightly lead-hygiene
// schedule. Call in a goroutine after InitRedis; it is a no-op when
// Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("Redis not available, background worker disabled")
		return
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     database.RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeLeadCleanup, HandleLeadCleanupTask)
	mux.HandleFunc(TypeLeadCRMSync, HandleLeadCRMSyncTask)
	mux.HandleFunc(TypeWelcomeEmail, HandleWelcomeEmailTask)

	scheduler := asynq.NewScheduler(redisOpt, nil)

	cleanupTask, err := NewLeadCleanupTask(contacts.VariantCleanup)
	if err == nil {
		if _, err := scheduler.Register("0 3 * * *", cleanupTask); err != nil {
			log.Println("failed to register cleanup schedule:", err)
		}
	}
	syncTask, err := NewLeadCRMSyncTask()
	if err == nil {
		if _, err := scheduler.Register("30 3 * * *", syncTask); err != nil {
			log.Println("failed to register CRM sync schedule:", err)
		}
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("asynq scheduler stopped:", err)
		}
	}()

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	if err := srv.Run(mux); err != nil {
		log.Println("asynq server stopped:", err)
	}
}

// EnqueueWelcomeEmail schedules the signup confirmation, silently
// skipped when Asynq is not configured.
func EnqueueWelcomeEmail(email, token string) {
	if database.AsynqClient == nil {
		return
	}
	task, err := NewWelcomeEmailTask(email, token)
	if err != nil {
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("failed to enqueue welcome email:", err)
	}
}

package config

// Registry/config keys of the scheduled tasks.
const (
	TaskDailyUpdate    = "daily_update"
	TaskSQLMaintenance = "sql_maintenance"
)

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultListenAddr = ":8080"

	DefaultDBPath = "./steppebot.db"

	// 09:00 process-local time, every day.
	DefaultDailyUpdateSchedule = "0 9 * * *"

	// Sundays at 04:00.
	DefaultSQLMaintenanceSchedule = "0 4 * * 0"
)

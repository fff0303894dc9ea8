// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop enables dev-only behavior such as auto-migration and the local media route.
	EnvDevelop = "develop"
)

// Database drivers
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// Event publisher providers
const (
	EventsProviderNone   = ""
	EventsProviderKafka  = "kafka"
	EventsProviderPubSub = "pubsub"
)

// Ticket sequence providers
const (
	SequenceProviderGorm  = "gorm"
	SequenceProviderRedis = "redis"
)

// SequenceTicket names the counter that backs ticket numbering.
const SequenceTicket = "ticket"

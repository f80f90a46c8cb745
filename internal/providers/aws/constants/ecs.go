// Package constants provides AWS-specific constants for ECS task state checks.
package constants

// EcsStatus represents the AWS ECS Task LastStatus and DesiredStatus lifecycle values.
type EcsStatus string

const (
	// EcsStatusProvisioning represents a task being provisioned
	EcsStatusProvisioning EcsStatus = "PROVISIONING"
	// EcsStatusPending represents a task pending activation
	EcsStatusPending EcsStatus = "PENDING"
	// EcsStatusActivating represents a task being activated
	EcsStatusActivating EcsStatus = "ACTIVATING"
	// EcsStatusRunning represents a task currently running
	EcsStatusRunning EcsStatus = "RUNNING"
	// EcsStatusDeactivating represents a task being deactivated
	EcsStatusDeactivating EcsStatus = "DEACTIVATING"
	// EcsStatusStopping represents a task being stopped
	EcsStatusStopping EcsStatus = "STOPPING"
	// EcsStatusDeprovisioning represents a task being deprovisioned
	EcsStatusDeprovisioning EcsStatus = "DEPROVISIONING"
	// EcsStatusStopped represents a task that has stopped
	EcsStatusStopped EcsStatus = "STOPPED"
)

// EcsHealthStatus represents the aggregated container health reported for a task.
type EcsHealthStatus string

const (
	// EcsHealthHealthy means all essential containers with health checks pass
	EcsHealthHealthy EcsHealthStatus = "HEALTHY"
	// EcsHealthUnhealthy means at least one essential container failed its health check
	EcsHealthUnhealthy EcsHealthStatus = "UNHEALTHY"
	// EcsHealthUnknown means no health check result is available
	EcsHealthUnknown EcsHealthStatus = "UNKNOWN"
)

// ECSEventSource is the EventBridge source of ECS events.
const ECSEventSource = "aws.ecs"

// ECSTaskStateChangeDetailType is the EventBridge detail-type of task state changes.
const ECSTaskStateChangeDetailType = "ECS Task State Change"

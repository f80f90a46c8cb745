// Package api defines the provider-agnostic types shared by the alerting pipeline.
package api

import "time"

// TaskEvent is a task state change as received from the event source.
// It is built once per invocation and never mutated.
type TaskEvent struct {
	AccountID     string `json:"account" validate:"required,numeric"`
	Region        string `json:"region,omitempty"`
	ClusterArn    string `json:"clusterArn" validate:"required"`
	ClusterName   string `json:"clusterName" validate:"required"`
	TaskArn       string `json:"taskArn" validate:"required"`
	LastStatus    string `json:"lastStatus" validate:"required"`
	DesiredStatus string `json:"desiredStatus,omitempty"`
	StoppingAt    string `json:"stoppingAt,omitempty"`
	StoppedReason string `json:"stoppedReason,omitempty"`
	StopCode      string `json:"stopCode,omitempty"`
}

// TaskDetail is the task registry's current view of a task.
// Nil pointers mean the registry did not report the value.
type TaskDetail struct {
	HealthStatus      string     `json:"healthStatus"`
	DesiredStatus     string     `json:"desiredStatus"`
	ContainerExitCode *int32     `json:"containerExitCode,omitempty"`
	ContainerReason   *string    `json:"containerReason,omitempty"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
}

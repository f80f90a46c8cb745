// Package alert decides whether a task state change is an anomalous stop worth notifying about.
package alert

import (
	"github.com/ecs-state-check/ecs-state-check/internal/api"
	awsConstants "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/constants"
)

// Rule names the condition that produced an alert.
type Rule string

const (
	// RuleNone means no rule matched.
	RuleNone Rule = ""
	// RuleUnhealthyStop fires when a stopped task was reported unhealthy.
	RuleUnhealthyStop Rule = "unhealthy-stop"
	// RuleUnexpectedStop fires when a task stopped although it was not desired to stop.
	RuleUnexpectedStop Rule = "unexpected-stop"
)

// Decision is the outcome of evaluating an event against the current task detail.
// AccountAlias is not part of the evaluation; the caller fills it in before rendering.
type Decision struct {
	Matched      bool
	Rule         Rule
	Event        api.TaskEvent
	Task         api.TaskDetail
	AccountAlias string
}

type rule struct {
	name  Rule
	match func(event *api.TaskEvent, task *api.TaskDetail) bool
}

// rules are evaluated in order and the first match wins, so at most one alert
// is produced per event even when several conditions hold.
var rules = []rule{
	{
		name: RuleUnhealthyStop,
		match: func(event *api.TaskEvent, task *api.TaskDetail) bool {
			return isStopped(event) && task.HealthStatus == string(awsConstants.EcsHealthUnhealthy)
		},
	},
	{
		name: RuleUnexpectedStop,
		match: func(event *api.TaskEvent, task *api.TaskDetail) bool {
			return isStopped(event) && task.DesiredStatus != string(awsConstants.EcsStatusStopped)
		},
	},
}

// Evaluate applies the alert rules to an event and the registry's view of the task.
// It has no side effects.
func Evaluate(event *api.TaskEvent, task *api.TaskDetail) Decision {
	decision := Decision{
		Event: *event,
		Task:  *task,
	}

	for _, r := range rules {
		if r.match(event, task) {
			decision.Matched = true
			decision.Rule = r.name
			return decision
		}
	}

	return decision
}

// IsCandidate reports whether any rule could match the event, whatever the task detail.
// Events that are not candidates need no registry lookup.
func IsCandidate(event *api.TaskEvent) bool {
	return isStopped(event)
}

func isStopped(event *api.TaskEvent) bool {
	return event.LastStatus == string(awsConstants.EcsStatusStopped)
}

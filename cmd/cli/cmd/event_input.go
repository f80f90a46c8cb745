package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"
)

const stdinArg = "-"

// readEventInput reads an event from a file, or from stdin when path is "-".
func readEventInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read event from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return data, nil
}

// printDecision summarizes a decision. A nil decision means the event was ignored.
func printDecision(out OutputInterface, decision *alert.Decision) {
	if decision == nil {
		out.Infof("event ignored: not an ECS task state change")
		return
	}

	event := decision.Event
	out.KeyValue("Account", event.AccountID)
	out.KeyValue("Cluster", event.ClusterName)
	out.KeyValue("Task", event.TaskArn)
	out.KeyValue("Last status", event.LastStatus)
	if decision.Task.HealthStatus != "" || decision.Task.DesiredStatus != "" {
		out.KeyValue("Health status", orNotFound(decision.Task.HealthStatus))
		out.KeyValue("Desired status", orNotFound(decision.Task.DesiredStatus))
	}
	out.Blank()

	if !decision.Matched {
		out.Successf("no alert for task %s", out.Bold(event.TaskArn))
		return
	}

	out.Warningf("alert raised: %s", out.Bold(string(decision.Rule)))
	if decision.AccountAlias != "" {
		out.KeyValue("Environment", decision.AccountAlias)
	}
}

func orNotFound(value string) string {
	if strings.TrimSpace(value) == "" {
		return notification.NotFound
	}
	return value
}

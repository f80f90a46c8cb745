package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	"github.com/ecs-state-check/ecs-state-check/internal/api"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEvent = `{
	"detail-type": "ECS Task State Change",
	"source": "aws.ecs",
	"account": "111",
	"region": "eu-central-1",
	"detail": {
		"clusterArn": "arn:aws:ecs:eu-central-1:111:cluster/prod",
		"lastStatus": "STOPPED",
		"taskArn": "t1",
		"stoppingAt": "2024-01-01T00:00:00Z",
		"stoppedReason": "Essential container exited",
		"stopCode": "TaskFailedToStart"
	}
}`

func TestEvaluateService_Evaluate(t *testing.T) {
	tests := []struct {
		name      string
		task      api.TaskDetail
		alias     string
		wantRule  alert.Rule
		wantAlias string
	}{
		{
			name:      "unexpected stop defaults alias to account id",
			task:      api.TaskDetail{HealthStatus: "HEALTHY", DesiredStatus: "RUNNING"},
			wantRule:  alert.RuleUnexpectedStop,
			wantAlias: "111",
		},
		{
			name:      "unhealthy stop with alias",
			task:      api.TaskDetail{HealthStatus: "UNHEALTHY", DesiredStatus: "STOPPED"},
			alias:     "prod-account",
			wantRule:  alert.RuleUnhealthyStop,
			wantAlias: "prod-account",
		},
		{
			name:     "no alert",
			task:     api.TaskDetail{HealthStatus: "HEALTHY", DesiredStatus: "STOPPED"},
			wantRule: alert.RuleNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &mockOutputInterface{}
			buf := &bytes.Buffer{}
			service := NewEvaluateService(out, notification.NewWriterNotifier(buf), notification.Options{})

			decision, err := service.Evaluate(context.Background(), []byte(testEvent), &tt.task, tt.alias)

			require.NoError(t, err)
			assert.Equal(t, tt.wantRule, decision.Rule)

			if tt.wantRule == alert.RuleNone {
				assert.Empty(t, buf.String())
				assert.True(t, out.has("Successf"))
				return
			}

			var msg notification.Message
			require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))
			require.Len(t, msg.Attachments, 1)
			assert.True(t, strings.HasSuffix(msg.Attachments[0].Pretext, "Environment info: "+tt.wantAlias))
			assert.Contains(t, msg.Attachments[0].Footer, "Container exit code: NotFound")
		})
	}
}

func TestEvaluateService_InvalidEvent(t *testing.T) {
	service := NewEvaluateService(&mockOutputInterface{}, notification.NewWriterNotifier(&bytes.Buffer{}),
		notification.Options{})

	for _, raw := range []string{`not json`, `{"account": "111", "detail": {}}`} {
		_, err := service.Evaluate(context.Background(), []byte(raw), &api.TaskDetail{}, "")

		require.Error(t, err)
		assert.Equal(t, appErrors.ErrCodeInvalidEvent, appErrors.GetErrorCode(err))
	}
}

func TestReadEventInput(t *testing.T) {
	t.Run("from stdin", func(t *testing.T) {
		data, err := readEventInput("-", strings.NewReader(testEvent))

		require.NoError(t, err)
		assert.Equal(t, testEvent, string(data))
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "event.json")
		require.NoError(t, os.WriteFile(path, []byte(testEvent), 0o600))

		data, err := readEventInput(path, nil)

		require.NoError(t, err)
		assert.Equal(t, testEvent, string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readEventInput(filepath.Join(t.TempDir(), "missing.json"), nil)

		assert.Error(t, err)
	})
}

func TestTaskDetailFromFlags(t *testing.T) {
	require.NoError(t, evaluateCmd.Flags().Set("health-status", "UNHEALTHY"))
	require.NoError(t, evaluateCmd.Flags().Set("exit-code", "137"))
	require.NoError(t, evaluateCmd.Flags().Set("started-at", "2024-01-01T09:00:00Z"))
	t.Cleanup(func() {
		healthStatusFlag = ""
		exitCodeFlag = 0
		startedAtFlag = ""
	})

	task, err := taskDetailFromFlags(evaluateCmd)

	require.NoError(t, err)
	assert.Equal(t, "UNHEALTHY", task.HealthStatus)
	require.NotNil(t, task.ContainerExitCode)
	assert.Equal(t, int32(137), *task.ContainerExitCode)
	assert.Nil(t, task.ContainerReason)
	require.NotNil(t, task.StartedAt)
	assert.Equal(t, 9, task.StartedAt.Hour())
}

func TestTaskDetailFromFlags_DesiredStatusDefaultsToStopped(t *testing.T) {
	flag := evaluateCmd.Flags().Lookup("desired-status")
	require.NotNil(t, flag)
	assert.Equal(t, "STOPPED", flag.DefValue)

	task, err := taskDetailFromFlags(evaluateCmd)
	require.NoError(t, err)
	assert.Equal(t, "STOPPED", task.DesiredStatus)

	task.HealthStatus = "HEALTHY"
	service := NewEvaluateService(&mockOutputInterface{}, notification.NewWriterNotifier(&bytes.Buffer{}),
		notification.Options{})
	decision, err := service.Evaluate(context.Background(), []byte(testEvent), task, "")

	require.NoError(t, err)
	assert.Equal(t, alert.RuleNone, decision.Rule)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd().Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["replay"])
	assert.True(t, names["evaluate"])
	assert.True(t, names["version"])
}

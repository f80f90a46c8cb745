// Package notification renders task alerts as chat webhook messages and delivers them.
package notification

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
)

// AlertTitle is the title field of every task alert.
const AlertTitle = "Task Alert for Unstable Clusters"

// NotFound replaces footer values the task registry did not report.
const NotFound = "NotFound"

// Message is the JSON body posted to the webhook.
type Message struct {
	Attachments []Attachment `json:"attachments"`
}

// Attachment is a legacy Slack message attachment.
type Attachment struct {
	Color      string  `json:"color"`
	Pretext    string  `json:"pretext"`
	Fields     []Field `json:"fields"`
	Footer     string  `json:"footer"`
	FooterIcon string  `json:"footer_icon,omitempty"`
}

// Field is a single attachment field.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short"`
}

// Options controls the presentation of rendered messages.
type Options struct {
	Color         string
	FooterIconURL string
}

// BuildMessage renders a matched decision.
func BuildMessage(decision *alert.Decision, opts Options) *Message {
	color := opts.Color
	if color == "" {
		color = constants.DefaultAlertColor
	}

	return &Message{
		Attachments: []Attachment{
			{
				Color:   color,
				Pretext: Pretext(decision),
				Fields: []Field{
					{Title: AlertTitle, Short: false},
				},
				Footer:     Footer(decision),
				FooterIcon: opts.FooterIconURL,
			},
		},
	}
}

// Pretext identifies the cluster, the observed status and the account.
func Pretext(decision *alert.Decision) string {
	return fmt.Sprintf(" In %s cluster last status of task: %s \n Environment info: %s",
		decision.Event.ClusterName,
		decision.Event.LastStatus,
		decision.AccountAlias,
	)
}

// Footer lists the stop metadata and the container exit details.
// All six values are always present.
func Footer(decision *alert.Decision) string {
	return fmt.Sprintf(" This task has stopped at %s \n Stop reason: %s \n Stop code: %s \n"+
		" Container exit code: %s \n Container exit reason: %s \n Task started at: %s ",
		decision.Event.StoppingAt,
		decision.Event.StoppedReason,
		decision.Event.StopCode,
		formatExitCode(decision.Task.ContainerExitCode),
		formatString(decision.Task.ContainerReason),
		formatTime(decision.Task.StartedAt),
	)
}

func formatExitCode(code *int32) string {
	if code == nil {
		return NotFound
	}
	return strconv.FormatInt(int64(*code), 10)
}

func formatString(s *string) string {
	if s == nil {
		return NotFound
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return NotFound
	}
	return t.UTC().Format(time.RFC3339)
}

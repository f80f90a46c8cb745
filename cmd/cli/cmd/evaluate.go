package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	"github.com/ecs-state-check/ecs-state-check/internal/api"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"
	"github.com/ecs-state-check/ecs-state-check/internal/output"
	awsConstants "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/constants"
	awsProcessor "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/processor"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <event.json|->",
	Short: "Evaluate the alert rules offline against a supplied task state",
	Long: `Evaluate an ECS Task State Change event against a task state given on the command line,
without calling AWS. When a rule matches, the alert message that would be posted is printed.`,
	Example: fmt.Sprintf(`  # Would an unhealthy task that stopped raise an alert?
  - %s evaluate event.json --health-status UNHEALTHY

  # Include container exit details in the rendered footer
  - %s evaluate event.json --desired-status RUNNING --exit-code 137 --exit-reason OOMKilled`,
		constants.ProjectName, constants.ProjectName),
	Args: cobra.ExactArgs(1),
	RunE: evaluateRun,
}

var (
	healthStatusFlag  string
	desiredStatusFlag string
	exitCodeFlag      int32
	exitReasonFlag    string
	startedAtFlag     string
	aliasFlag         string
)

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&healthStatusFlag, "health-status", "",
		"task health status reported by ECS (HEALTHY, UNHEALTHY, UNKNOWN)")
	evaluateCmd.Flags().StringVar(&desiredStatusFlag, "desired-status", string(awsConstants.EcsStatusStopped),
		"task desired status reported by ECS (e.g., RUNNING, STOPPED)")
	evaluateCmd.Flags().Int32Var(&exitCodeFlag, "exit-code", 0, "first container exit code (absent unless set)")
	evaluateCmd.Flags().StringVar(&exitReasonFlag, "exit-reason", "", "first container exit reason (absent unless set)")
	evaluateCmd.Flags().StringVar(&startedAtFlag, "started-at", "", "task start time in RFC3339 (absent unless set)")
	evaluateCmd.Flags().StringVar(&aliasFlag, "alias", "", "account alias rendered in the message (default: account id)")
}

func evaluateRun(cmd *cobra.Command, args []string) error {
	raw, err := readEventInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	task, err := taskDetailFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := notification.Options{}
	if cfg, cfgErr := loadConfig(); cfgErr == nil {
		opts.Color = cfg.AlertColor
		opts.FooterIconURL = cfg.FooterIconURL
	} else {
		output.Warningf("using default message options: %v", cfgErr)
	}

	service := NewEvaluateService(NewOutputWrapper(), notification.NewWriterNotifier(output.Stdout), opts)
	_, err = service.Evaluate(cmd.Context(), raw, task, aliasFlag)
	return err
}

func taskDetailFromFlags(cmd *cobra.Command) (*api.TaskDetail, error) {
	task := &api.TaskDetail{
		HealthStatus:  healthStatusFlag,
		DesiredStatus: desiredStatusFlag,
	}

	flags := cmd.Flags()
	if flags.Changed("exit-code") {
		code := exitCodeFlag
		task.ContainerExitCode = &code
	}
	if flags.Changed("exit-reason") {
		reason := exitReasonFlag
		task.ContainerReason = &reason
	}
	if flags.Changed("started-at") {
		startedAt, err := time.Parse(time.RFC3339, startedAtFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --started-at: %w", err)
		}
		task.StartedAt = &startedAt
	}

	return task, nil
}

// EvaluateService applies the alert rules to an event without touching AWS.
type EvaluateService struct {
	output   OutputInterface
	notifier notification.Notifier
	opts     notification.Options
}

// NewEvaluateService creates a new EvaluateService
func NewEvaluateService(
	outputter OutputInterface,
	notifier notification.Notifier,
	opts notification.Options,
) *EvaluateService {
	return &EvaluateService{
		output:   outputter,
		notifier: notifier,
		opts:     opts,
	}
}

// Evaluate parses the event, applies the rules and renders the message when one matches.
func (s *EvaluateService) Evaluate(
	ctx context.Context,
	raw []byte,
	task *api.TaskDetail,
	alias string,
) (*alert.Decision, error) {
	var cwEvent events.CloudWatchEvent
	if err := json.Unmarshal(raw, &cwEvent); err != nil {
		return nil, appErrors.ErrInvalidEvent("failed to parse event envelope", err)
	}

	taskEvent, err := awsProcessor.ParseTaskEvent(&cwEvent)
	if err != nil {
		return nil, err
	}

	decision := alert.Evaluate(taskEvent, task)
	if decision.Matched {
		decision.AccountAlias = alias
		if decision.AccountAlias == "" {
			decision.AccountAlias = taskEvent.AccountID
		}
	}

	printDecision(s.output, &decision)

	if !decision.Matched {
		return &decision, nil
	}

	s.output.Blank()
	if err = s.notifier.Notify(ctx, notification.BuildMessage(&decision, s.opts)); err != nil {
		return &decision, err
	}

	return &decision, nil
}

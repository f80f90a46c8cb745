package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ecs-state-check/ecs-state-check/internal/alert"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	"github.com/ecs-state-check/ecs-state-check/internal/logger"
	"github.com/ecs-state-check/ecs-state-check/internal/notification"
	"github.com/ecs-state-check/ecs-state-check/internal/output"
	awsProcessor "github.com/ecs-state-check/ecs-state-check/internal/providers/aws/processor"

	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <event.json|->",
	Short: "Run an ECS task state change event through the full alerting pipeline",
	Long: `Replay an EventBridge ECS Task State Change event locally, using the ambient AWS credentials.
The task is looked up in ECS (assuming the cross-account role when needed) and the alert is posted
to the configured webhook. Use --dry-run to print the message instead of posting it.`,
	Example: fmt.Sprintf(`  # Replay a captured event and print the alert instead of posting it
  - %s replay event.json --dry-run

  # Replay an event from stdin
  - cat event.json | %s replay -`, constants.ProjectName, constants.ProjectName),
	Args: cobra.ExactArgs(1),
	RunE: replayRun,
}

var dryRunFlag bool

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the alert message instead of posting it")
}

func replayRun(cmd *cobra.Command, args []string) error {
	raw, err := readEventInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var opts []awsProcessor.Option
	if dryRunFlag {
		opts = append(opts, awsProcessor.WithNotifier(notification.NewWriterNotifier(output.Stdout)))
	} else if err = cfg.ValidateWebhook(); err != nil {
		return err
	}

	processor, err := awsProcessor.Initialize(cmd.Context(), cfg, slog.Default(), opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize event processor: %w", err)
	}

	service := NewReplayService(processor, NewOutputWrapper())
	return service.Replay(cmd.Context(), raw)
}

// DecisionProcessor runs a raw event through the pipeline and reports the decision.
type DecisionProcessor interface {
	Process(ctx context.Context, rawEvent *json.RawMessage) (*alert.Decision, error)
}

// ReplayService handles event replay and result formatting
type ReplayService struct {
	processor DecisionProcessor
	output    OutputInterface
}

// NewReplayService creates a new ReplayService
func NewReplayService(processor DecisionProcessor, outputter OutputInterface) *ReplayService {
	return &ReplayService{
		processor: processor,
		output:    outputter,
	}
}

// Replay processes one event, tagging its logs with a local request ID.
func (s *ReplayService) Replay(ctx context.Context, raw []byte) error {
	requestID := "replay-" + strconv.FormatInt(time.Now().UnixNano(), 36)
	ctx = logger.WithRequestID(ctx, requestID)

	s.output.Infof("Replaying event (request %s)", s.output.Bold(requestID))

	event := json.RawMessage(raw)
	decision, err := s.processor.Process(ctx, &event)
	if decision != nil {
		printDecision(s.output, decision)
	}
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}
	if decision == nil {
		printDecision(s.output, nil)
	}

	return nil
}

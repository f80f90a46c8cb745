// Package main implements the ecs-state-check CLI tool.
// It replays and evaluates ECS task state change events outside of Lambda.
package main

import "github.com/ecs-state-check/ecs-state-check/cmd/cli/cmd"

func main() {
	cmd.Execute()
}

package cmd

import (
	"encoding/json"
	"fmt"

	"bubble/internal/models"
	"bubble/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
)

// jobView is what `bubble job` prints for a task.
type jobView struct {
	ID     string          `json:"id"`
	Queue  string          `json:"queue"`
	Type   string          `json:"type"`
	State  string          `json:"state"`
	Error  string          `json:"last_error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

var jobCmd = &cobra.Command{
	Use:   "job <queue> <task-id>",
	Short: "Show the state and result of an enqueued compose task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if appInstance.Config.Redis.Address == "" {
			return fmt.Errorf("job lookup requires redis.address: %w", models.ErrNotConfigured)
		}

		inspector := asynq.NewInspector(worker.RedisClientOpt(appInstance.Config))
		defer inspector.Close()

		info, err := inspector.GetTaskInfo(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to look up task %s in queue %s: %w", args[1], args[0], err)
		}

		view := jobView{
			ID:    info.ID,
			Queue: info.Queue,
			Type:  info.Type,
			State: info.State.String(),
			Error: info.LastErr,
		}
		if len(info.Result) > 0 && json.Valid(info.Result) {
			view.Result = info.Result
		}
		return printJSON(cmd.OutOrStdout(), view)
	},
}

func init() {
	rootCmd.AddCommand(jobCmd)
}

package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/careerdesk/core/pkg/logger"
)

type cronTaskManager struct {
	cron   *cron.Cron
	tasks  []Task
	logger *logger.Logger
}

// NewTaskManager creates a new task manager
func NewTaskManager(log *logger.Logger) TaskManager {
	return &cronTaskManager{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		tasks:  make([]Task, 0),
		logger: log,
	}
}

func (m *cronTaskManager) RegisterTask(task Task) error {
	if task == nil {
		return fmt.Errorf("task cannot be nil")
	}

	taskLog := m.logger.WithTask(task.Name())

	_, err := m.cron.AddFunc(task.Schedule(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		taskLog.LogTaskStart(task.Name(), task.Schedule())
		start := time.Now()

		if err := task.Execute(ctx); err != nil {
			taskLog.Error().
				Err(err).
				Str("action", "task_failed").
				Dur("duration", time.Since(start)).
				Msg("Task execution failed")
			return
		}

		taskLog.LogTaskComplete(task.Name(), time.Since(start), 0, 0)
	})

	if err != nil {
		return fmt.Errorf("failed to schedule task %s: %w", task.Name(), err)
	}

	m.tasks = append(m.tasks, task)
	return nil
}

func (m *cronTaskManager) Start() {
	m.logger.Info().
		Str("action", "task_manager_start").
		Int("task_count", len(m.tasks)).
		Msg("Starting task manager")
	m.cron.Start()
}

func (m *cronTaskManager) Stop() {
	m.logger.Info().
		Str("action", "task_manager_stop").
		Msg("Stopping task manager")
	ctx := m.cron.Stop()
	<-ctx.Done()
}

func (m *cronTaskManager) GetTasks() []Task {
	return append([]Task(nil), m.tasks...)
}

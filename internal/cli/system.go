package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/query"
	"github.com/jordanhale/taskdeck/internal/version"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show build and environment information",
	RunE:  runInfo,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the data files are readable",
	RunE:  runHealth,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the data directory with sample tasks",
	RunE:  runInit,
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("taskdeck"))
	fmt.Printf("Version:   %s\n", version.Version)
	fmt.Printf("Commit:    %s\n", version.CommitSHA)
	fmt.Printf("Go:        %s\n", runtime.Version())
	fmt.Printf("Platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Data dir:  %s\n", e.db.Dir())
	fmt.Printf("Config:    host=%s port=%d log_level=%s\n", e.cfg.Host, e.cfg.Port, e.cfg.LogLevel)
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	res, err := e.tasks.Query(query.Spec{})
	if err != nil {
		return fmt.Errorf("tasks check: %w", err)
	}
	users, err := e.users.List()
	if err != nil {
		return fmt.Errorf("users check: %w", err)
	}

	fmt.Println(successStyle.Render("healthy"))
	fmt.Printf("Tasks: %d  Users: %d\n", res.Stats.Total, len(users))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	res, err := e.tasks.Query(query.Spec{})
	if err != nil {
		return err
	}
	if res.Stats.Total > 0 {
		fmt.Printf("Data directory already has %d task(s); nothing to do.\n", res.Stats.Total)
		return nil
	}

	created := 0
	for _, req := range sampleTasks() {
		if _, err := e.tasks.Create(req); err != nil {
			return err
		}
		created++
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Initialized %s with %d sample task(s)", e.db.Dir(), created)))
	return nil
}

func sampleTasks() []*models.CreateTaskRequest {
	p := func(n int) *int { return &n }
	return []*models.CreateTaskRequest{
		{
			Title:       "Write project proposal",
			Description: "Draft the Q3 project proposal for review",
			Priority:    p(4),
			Category:    string(models.CategoryWork),
			Tags:        []string{"writing", "q3"},
		},
		{
			Title:       "Weekly grocery run",
			Description: "Milk, eggs, bread, coffee",
			Priority:    p(2),
			Category:    string(models.CategoryShopping),
		},
		{
			Title:       "Book dentist appointment",
			Priority:    p(3),
			Category:    string(models.CategoryHealth),
		},
		{
			Title:       "Renew home insurance",
			Description: "Policy expires at the end of the month",
			Priority:    p(5),
			Category:    string(models.CategoryFinance),
			Tags:        []string{"deadline"},
		},
	}
}

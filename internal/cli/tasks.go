package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jordanhale/taskdeck/internal/models"
	"github.com/jordanhale/taskdeck/internal/query"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Task management commands",
}

var (
	listStatus    string
	listCategory  string
	listPriority  int
	listSearch    string
	listOverdue   bool
	listSortBy    string
	listSortOrder string
	listLimit     int
)

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with optional filters",
	RunE:  runTasksList,
}

var (
	createDescription string
	createPriority    int
	createCategory    string
	createDueDate     string
	createTags        []string
)

var tasksCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksCreate,
}

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updateCategory    string
	updatePriority    int
	updateDueDate     string
)

var tasksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksUpdate,
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDelete,
}

var tasksStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runTasksStats,
}

func init() {
	f := tasksListCmd.Flags()
	f.StringVar(&listStatus, "status", "", "filter by status (pending|in_progress|completed|cancelled)")
	f.StringVar(&listCategory, "category", "", "filter by category")
	f.IntVar(&listPriority, "priority", 0, "filter by priority (1-5)")
	f.StringVar(&listSearch, "search", "", "search in title and description")
	f.BoolVar(&listOverdue, "overdue", false, "only overdue tasks")
	f.StringVar(&listSortBy, "sort-by", "", "sort key (created_at|due_date|priority|title|category)")
	f.StringVar(&listSortOrder, "sort-order", "", "sort order (asc|desc)")
	f.IntVar(&listLimit, "limit", -1, "limit number of results")

	c := tasksCreateCmd.Flags()
	c.StringVarP(&createDescription, "description", "d", "", "task description")
	c.IntVarP(&createPriority, "priority", "p", 1, "priority (1-5)")
	c.StringVar(&createCategory, "category", "", "task category")
	c.StringVar(&createDueDate, "due-date", "", "due date (YYYY-MM-DD)")
	c.StringSliceVar(&createTags, "tags", nil, "comma-separated tags")

	u := tasksUpdateCmd.Flags()
	u.StringVar(&updateTitle, "title", "", "new title")
	u.StringVar(&updateDescription, "description", "", "new description")
	u.StringVar(&updateStatus, "status", "", "new status")
	u.StringVar(&updateCategory, "category", "", "new category")
	u.IntVar(&updatePriority, "priority", 0, "new priority (1-5)")
	u.StringVar(&updateDueDate, "due-date", "", "new due date (empty clears)")

	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksCreateCmd)
	tasksCmd.AddCommand(tasksUpdateCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)
	tasksCmd.AddCommand(tasksStatsCmd)
}

func runTasksList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	var spec query.Spec
	if listStatus != "" {
		status := models.TaskStatus(listStatus)
		spec.Status = &status
	}
	if listCategory != "" {
		category := models.TaskCategory(listCategory)
		spec.Category = &category
	}
	if cmd.Flags().Changed("priority") {
		spec.Priority = &listPriority
	}
	spec.Search = listSearch
	spec.OverdueOnly = listOverdue
	spec.SortBy = query.SortKey(listSortBy)
	spec.SortOrder = query.SortOrder(listSortOrder)
	if cmd.Flags().Changed("limit") {
		spec.Limit = &listLimit
	}

	res, err := e.tasks.Query(spec)
	if err != nil {
		return err
	}
	if len(res.Tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-4s %-12s %-7s %-10s %-32s %-12s",
		"ID", "STATUS", "PRI", "CATEGORY", "TITLE", "DUE")))
	for _, t := range res.Tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		fmt.Printf("%-4d %s %s %s %-32s %-12s\n",
			t.ID,
			statusStyle(t.Status).Render(fmt.Sprintf("%-12s", t.Status.Label())),
			fmt.Sprintf("%-7s", priorityPips(t.Priority)),
			categoryStyle(t.Category).Render(fmt.Sprintf("%-10s", t.Category.Label())),
			truncate(t.Title, 32),
			due,
		)
	}
	fmt.Println(subtleStyle.Render(fmt.Sprintf("%d task(s)", len(res.Tasks))))
	return nil
}

func runTasksCreate(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	req := &models.CreateTaskRequest{
		Title:       args[0],
		Description: createDescription,
		Priority:    &createPriority,
		Category:    createCategory,
		DueDate:     createDueDate,
		Tags:        createTags,
	}
	task, err := e.tasks.Create(req)
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Task created with ID %d", task.ID)))
	return nil
}

func runTasksUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task id must be a number, got %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}

	var req models.UpdateTaskRequest
	if cmd.Flags().Changed("title") {
		req.Title = &updateTitle
	}
	if cmd.Flags().Changed("description") {
		req.Description = &updateDescription
	}
	if cmd.Flags().Changed("status") {
		req.Status = &updateStatus
	}
	if cmd.Flags().Changed("category") {
		req.Category = &updateCategory
	}
	if cmd.Flags().Changed("priority") {
		req.Priority = &updatePriority
	}
	if cmd.Flags().Changed("due-date") {
		req.DueDate = &updateDueDate
	}

	task, err := e.tasks.Update(id, &req)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task with ID %d not found", id)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Task %d updated", id)))
	return nil
}

func runTasksDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task id must be a number, got %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}

	deleted, err := e.tasks.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("task with ID %d not found", id)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Task %d deleted", id)))
	return nil
}

func runTasksStats(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	res, err := e.tasks.Query(query.Spec{})
	if err != nil {
		return err
	}
	stats := res.Stats
	if stats.Total == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	highPriority := 0
	for _, t := range res.Tasks {
		if t.IsHighPriority() {
			highPriority++
		}
	}

	fmt.Println(titleStyle.Render("Task Statistics"))
	fmt.Printf("Total:           %d\n", stats.Total)
	for _, s := range models.AllStatuses {
		fmt.Printf("%-16s %d\n", s.Label()+":", stats.ByStatus[s])
	}
	if stats.Overdue > 0 {
		fmt.Printf("%s %d\n", overdueStyle.Render("Overdue:        "), stats.Overdue)
	} else {
		fmt.Printf("Overdue:         %d\n", stats.Overdue)
	}
	fmt.Printf("High priority:   %d\n", highPriority)
	fmt.Printf("Completion rate: %.1f%%\n", stats.CompletionRate*100)
	return nil
}

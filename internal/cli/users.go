package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordanhale/taskdeck/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "User management commands",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runUsersList,
}

var (
	userEmail     string
	userFirstName string
	userLastName  string
)

var usersCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a new user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersCreate,
}

func init() {
	f := usersCreateCmd.Flags()
	f.StringVar(&userEmail, "email", "", "email address")
	f.StringVar(&userFirstName, "first-name", "", "first name")
	f.StringVar(&userLastName, "last-name", "", "last name")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	users, err := e.users.List()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-28s %-24s %s", "USERNAME", "EMAIL", "NAME", "ACTIVE")))
	for _, u := range users {
		active := "yes"
		if !u.IsActive {
			active = "no"
		}
		fmt.Printf("%-20s %-28s %-24s %s\n", u.Username, u.Email, u.FullName(), active)
	}
	fmt.Println(subtleStyle.Render(fmt.Sprintf("%d user(s)", len(users))))
	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}

	req := &models.CreateUserRequest{
		Username:  args[0],
		Email:     userEmail,
		FirstName: userFirstName,
		LastName:  userLastName,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := e.users.GetByUsername(req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("username %q already exists", req.Username)
	}

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
		Preferences: map[string]any{},
	}
	if err := e.users.Save(user); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("User %s created (%s)", user.Username, user.ID)))
	return nil
}

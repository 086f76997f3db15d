package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/store"
	"github.com/jsamuelsen11/project-tracker/internal/app"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/query"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

// operator acts with admin rights. ID 0 never belongs to a stored user.
var operator = domain.Principal{ID: 0, Username: "trackerctl", Role: domain.RoleAdmin, IsActive: true}

type rootOptions struct {
	profile   string
	configDir string
	dbPath    string
	json      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Project tracker operator CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = "local"
	}
	root.PersistentFlags().StringVar(&opts.profile, "profile", profile, "config profile (local, dev, qa, prod)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding the profile YAML files")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite file to use instead of the profile's database.path")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "output JSON")

	root.AddCommand(migrateCmd(opts))
	root.AddCommand(reportCmd(opts))
	root.AddCommand(usersCmd(opts))
	return root
}

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(opts, func(db *gorm.DB, _ *slog.Logger) error {
				if err := store.Migrate(db); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
				return err
			})
		},
	}
}

func reportCmd(opts *rootOptions) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Print reports"}
	report.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "List every project with its recomputed completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(opts, func(db *gorm.DB, logger *slog.Logger) error {
				rows, err := projectReport(cmd.Context(), db, logger)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), rows)
				}
				renderProjectReport(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	})
	return report
}

func usersCmd(opts *rootOptions) *cobra.Command {
	users := &cobra.Command{Use: "users", Short: "Manage user accounts"}
	users.AddCommand(&cobra.Command{
		Use:   "promote <username>",
		Short: "Grant the admin role to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(opts, func(db *gorm.DB, _ *slog.Logger) error {
				u, err := promoteUser(cmd.Context(), db, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d) is now %s\n", u.Username, u.ID, u.Role)
				return err
			})
		},
	})
	return users
}

func withDB(opts *rootOptions, fn func(*gorm.DB, *slog.Logger) error) error {
	var loadOpts []config.Option
	if opts.configDir != "" {
		loadOpts = append(loadOpts, config.WithConfigDir(opts.configDir))
	}
	if opts.dbPath != "" {
		loadOpts = append(loadOpts, config.WithOverride("database.path", opts.dbPath))
	}
	cfg, err := config.Load(opts.profile, loadOpts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	db, err := store.Open(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()
	return fn(db, logger)
}

// projectRow is one line of the project report.
type projectRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Owner      string `json:"owner"`
	Completion int    `json:"completionPercentage"`
}

// projectReport recomputes every project's completion and returns the rows
// oldest first. Recomputation is recorded in the activity log.
func projectReport(ctx context.Context, db *gorm.DB, logger *slog.Logger) ([]projectRow, error) {
	users := store.NewUserRepository(db)
	projects := store.NewProjectRepository(db)
	tasks := store.NewTaskRepository(db)
	teams := store.NewTeamRepository(db)

	events := app.NewDispatcher(store.NewActivityRepository(db), store.NewNotificationRepository(db), nil, nil, nil, logger)
	defer events.Close()
	svc := app.NewProjectService(projects, tasks, teams, events, events, logger)

	owners := make(map[int64]string)
	var rows []projectRow
	for page := query.DefaultPage; ; page++ {
		q := project.ResolveQuery(query.Raw{
			"page":      {strconv.Itoa(page)},
			"limit":     {strconv.Itoa(query.MaxLimit)},
			"sortBy":    {"createdAt"},
			"sortOrder": {"asc"},
		})
		res, err := projects.FindMany(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		for i := range res.Items {
			p, err := svc.UpdateProjectCompletion(ctx, operator, res.Items[i].ID)
			if err != nil {
				return nil, fmt.Errorf("recomputing project %d: %w", res.Items[i].ID, err)
			}
			owner, ok := owners[p.OwnerID]
			if !ok {
				owner = ownerName(ctx, users, p.OwnerID)
				owners[p.OwnerID] = owner
			}
			rows = append(rows, projectRow{
				ID:         p.ID,
				Name:       p.Name,
				Status:     p.Status.String(),
				Owner:      owner,
				Completion: p.CompletionPercentage,
			})
		}
		if !res.Meta.HasNext {
			return rows, nil
		}
	}
}

func ownerName(ctx context.Context, users *store.UserRepository, id int64) string {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	return u.Username
}

func renderProjectReport(w io.Writer, rows []projectRow) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Status", "Owner", "Completion"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.ID, r.Name, r.Status, r.Owner, fmt.Sprintf("%d%%", r.Completion)})
	}
	tw.AppendFooter(table.Row{"", "", "", "Projects", len(rows)})
	tw.Render()
}

// promoteUser grants the admin role. Promoting an admin is a no-op.
func promoteUser(ctx context.Context, db *gorm.DB, username string) (*userSummary, error) {
	users := store.NewUserRepository(db)
	u, err := users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
		}
		return nil, err
	}
	if u.Role != domain.RoleAdmin {
		u.Role = domain.RoleAdmin
		if u, err = users.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("promoting %q: %w", username, err)
		}
	}
	return &userSummary{ID: u.ID, Username: u.Username, Role: u.Role}, nil
}

type userSummary struct {
	ID       int64
	Username string
	Role     domain.Role
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

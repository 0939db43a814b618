package app

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "ticketflow",
		Short:         "Create Jira tickets from the terminal",
		Long:          "Ticketflow builds Jira issue payloads from flags or a JSON file and submits them via the REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	createHandler     = handleCreate
	projectsHandler   = handleProjects
	configShowHandler = handleConfigShow
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(configCmd)
}

type createOptions struct {
	ProjectKey   string
	IssueType    string
	IssueTypeSet bool
	Summary      string
	Description  string
	CustomFields string
	JSONInput    string
	ListProjects bool
	DryRun       bool
	Open         bool
}

var createOpts createOptions

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a Jira ticket",
	Example: `  ticketflow create -p DMCD -t Bug \
      -s "Crash on startup" -d "Repro steps attached" \
      -c '{"device_os": "Android"}'

  ticketflow create --json-input ticket.json --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		createOpts.IssueTypeSet = cmd.Flags().Changed("issue-type")
		return createHandler(createOpts)
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List known project schemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectsHandler()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective Jira configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowHandler()
	},
}

func init() {
	createCmd.Flags().StringVarP(&createOpts.ProjectKey, "project-key", "p", "", "Jira project key (e.g., ACPF, DPR, DMCD)")
	createCmd.Flags().StringVarP(&createOpts.IssueType, "issue-type", "t", "Story", "Issue type (Story or Bug)")
	createCmd.Flags().StringVarP(&createOpts.Summary, "summary", "s", "", "Issue summary/title")
	createCmd.Flags().StringVarP(&createOpts.Description, "description", "d", "", "Issue description")
	createCmd.Flags().StringVarP(&createOpts.CustomFields, "custom-fields", "c", "", `JSON object of custom field values (e.g., '{"device_os": "Android"}')`)
	createCmd.Flags().StringVarP(&createOpts.JSONInput, "json-input", "j", "", "Path to a JSON file supplying ticket details")
	createCmd.Flags().BoolVarP(&createOpts.ListProjects, "list-projects", "l", false, "List known project schemas and exit")
	createCmd.Flags().BoolVar(&createOpts.DryRun, "dry-run", false, "Print the payload without submitting it")
	createCmd.Flags().BoolVar(&createOpts.Open, "open", false, "Open the created ticket in a browser")
}

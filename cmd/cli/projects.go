package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects [id]",
	Short: "List your projects, or show one project with its tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}
			return showProject(cmd, id)
		}

		projects, err := apiClient.ListProjects(cmd.Context())
		if err != nil {
			return apiCommandError(err)
		}

		if len(projects) == 0 {
			fmt.Println(mutedStyle.Render("No projects yet."))
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Projects (%d)", len(projects))))
		for _, project := range projects {
			status := projectStatusStyle(project.Status).Render(project.Status)
			fmt.Printf("  %s %s [%s]\n",
				headerStyle.Render(fmt.Sprintf("#%d", project.ID)), project.Name, status)
		}

		return nil
	},
}

func showProject(cmd *cobra.Command, id int) error {
	project, err := apiClient.GetProject(cmd.Context(), id)
	if err != nil {
		return apiCommandError(err)
	}

	status := projectStatusStyle(project.Status).Render(project.Status)

	fmt.Println(titleStyle.Render(project.Name))
	fmt.Printf("  %s %s\n", headerStyle.Render("Status:"), status)
	if len(project.Description) > 0 {
		fmt.Printf("  %s\n", mutedStyle.Render(project.Description))
	}
	if len(project.StartDate) > 0 {
		fmt.Printf("  %s %s", headerStyle.Render("Dates: "), project.StartDate)
		if len(project.EndDate) > 0 {
			fmt.Printf(" → %s", project.EndDate)
		}
		fmt.Println()
	}

	if len(project.Tasks) == 0 {
		fmt.Println(mutedStyle.Render("  No tasks."))
		return nil
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Tasks"))
	for _, task := range project.Tasks {
		marker := "☐"
		title := task.Title
		if task.Status == "done" {
			marker = "☑"
			title = completedStyle.Render(title)
		}
		fmt.Printf("  %s %s\n", marker, title)
	}

	return nil
}

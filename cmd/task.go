/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sakethrapaka/remind/internal/category"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/store"
	"github.com/sakethrapaka/remind/internal/util"
	"github.com/spf13/cobra"
)

var taskDescription string
var taskCategory string
var taskDate string
var taskTime string
var taskDuration int
var taskLocation string
var taskAllDay bool
var taskRepeat string
var taskNotifyBefore int
var taskFrom string
var taskTo string
var taskPending bool
var taskCompleted bool
var taskUpcoming bool
var taskRemoveCompletedAll bool
var taskMeta bool

// taskCmd represents the task command
var taskCmd = &cobra.Command{
	Use:     "task",
	Short:   "Create and manage reminders",
	Aliases: []string{"t"},
}

var newTaskCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a new reminder",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		title := args[0]
		_, storage, tasks := openStore()
		requireUser(storage)

		// The form boundary validates; the store assumes valid records.
		if taskDate == "" || (taskTime == "" && !taskAllDay) {
			log.Println("❌ Please fill in all required fields (--date, --time or --all-day)")
			os.Exit(1)
		}
		if _, err := time.Parse("2006-01-02", taskDate); err != nil {
			log.Printf("❌ Invalid date %q, expected YYYY-MM-DD\n", taskDate)
			os.Exit(1)
		}
		if taskTime != "" {
			if _, err := time.Parse("15:04", taskTime); err != nil {
				log.Printf("❌ Invalid time %q, expected HH:mm\n", taskTime)
				os.Exit(1)
			}
		}

		detected := taskCategory
		if detected == "" {
			detected = category.Detect(title + " " + taskDescription)
		}

		now := time.Now()
		task := model.Task{
			ID:           store.NewTaskID(now),
			Title:        title,
			Description:  taskDescription,
			Category:     detected,
			Date:         taskDate,
			Time:         taskTime,
			Duration:     taskDuration,
			Location:     taskLocation,
			IsAllDay:     taskAllDay,
			Repeat:       taskRepeat,
			CreatedAt:    now.Format(time.RFC3339),
			NotifyBefore: taskNotifyBefore,
		}

		if due, err := task.DueTime(); err == nil {
			task.NotifyAt = due.Add(-time.Duration(taskNotifyBefore) * time.Minute).Format(time.RFC3339)
		}

		if err := tasks.Add(task); err != nil {
			log.Printf("❌ Failed to create task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Reminder created successfully! 🎉\n")
		fmt.Printf("   %s scheduled for %s at %s (id: %s)\n", title, task.Date, displayTime(task), task.ID)
	},
}

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Short:   "List reminders",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		now := time.Now()
		var rows []model.Task
		var heading string
		switch {
		case taskPending:
			rows, heading = tasks.Pending(now), "Pending"
		case taskCompleted:
			rows, heading = tasks.Completed(), "Completed"
		default:
			rows, heading = tasks.Upcoming(now), "Upcoming"
		}

		filtered := rows[:0]
		for _, task := range rows {
			if !util.IsWithinDateRange(task.Date, taskFrom, taskTo) {
				continue
			}
			if taskCategory != "" && task.Category != taskCategory {
				continue
			}
			filtered = append(filtered, task)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("%s: %v tasks shown\n", heading, len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Category"),
			text.FgGreen.Sprintf("Due"),
			text.FgGreen.Sprintf("Duration"),
			text.FgGreen.Sprintf("Status"),
		})

		for _, task := range filtered {
			status := "Upcoming"
			switch {
			case task.Completed:
				status = text.FgHiGreen.Sprintf("Completed")
			case isOverdue(task, now):
				status = text.FgHiRed.Sprintf("Overdue")
			default:
				status = text.FgHiYellow.Sprintf(status)
			}

			t.AppendRow(table.Row{
				task.ID,
				task.Title,
				task.Category,
				fmt.Sprintf("%s at %s", task.Date, displayTime(task)),
				fmt.Sprintf("%dm", task.EffectiveDuration()),
				status,
			})
		}

		t.Render()
	},
}

var showTaskCmd = &cobra.Command{
	Use:     "show [task ID]",
	Short:   "Show reminder detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		task, ok := tasks.Get(args[0])
		if !ok {
			log.Printf("❌ Task with ID %s not found", args[0])
			os.Exit(1)
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(task.ID), titleStyle(task.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Category: %v\n", fieldStyle(task.Category))
		fmt.Printf("Due: %v\n", fieldStyle(fmt.Sprintf("%s at %s", task.Date, displayTime(task))))
		fmt.Printf("Duration: %v\n", fieldStyle(fmt.Sprintf("%dm", task.EffectiveDuration())))
		if task.Location != "" {
			fmt.Printf("Location: %v\n", fieldStyle(task.Location))
		}
		if task.Repeat != "" {
			fmt.Printf("Repeat: %v\n", fieldStyle(task.Repeat))
		}
		if task.NotifyAt != "" {
			fmt.Printf("Notify at: %v\n", fieldStyle(task.NotifyAt))
		}
		fmt.Printf("Completed: %v\n", fieldStyle(fmt.Sprintf("%v", task.Completed)))
		if task.CreatedAt != "" {
			fmt.Printf("Created at: %v\n", fieldStyle(task.CreatedAt))
		}

		if !taskMeta && task.Description != "" {
			renderedContent, err := glamour.Render(model.StripMetadata(task.Description), "dark")
			if err != nil {
				log.Printf("⚠️ Failed to render description: %v", err)
				fmt.Println(task.Description)
			} else {
				fmt.Println(renderedContent)
			}
		}
	},
}

var editTaskCmd = &cobra.Command{
	Use:     "edit [task ID]",
	Short:   "Edit a reminder",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		task, ok := tasks.Get(args[0])
		if !ok {
			log.Printf("❌ Task with ID %s not found", args[0])
			os.Exit(1)
		}

		if cmd.Flags().Changed("title") {
			task.Title = taskEditTitle
		}
		if cmd.Flags().Changed("description") {
			task.Description = taskDescription
		}
		if cmd.Flags().Changed("category") {
			task.Category = taskCategory
		}
		if cmd.Flags().Changed("date") {
			task.Date = taskDate
		}
		if cmd.Flags().Changed("time") {
			task.Time = taskTime
		}
		if cmd.Flags().Changed("duration") {
			task.Duration = taskDuration
		}
		if cmd.Flags().Changed("location") {
			task.Location = taskLocation
		}
		if cmd.Flags().Changed("notify-before") {
			task.NotifyBefore = taskNotifyBefore
		}

		if _, err := task.DueTime(); err != nil {
			log.Printf("❌ Invalid date/time: %v\n", err)
			os.Exit(1)
		}
		if due, err := task.DueTime(); err == nil && (task.NotifyBefore > 0 || task.NotifyAt != "") {
			task.NotifyAt = due.Add(-time.Duration(task.NotifyBefore) * time.Minute).Format(time.RFC3339)
		}

		if err := tasks.Update(task); err != nil {
			log.Printf("❌ Failed to update task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task %s updated\n", task.ID)
	},
}

var doneTaskCmd = &cobra.Command{
	Use:     "done [task ID]",
	Short:   "Toggle completion",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"d"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		task, err := tasks.ToggleComplete(args[0])
		if err != nil {
			log.Printf("❌ Task with ID %s not found", args[0])
			os.Exit(1)
		}

		if task.Completed {
			fmt.Println("✅ Task completed! 🎉")
		} else {
			fmt.Println("✅ Task marked as pending")
		}
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "remove [task ID]",
	Short:   "Delete a reminder",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		if taskRemoveCompletedAll {
			removed, err := tasks.DeleteCompleted()
			if err != nil {
				log.Printf("❌ Failed to delete completed tasks: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("✅ All completed tasks deleted (%d)\n", removed)
			return
		}

		if len(args) == 0 {
			log.Println("❌ Provide a task ID or --completed-all")
			os.Exit(1)
		}

		removed, err := tasks.Delete(args[0])
		if err != nil {
			log.Printf("❌ Failed to delete task: %v\n", err)
			os.Exit(1)
		}
		if !removed {
			fmt.Printf("⚠️ Task %s was already gone\n", args[0])
			return
		}
		fmt.Println("✅ Task deleted")
	},
}

var quickTaskCmd = &cobra.Command{
	Use:     "quick [suggestion ID]",
	Short:   "List or instantiate quick-add suggestions",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"q"},
	Run: func(cmd *cobra.Command, args []string) {
		_, storage, tasks := openStore()
		requireUser(storage)

		if len(args) == 0 {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("Title"),
				text.FgGreen.Sprintf("Time"), text.FgGreen.Sprintf("Category"),
			})
			for _, s := range model.QuickAddSuggestions {
				t.AppendRow(table.Row{s.ID, s.Title, s.Time, s.Category})
			}
			t.Render()
			return
		}

		suggestion, ok := model.SuggestionByID(args[0])
		if !ok {
			log.Printf("❌ Suggestion with ID %s not found", args[0])
			os.Exit(1)
		}

		task, err := tasks.QuickAdd(suggestion, time.Now())
		if err == store.ErrDuplicateSuggestion {
			color.Yellow("⚠️ Task already exists in upcoming reminders")
			return
		}
		if err != nil {
			log.Printf("❌ Failed to add task: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Task added to upcoming reminders (id: %s)\n", task.ID)
	},
}

var taskEditTitle string

func displayTime(task model.Task) string {
	if task.Time == "" {
		return "all day"
	}
	return task.Time
}

func isOverdue(task model.Task, now time.Time) bool {
	due, err := task.DueTime()
	return err == nil && !due.After(now)
}

func init() {
	taskCmd.AddCommand(newTaskCmd)
	taskCmd.AddCommand(listTaskCmd)
	taskCmd.AddCommand(showTaskCmd)
	taskCmd.AddCommand(editTaskCmd)
	taskCmd.AddCommand(doneTaskCmd)
	taskCmd.AddCommand(removeTaskCmd)
	taskCmd.AddCommand(quickTaskCmd)
	rootCmd.AddCommand(taskCmd)

	newTaskCmd.Flags().StringVarP(&taskDescription, "description", "m", "", "Task description (markdown)")
	newTaskCmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Category (auto-detected if empty)")
	newTaskCmd.Flags().StringVar(&taskDate, "date", "", "Due date (YYYY-MM-DD)")
	newTaskCmd.Flags().StringVar(&taskTime, "time", "", "Due time (HH:mm)")
	newTaskCmd.Flags().IntVar(&taskDuration, "duration", 0, "Duration in minutes (default 60)")
	newTaskCmd.Flags().StringVar(&taskLocation, "location", "", "Location")
	newTaskCmd.Flags().BoolVar(&taskAllDay, "all-day", false, "All-day task (no time)")
	newTaskCmd.Flags().StringVar(&taskRepeat, "repeat", "", "Repeat: once, daily, 2days, weekly")
	newTaskCmd.Flags().IntVar(&taskNotifyBefore, "notify-before", 0, "Minutes of notification lead time")

	listTaskCmd.Flags().BoolVar(&taskPending, "pending", false, "Show overdue incomplete tasks")
	listTaskCmd.Flags().BoolVar(&taskCompleted, "completed", false, "Show completed tasks")
	listTaskCmd.Flags().BoolVar(&taskUpcoming, "upcoming", false, "Show upcoming tasks (default)")
	listTaskCmd.Flags().StringVar(&taskFrom, "from", "", "Filter by start date (YYYY-MM-DD)")
	listTaskCmd.Flags().StringVar(&taskTo, "to", "", "Filter by end date (YYYY-MM-DD)")
	listTaskCmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Filter by category")

	showTaskCmd.Flags().BoolVar(&taskMeta, "meta", false, "Show only metadata without the description")

	editTaskCmd.Flags().StringVar(&taskEditTitle, "title", "", "New title")
	editTaskCmd.Flags().StringVarP(&taskDescription, "description", "m", "", "New description")
	editTaskCmd.Flags().StringVarP(&taskCategory, "category", "c", "", "New category")
	editTaskCmd.Flags().StringVar(&taskDate, "date", "", "New due date (YYYY-MM-DD)")
	editTaskCmd.Flags().StringVar(&taskTime, "time", "", "New due time (HH:mm)")
	editTaskCmd.Flags().IntVar(&taskDuration, "duration", 0, "New duration in minutes")
	editTaskCmd.Flags().StringVar(&taskLocation, "location", "", "New location")
	editTaskCmd.Flags().IntVar(&taskNotifyBefore, "notify-before", 0, "New notification lead time in minutes")

	removeTaskCmd.Flags().BoolVar(&taskRemoveCompletedAll, "completed-all", false, "Delete every completed task")
}

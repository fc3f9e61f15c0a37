package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func usersCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "users",
		Short: "Current user, account and preferences",
	}
	c.AddCommand(usersMeCmd(), usersUpdateCmd(), usersAccountCmd(), usersPrefsCmd())
	return c
}

func usersMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			user, err := app.svcs.Users.Me(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, user, func(w io.Writer) {
				fmt.Fprintln(w, ui.Title.Render(user.Name))
				fmt.Fprintf(w, "Email: %s\n", user.Email)
				fmt.Fprintf(w, "Role:  %s\n", user.Role)
				fmt.Fprintln(w, ui.Faint.Render("id "+user.ID))
			})
		},
	}
}

func usersUpdateCmd() *cobra.Command {
	var name, email string

	c := &cobra.Command{
		Use:   "update",
		Short: "Update the current user's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.UserPatch{}
			if name != "" {
				patch.Name = &name
			}
			if email != "" {
				patch.Email = &email
			}

			user, err := app.svcs.Users.UpdateMe(cmd.Context(), patch)
			if err != nil {
				return err
			}

			return output(cmd, user, func(w io.Writer) {
				fmt.Fprintf(w, "Updated %s <%s>\n", user.Name, user.Email)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "New display name")
	c.Flags().StringVar(&email, "email", "", "New email address")
	return c
}

func usersAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the owning account and subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			acc, err := app.svcs.Users.Account(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, acc, func(w io.Writer) {
				fmt.Fprintf(w, "Tier:    %s\n", acc.SubscriptionTier)
				fmt.Fprintf(w, "Status:  %s\n", acc.SubscriptionStatus)
				fmt.Fprintf(w, "Members: up to %d\n", acc.MaxMembers)
			})
		},
	}
}

func usersPrefsCmd() *cobra.Command {
	var unitSystem, timeFormat, weekStart, glucoseUnit string

	c := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.UserPreferencesPatch{}
			changed := false
			if unitSystem != "" {
				v := domain.UnitSystem(unitSystem)
				patch.UnitSystem = &v
				changed = true
			}
			if timeFormat != "" {
				v := domain.TimeFormat(timeFormat)
				patch.TimeFormat = &v
				changed = true
			}
			if weekStart != "" {
				v := domain.WeekStart(weekStart)
				patch.WeekStart = &v
				changed = true
			}
			if glucoseUnit != "" {
				v := domain.GlucoseUnit(glucoseUnit)
				patch.GlucoseUnit = &v
				changed = true
			}

			var prefs domain.UserPreferences
			if changed {
				prefs, err = app.svcs.Users.UpdatePreferences(cmd.Context(), patch)
			} else {
				prefs, err = app.svcs.Users.Preferences(cmd.Context())
			}
			if err != nil {
				return err
			}

			return output(cmd, prefs, func(w io.Writer) {
				fmt.Fprintf(w, "Units:   %s\n", prefs.UnitSystem)
				fmt.Fprintf(w, "Time:    %s\n", prefs.TimeFormat)
				fmt.Fprintf(w, "Week:    starts %s\n", prefs.WeekStart)
				fmt.Fprintf(w, "Glucose: %s\n", prefs.GlucoseUnit)
			})
		},
	}

	c.Flags().StringVar(&unitSystem, "units", "", "Unit system: imperial|metric")
	c.Flags().StringVar(&timeFormat, "time-format", "", "Time format: 12h|24h")
	c.Flags().StringVar(&weekStart, "week-start", "", "Week start: sunday|monday")
	c.Flags().StringVar(&glucoseUnit, "glucose-unit", "", "Glucose unit: mg_dl|mmol_l")
	return c
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// newBlockedHoursCmd считает занятые часы по встроенным правилам без подключения к базе
func newBlockedHoursCmd() *cobra.Command {
	var (
		services string
		start    string
		duration int
	)

	cmd := &cobra.Command{
		Use:     "blocked-hours",
		Short:   "Print hours blocked by a set of services using the built-in rules",
		Example: "salonbook blocked-hours --services makeup,lash-lift --time 10:00 --duration 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := domain.ParseServices(services)
			if len(list) == 0 {
				return fmt.Errorf("--services must name at least one service")
			}

			engine := availability.NewEngine(availability.DefaultRuleSet())
			blocked := engine.BlockedHours(list, types.ParseHour(start), duration)

			out := cmd.OutOrStdout()
			for _, id := range engine.UnknownServices(list) {
				fmt.Fprintf(out, "unknown service ignored: %s\n", id)
			}

			hours := blocked.Sorted()
			formatted := make([]string, len(hours))
			for i, h := range hours {
				formatted[i] = strconv.Itoa(h)
			}
			fmt.Fprintf(out, "blocked hours: [%s]\n", strings.Join(formatted, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&services, "services", "", "comma-separated service identifiers")
	cmd.Flags().StringVar(&start, "time", "09:00", "start time HH:MM")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in hours (used by variable-length services)")

	return cmd
}
